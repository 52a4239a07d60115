package frost

// Archive query window, in month/day of the requested year
const (
	SeasonStartMonth = 1
	SeasonStartDay   = 1
	SeasonEndMonth   = 6
	SeasonEndDay     = 30
)

// FreezingPointC is the inclusive threshold for a frost day
const FreezingPointC = 0.0

// Log messages
const (
	LogMsgEstimatingFrost  = "Estimating last spring frost"
	LogMsgFrostEstimated   = "Last spring frost estimated"
	LogMsgNoFrostFound     = "No frost day in season"
	LogMsgSeasonNotStarted = "Season has no elapsed days yet"
)
