package task

// DaysPerWeek converts watering duration weeks into days
const DaysPerWeek = 7

// Task note templates, formatted with the plant name
const (
	NoteSeedIndoors = "Start %s indoors"
	NoteDirectSow   = "Direct sow %s"
	NoteTransplant  = "Transplant %s"
	NoteHarvest     = "Estimated first harvest: %s"
	NoteWater       = "Water %s"
)
