package catalog

// CSV column names, as exported by the plant spreadsheet
const (
	ColSlug              = "slug"
	ColName              = "name"
	ColScientificName    = "scientificName"
	ColFamily            = "family"
	ColVariety           = "variety"
	ColDescription       = "description"
	ColSun               = "sun"
	ColWater             = "water"
	ColSoil              = "soil"
	ColFrostHardiness    = "frostHardiness"
	ColSpacingInRowIn    = "spacingInRowIn"
	ColPlantingDepthIn   = "plantingDepthIn"
	ColTags              = "tags"
	ColStartOffsetDays   = "startOffsetDays"
	ColDirectSowFrom     = "directSowFrom"
	ColDirectSowTo       = "directSowTo"
	ColTransplantFrom    = "transplantFrom"
	ColTransplantTo      = "transplantTo"
	ColDaysToMaturity    = "daysToMaturity"
	ColDaysToMaturityMin = "daysToMaturityMin"
)

// Parsing and import settings
const (
	ListSeparator       = ","
	SlugSeparator       = "-"
	ImportProgressEvery = 25
)

// Supported file formats
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Log messages
const (
	LogMsgImportProgress = "Importing plants"
	LogMsgImportDone     = "Plant import finished"
	LogMsgUnknownPlant   = "Unknown plant slug skipped"
)

// Error messages
const (
	ErrMsgUnsupportedFormat = "unsupported catalog format"
	ErrMsgMissingHeader     = "csv header row is missing"
	ErrMsgMissingNameColumn = "csv header has no name or slug column"
	ErrMsgNoPlants          = "no plants to import"
)
