package main

// Default command-line flag values
const (
	defaultTolerance = 0.05   // Relative tolerance
	defaultFormat    = "auto" // Input format, chosen from the file extension
)

// Input formats
const (
	formatAuto = "auto"
	formatJSON = "json"
	formatCSV  = "csv"
)

// CSV layout: time column followed by 1 to 4 value columns and an optional
// mode column.
const (
	csvTimeColumn = 0
	csvMinColumns = 2
	csvMaxColumns = 1 + maxDim + 1
	maxDim        = 4
)

// CLI arguments
const (
	requiredArgs = 1
)
