package model

// Sheet is the logical shape of uploaded spreadsheet data: a sheet name,
// a header row, and value rows. Column lookup is case-insensitive and is
// performed by consumers; the model carries cells as read.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}
