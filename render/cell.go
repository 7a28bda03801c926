package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
// Width 2 marks a wide rune; the following cell is covered and never flushed
type Cell struct {
	Rune  rune
	Style tcell.Style
	Width int
}
