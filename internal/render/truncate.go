package render

import "github.com/mattn/go-runewidth"

// clipText truncates to a display width, appending an ellipsis only
// when something was cut.
func clipText(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// clipRaw cuts at a display width without marking the cut; callers add
// their own suffix.
func clipRaw(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
