package escpos

import "github.com/mattn/go-runewidth"

// displayWidth returns the column count of s. Wide (double-byte) runes
// occupy two columns.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// splitWidth cuts s after at most width display columns and returns the
// head plus the remainder. A wide rune that would straddle the boundary
// stays in the remainder.
func splitWidth(s string, width int) (head, tail string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
