package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// cursor home followed by erase display
	clearSequence = "\033[H\033[2J"
)

// TerminalRenderer draws a board as text
type TerminalRenderer struct{}

// Display writes the board to w, one line per row
func (r *TerminalRenderer) Display(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for y := range b.Height() {
		for _, c := range b.Row(y) {
			if c == Alive {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Clear erases the terminal behind w and moves the cursor to the top-left corner
func (r *TerminalRenderer) Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearSequence)
	return err
}
