package model

const (
	historySize   = 5
	stagnantDepth = 3
)

// History remembers the hashes of recent generations so a driver can tell when a board has
// settled into a still life or a short cycle
type History struct {
	hashes []string
}

// Record appends the board's current generation, keeping only the most recent few
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the board's current generation matches one of the last three
// recorded generations
func (h *History) IsStagnant(b *Board) bool {
	current := b.Hash()
	for i := 1; i <= stagnantDepth && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
