package life

import (
	"crypto/md5"
	"fmt"
)

// Fingerprint returns a stable hash of a generation.
func Fingerprint(cells []bool) string {
	h := md5.New()
	buf := make([]byte, len(cells))
	for i, alive := range cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers the fingerprints of the most recent generations so a
// settled board (still life or short oscillator) can be recognised.
type History struct {
	window int
	hashes []string
}

// NewHistory keeps up to window fingerprints.
func NewHistory(window int) *History {
	if window <= 0 {
		window = 1
	}
	return &History{window: window}
}

// Observe records a fingerprint and returns the period of the repeat it closes,
// or 0 when the fingerprint was not seen within the window.
func (h *History) Observe(hash string) int {
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}
	return period
}
