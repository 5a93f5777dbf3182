package timeline

import "time"

// History records the durations of the last N frames in a ring buffer so
// a stats overlay can report a rolling average.
type History struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

// NewHistory returns a History holding up to size durations.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buffer: make([]time.Duration, size)}
}

// Record appends d, overwriting the oldest entry when full.
func (h *History) Record(d time.Duration) {
	h.buffer[h.nextIndex] = d
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.filled < len(h.buffer) {
		h.filled++
	}
}

// Snapshot returns up to the last n durations, oldest first.
func (h *History) Snapshot(n int) []time.Duration {
	if n > h.filled {
		n = h.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := h.nextIndex - 1
	if idx < 0 {
		idx = len(h.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, h.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Average returns the mean of the recorded durations, or 0 when empty.
func (h *History) Average() time.Duration {
	if h.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range h.Snapshot(h.filled) {
		sum += d
	}
	return sum / time.Duration(h.filled)
}

// Len returns the number of recorded durations.
func (h *History) Len() int {
	return h.filled
}
