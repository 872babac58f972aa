package visualizer

import "sync"

// History is a thread-safe circular buffer of spring values.
type History struct {
	buf  []float64
	size int
	w    int // write position
	len  int // current fill level
	mu   sync.Mutex
}

// NewHistory creates a history holding the last size values.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{
		buf:  make([]float64, size),
		size: size,
	}
}

// Push appends values, overwriting the oldest ones when full.
func (h *History) Push(values ...float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, v := range values {
		h.buf[h.w] = v
		h.w = (h.w + 1) % h.size
	}
	h.len = min(h.len+len(values), h.size)
}

// Last returns up to n most recent values, oldest first.
func (h *History) Last(n int) []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	n = min(n, h.len)
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	start := (h.w - n + h.size) % h.size
	for i := range n {
		out[i] = h.buf[(start+i)%h.size]
	}
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.len
}

// Clear resets the history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.w = 0
	h.len = 0
}
