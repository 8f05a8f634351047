package app

// HistoryCapacity bounds the number of readings kept for the sparkline.
const HistoryCapacity = 512

// History is a fixed-capacity ring of ratios, oldest first.
type History struct {
	buf   []float64
	start int
	n     int
}

// NewHistory returns an empty history holding at most capacity values.
// A non-positive capacity is treated as 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]float64, capacity)}
}

// Push appends v, evicting the oldest value when full.
func (h *History) Push(v float64) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of stored values.
func (h *History) Len() int { return h.n }

// Cap returns the maximum number of stored values.
func (h *History) Cap() int { return len(h.buf) }

// Values returns a copy of the stored values, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.n)
	for i := range out {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}
