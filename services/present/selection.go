package present

// Selection tracks which result is highlighted as Up/Down moves through the
// flattened result list. Movement wraps circularly; an empty list pins the
// selection at none (-1).
type Selection struct {
	size    int
	current int
}

func NewSelection(size int) *Selection {
	return &Selection{size: size, current: -1}
}

// Current returns the selected position, -1 when nothing is selected.
func (s *Selection) Current() int {
	return s.current
}

// Select moves the selection directly to position, clearing it when position
// is out of range.
func (s *Selection) Select(position int) {
	if position < 0 || position >= s.size {
		s.current = -1
		return
	}
	s.current = position
}

// Next moves the selection down, wrapping to the top past the last result.
func (s *Selection) Next() int {
	if s.size == 0 {
		return -1
	}
	s.current = (s.current + 1) % s.size
	return s.current
}

// Prev moves the selection up, wrapping to the bottom past the first result.
func (s *Selection) Prev() int {
	if s.size == 0 {
		return -1
	}
	if s.current <= 0 {
		s.current = s.size - 1
	} else {
		s.current--
	}
	return s.current
}
