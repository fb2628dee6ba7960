package grid

// Selection tracks an in-progress drag across grid slots.
// It is Idle until Begin, and Selecting until Commit or Cancel.
type Selection struct {
	start *int
	end   *int
}

// Begin starts a selection anchored at slot, replacing any previous one.
func (s *Selection) Begin(slot int) {
	start, end := slot, slot
	s.start = &start
	s.end = &end
}

// Extend moves the free end of the selection to slot.
// It returns false when idle or when slot is already the end, so callers can
// skip redundant redraws.
func (s *Selection) Extend(slot int) bool {
	if !s.Active() || *s.end == slot {
		return false
	}
	*s.end = slot
	return true
}

// Commit ends the selection and returns its normalized bounds, both inclusive.
func (s *Selection) Commit() (lo, hi int, ok bool) {
	lo, hi, ok = s.Range()
	s.Cancel()
	return lo, hi, ok
}

// Cancel discards the selection.
func (s *Selection) Cancel() {
	s.start = nil
	s.end = nil
}

// Active reports whether a drag is in progress.
func (s *Selection) Active() bool {
	return s.start != nil && s.end != nil
}

// Range returns the normalized inclusive bounds of the current selection.
func (s *Selection) Range() (lo, hi int, ok bool) {
	if !s.Active() {
		return 0, 0, false
	}
	return min(*s.start, *s.end), max(*s.start, *s.end), true
}

// Anchor returns the slot where the drag started.
func (s *Selection) Anchor() (int, bool) {
	if s.start == nil {
		return 0, false
	}
	return *s.start, true
}

// Selected reports whether slot lies inside the current selection.
func (s *Selection) Selected(slot int) bool {
	lo, hi, ok := s.Range()
	return ok && slot >= lo && slot <= hi
}
