package grid

import "testing"

func TestSelection_IdleByDefault(t *testing.T) {
	var s Selection
	if s.Active() {
		t.Error("new selection should be idle")
	}
	if _, _, ok := s.Range(); ok {
		t.Error("Range() on idle selection should not be ok")
	}
	if _, _, ok := s.Commit(); ok {
		t.Error("Commit() on idle selection should not be ok")
	}
	if s.Extend(4) {
		t.Error("Extend() on idle selection should be a no-op")
	}
	if s.Active() {
		t.Error("Extend() must not start a selection")
	}
}

func TestSelection_Begin(t *testing.T) {
	var s Selection
	s.Begin(5)

	lo, hi, ok := s.Range()
	if !ok || lo != 5 || hi != 5 {
		t.Errorf("Range() = (%d, %d, %v), want (5, 5, true)", lo, hi, ok)
	}
	if anchor, ok := s.Anchor(); !ok || anchor != 5 {
		t.Errorf("Anchor() = (%d, %v), want (5, true)", anchor, ok)
	}
}

func TestSelection_CommitNormalizes(t *testing.T) {
	tests := []struct {
		name   string
		begin  int
		extend []int
		wantLo int
		wantHi int
	}{
		{"drag downwards", 2, []int{3, 4, 5}, 2, 5},
		{"drag upwards", 5, []int{4, 3, 2}, 2, 5},
		{"drag past anchor and back", 4, []int{7, 1}, 1, 4},
		{"no movement", 3, nil, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			s.Begin(tt.begin)
			for _, slot := range tt.extend {
				s.Extend(slot)
			}

			lo, hi, ok := s.Commit()
			if !ok || lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Commit() = (%d, %d, %v), want (%d, %d, true)", lo, hi, ok, tt.wantLo, tt.wantHi)
			}
			if s.Active() {
				t.Error("selection should be idle after Commit()")
			}
		})
	}
}

func TestSelection_ExtendUnchangedIsNoop(t *testing.T) {
	var s Selection
	s.Begin(2)

	if s.Extend(2) {
		t.Error("Extend() to the anchor slot should report no change")
	}
	if !s.Extend(3) {
		t.Error("Extend() to a new slot should report a change")
	}
	if s.Extend(3) {
		t.Error("Extend() to the same slot twice should report no change")
	}
}

func TestSelection_Cancel(t *testing.T) {
	var s Selection
	s.Begin(1)
	s.Extend(6)
	s.Cancel()

	if s.Active() {
		t.Error("selection should be idle after Cancel()")
	}
	if _, _, ok := s.Commit(); ok {
		t.Error("Commit() after Cancel() should not be ok")
	}
}

func TestSelection_Selected(t *testing.T) {
	var s Selection
	s.Begin(6)
	s.Extend(3)

	for slot := 0; slot < 10; slot++ {
		want := slot >= 3 && slot <= 6
		if got := s.Selected(slot); got != want {
			t.Errorf("Selected(%d) = %v, want %v", slot, got, want)
		}
	}
}
