package day

import (
	"encoding/json"
	"testing"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d ids", id, i)
		}
		seen[id] = true
	}
}

func TestLegacyBlockID(t *testing.T) {
	id := LegacyBlockID("09:00", "Standup")
	if id != LegacyBlockID("09:00", "Standup") {
		t.Error("same entry produced different ids")
	}
	for _, other := range []ID{
		LegacyBlockID("09:30", "Standup"),
		LegacyBlockID("09:00", "Standup 2"),
		LegacyBlockID("09:00Standup", ""),
	} {
		if other == id {
			t.Errorf("distinct entries share id %q", id)
		}
	}
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string", `"abc-123"`, "abc-123"},
		{"timestamp number", `1705312800000`, "1705312800000"},
		{"timestamp plus index", `1705312800001`, "1705312800001"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Error("expected error for object id")
	}
}

func TestID_MarshalJSON_AlwaysString(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`42`), &id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"42"` {
		t.Errorf("got %s, want \"42\"", data)
	}
}
