package day

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/javiermolinar/daygrid/internal/grid"
)

// Snapshot is the complete persisted state of one calendar date.
type Snapshot struct {
	Goals      []Goal      `json:"goals"`
	TimeBlocks []TimeBlock `json:"timeBlocks"`
}

// IsEmpty reports whether the snapshot has no goals and no blocks.
func (s Snapshot) IsEmpty() bool {
	return len(s.Goals) == 0 && len(s.TimeBlocks) == 0
}

// MarshalJSON writes empty lists as [] rather than null.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type plain Snapshot
	p := plain(s)
	if p.Goals == nil {
		p.Goals = []Goal{}
	}
	if p.TimeBlocks == nil {
		p.TimeBlocks = []TimeBlock{}
	}
	return json.Marshal(p)
}

// TimeBlocksField is the "timeBlocks" value as found in storage. It holds
// either the current list form or the legacy object form mapping "HH:MM" to
// a title. Exactly one of Blocks or Legacy is meaningful: Legacy is non-nil
// only when the stored value was an object.
type TimeBlocksField struct {
	Blocks []TimeBlock
	Legacy map[string]string
}

// IsLegacy reports whether the field was stored in the legacy object form.
func (f TimeBlocksField) IsLegacy() bool {
	return f.Legacy != nil
}

// Len returns the number of entries, counting only titled legacy entries.
func (f TimeBlocksField) Len() int {
	if !f.IsLegacy() {
		return len(f.Blocks)
	}
	n := 0
	for _, title := range f.Legacy {
		if title != "" {
			n++
		}
	}
	return n
}

// UnmarshalJSON detects the stored shape.
func (f *TimeBlocksField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = TimeBlocksField{}

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '[':
		return json.Unmarshal(data, &f.Blocks)
	case data[0] == '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		f.Legacy = make(map[string]string, len(raw))
		for k, v := range raw {
			var title string
			// Non-string values (null, false, "") mean "no task" and are kept
			// as empty titles so the migration drops them.
			if err := json.Unmarshal(v, &title); err != nil {
				title = ""
			}
			f.Legacy[k] = title
		}
		return nil
	default:
		return fmt.Errorf("timeBlocks must be a list or an object, got %.20s", data)
	}
}

// MarshalJSON always writes the current list form.
func (f TimeBlocksField) MarshalJSON() ([]byte, error) {
	blocks := f.Blocks
	if f.IsLegacy() {
		blocks = MigrateLegacy(f.Legacy)
	}
	if blocks == nil {
		blocks = []TimeBlock{}
	}
	return json.Marshal(blocks)
}

// Current returns the blocks in the current form, migrating legacy data.
func (f TimeBlocksField) Current() []TimeBlock {
	if f.IsLegacy() {
		return MigrateLegacy(f.Legacy)
	}
	return slices.Clone(f.Blocks)
}

// MigrateLegacy converts the legacy "HH:MM" -> title mapping into blocks.
// Entries with an empty title are dropped. Each block lasts one hour from
// its key, minutes preserved, without clamping to the grid. Blocks come out
// in ascending key order. Ids are derived from the key and title so they
// stay the same until the migrated form is written. Keys that are not valid times
// are skipped.
func MigrateLegacy(legacy map[string]string) []TimeBlock {
	keys := make([]string, 0, len(legacy))
	for k := range legacy {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	blocks := make([]TimeBlock, 0, len(keys))
	for _, start := range keys {
		title := legacy[start]
		if title == "" {
			continue
		}
		end, err := grid.AddHour(start)
		if err != nil {
			continue
		}
		blocks = append(blocks, TimeBlock{
			ID:        LegacyBlockID(start, title),
			Title:     title,
			StartTime: start,
			EndTime:   end,
		})
	}
	return blocks
}

// RawSnapshot is a snapshot as decoded from storage, before migration.
type RawSnapshot struct {
	Goals      []Goal          `json:"goals"`
	TimeBlocks TimeBlocksField `json:"timeBlocks"`
}

// Snapshot converts to the current form, migrating legacy blocks.
func (r RawSnapshot) Snapshot() Snapshot {
	return Snapshot{
		Goals:      slices.Clone(r.Goals),
		TimeBlocks: r.TimeBlocks.Current(),
	}
}

// IsEmpty reports whether there are no goals and no titled blocks.
func (r RawSnapshot) IsEmpty() bool {
	return len(r.Goals) == 0 && r.TimeBlocks.Len() == 0
}

// DecodeSnapshot parses a stored snapshot in either format.
func DecodeSnapshot(data []byte) (RawSnapshot, error) {
	var raw RawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawSnapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return raw, nil
}

// EncodeSnapshot serializes a snapshot in the current format.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}
