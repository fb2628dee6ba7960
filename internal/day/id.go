package day

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ID identifies a goal or a time block within a day.
// Snapshots written by the old web planner carry numeric ids (millisecond
// timestamps); those decode to their decimal string.
type ID string

// NewID returns a fresh random id. Ids never collide within a process, no
// matter how quickly they are created.
func NewID() ID {
	return ID(uuid.NewString())
}

// legacyNamespace scopes the name-based ids given to migrated legacy blocks.
var legacyNamespace = uuid.MustParse("5b8f3c1e-7d2a-4e6b-9c0f-2a1d8e4b6f37")

// LegacyBlockID derives the id of a block migrated from the legacy
// "HH:MM" -> title form. The same entry gets the same id on every load, and
// distinct start times never share one.
func LegacyBlockID(start, title string) ID {
	return ID(uuid.NewSHA1(legacyNamespace, []byte(start+"\x00"+title)).String())
}

// String returns the id text.
func (id ID) String() string {
	return string(id)
}

// MarshalJSON always encodes the id as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}
