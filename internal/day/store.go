package day

import "slices"

// BlockStore owns the active day's time blocks in insertion order.
// It performs no sorting and no overlap checks: two blocks may cover the
// same time and both are kept.
type BlockStore struct {
	blocks []TimeBlock
	newID  func() ID
}

// NewBlockStore creates an empty store.
func NewBlockStore() *BlockStore {
	return &BlockStore{newID: NewID}
}

// Load replaces the store contents with the given field, migrating the
// legacy object form.
func (s *BlockStore) Load(field TimeBlocksField) {
	s.blocks = field.Current()
}

// Reset empties the store.
func (s *BlockStore) Reset() {
	s.blocks = nil
}

// Add appends a block with a fresh id and returns it.
// Callers validate the fields with ValidateBlock first.
func (s *BlockStore) Add(title, startTime, endTime string) TimeBlock {
	newID := s.newID
	if newID == nil {
		newID = NewID
	}
	b := TimeBlock{
		ID:        newID(),
		Title:     title,
		StartTime: startTime,
		EndTime:   endTime,
	}
	s.blocks = append(s.blocks, b)
	return b
}

// Remove deletes the block with the given id.
// It returns false, leaving the store untouched, when no block matches.
func (s *BlockStore) Remove(id ID) bool {
	i := slices.IndexFunc(s.blocks, func(b TimeBlock) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	s.blocks = slices.Delete(s.blocks, i, i+1)
	return true
}

// All returns a copy of the blocks in insertion order.
func (s *BlockStore) All() []TimeBlock {
	return slices.Clone(s.blocks)
}

// Len returns the number of blocks.
func (s *BlockStore) Len() int {
	return len(s.blocks)
}

// Find resolves an id or a unique id prefix.
func (s *BlockStore) Find(ref string) (TimeBlock, bool) {
	return findByRef(s.blocks, ref, func(b TimeBlock) ID { return b.ID })
}
