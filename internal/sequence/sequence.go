// Package sequence provides the ordered container the engines use for the
// arrival pool, the ready set and the completed set.
package sequence

import (
	"errors"
	"iter"
	"sort"

	"github.com/Hasti0013/cpusched/internal/model"
)

// ErrEmptyContainer is returned when removing from an empty Sequence.
var ErrEmptyContainer = errors.New("empty container")

// Key extracts the ordering key of a record.
type Key func(*model.Record) int64

// ByOriginalBurst orders by total CPU demand.
func ByOriginalBurst(r *model.Record) int64 { return r.BurstDuration }

// ByRemainingBurst orders by CPU time still owed.
func ByRemainingBurst(r *model.Record) int64 { return r.Remaining() }

// ByFinishTime orders by completion time.
func ByFinishTime(r *model.Record) int64 { return r.FinishTime() }

// Sequence is a slice-backed ordered list of records. The live elements are
// items[head:]; removed slots at the front are reclaimed once they make up
// half of the backing array.
type Sequence struct {
	items []*model.Record
	head  int
}

// New returns an empty Sequence with room for n records.
func New(n int) *Sequence {
	return &Sequence{items: make([]*model.Record, 0, n)}
}

// Len reports the number of records in the sequence.
func (s *Sequence) Len() int {
	return len(s.items) - s.head
}

// Append adds r at the tail.
func (s *Sequence) Append(r *model.Record) {
	s.items = append(s.items, r)
}

// InsertSorted inserts r so the sequence stays non-decreasing by key. The
// insertion point is the first record whose key is strictly greater, so r
// lands after every record with an equal key.
func (s *Sequence) InsertSorted(r *model.Record, key Key) {
	live := s.items[s.head:]
	k := key(r)
	i := sort.Search(len(live), func(i int) bool { return key(live[i]) > k })

	s.items = append(s.items, nil)
	live = s.items[s.head:]
	copy(live[i+1:], live[i:])
	live[i] = r
}

// PeekHead returns the first record without removing it.
func (s *Sequence) PeekHead() (*model.Record, bool) {
	if s.Len() == 0 {
		return nil, false
	}
	return s.items[s.head], true
}

// RemoveHead removes and returns the first record.
func (s *Sequence) RemoveHead() (*model.Record, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyContainer
	}
	r := s.items[s.head]
	s.items[s.head] = nil
	s.head++

	if s.head == len(s.items) {
		s.items = s.items[:0]
		s.head = 0
	} else if s.head > cap(s.items)/2 {
		n := copy(s.items, s.items[s.head:])
		clear(s.items[n:])
		s.items = s.items[:n]
		s.head = 0
	}
	return r, nil
}

// All iterates over the records in order. The sequence must not be
// modified during iteration.
func (s *Sequence) All() iter.Seq[*model.Record] {
	return func(yield func(*model.Record) bool) {
		for _, r := range s.items[s.head:] {
			if !yield(r) {
				return
			}
		}
	}
}

// Drain removes every record and returns them in order, leaving the
// sequence empty. Ownership of the returned slice passes to the caller.
func (s *Sequence) Drain() []*model.Record {
	out := make([]*model.Record, s.Len())
	copy(out, s.items[s.head:])
	s.items = nil
	s.head = 0
	return out
}
