package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasti0013/cpusched/internal/model"
)

func rec(id, arrival, burst int64) *model.Record {
	return model.NewRecord(model.Process{ProcessID: id, ArrivalTime: arrival, BurstDuration: burst})
}

func ids(s *Sequence) []int64 {
	var out []int64
	for r := range s.All() {
		out = append(out, r.ProcessID)
	}
	return out
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	s := New(0)
	s.Append(rec(3, 0, 9))
	s.Append(rec(1, 1, 2))
	s.Append(rec(2, 2, 5))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int64{3, 1, 2}, ids(s))
}

func TestInsertSorted_Ordering(t *testing.T) {
	s := New(4)
	s.InsertSorted(rec(1, 0, 5), ByOriginalBurst)
	s.InsertSorted(rec(2, 0, 3), ByOriginalBurst)
	s.InsertSorted(rec(3, 0, 8), ByOriginalBurst)
	s.InsertSorted(rec(4, 0, 6), ByOriginalBurst)

	assert.Equal(t, []int64{2, 1, 4, 3}, ids(s))
}

func TestInsertSorted_TiesGoAfterEqualKeys(t *testing.T) {
	s := New(0)
	s.InsertSorted(rec(1, 0, 4), ByOriginalBurst)
	s.InsertSorted(rec(2, 0, 2), ByOriginalBurst)
	s.InsertSorted(rec(3, 0, 4), ByOriginalBurst)
	s.InsertSorted(rec(4, 0, 2), ByOriginalBurst)
	s.InsertSorted(rec(5, 0, 4), ByOriginalBurst)

	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(s))
}

func TestInsertSorted_AfterRemovals(t *testing.T) {
	s := New(0)
	for i := int64(1); i <= 6; i++ {
		s.InsertSorted(rec(i, 0, i*10), ByOriginalBurst)
	}
	for i := 0; i < 4; i++ {
		_, err := s.RemoveHead()
		require.NoError(t, err)
	}
	s.InsertSorted(rec(7, 0, 55), ByOriginalBurst)
	s.InsertSorted(rec(8, 0, 1), ByOriginalBurst)

	assert.Equal(t, []int64{8, 5, 7, 6}, ids(s))
}

func TestRemoveHead(t *testing.T) {
	s := New(0)
	s.Append(rec(1, 0, 1))
	s.Append(rec(2, 0, 1))

	r, err := s.RemoveHead()
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ProcessID)

	head, ok := s.PeekHead()
	require.True(t, ok)
	assert.Equal(t, int64(2), head.ProcessID)

	_, err = s.RemoveHead()
	require.NoError(t, err)
	assert.Zero(t, s.Len())

	_, err = s.RemoveHead()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestPeekHead_Empty(t *testing.T) {
	r, ok := New(0).PeekHead()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestRemoveHead_InterleavedWithAppend(t *testing.T) {
	s := New(2)
	var next int64 = 1
	var got []int64
	for round := 0; round < 50; round++ {
		s.Append(rec(next, 0, 1))
		next++
		s.Append(rec(next, 0, 1))
		next++
		r, err := s.RemoveHead()
		require.NoError(t, err)
		got = append(got, r.ProcessID)
	}
	for s.Len() > 0 {
		r, err := s.RemoveHead()
		require.NoError(t, err)
		got = append(got, r.ProcessID)
	}

	require.Len(t, got, 100)
	for i, id := range got {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestByFinishTime(t *testing.T) {
	s := New(0)
	for _, f := range []struct{ id, finish int64 }{{1, 9}, {2, 4}, {3, 9}, {4, 1}} {
		r := rec(f.id, 0, 1)
		r.Admit()
		r.Dispatch(f.finish - 1)
		r.Execute(1)
		r.Complete(f.finish)
		s.InsertSorted(r, ByFinishTime)
	}

	assert.Equal(t, []int64{4, 2, 1, 3}, ids(s))
}

func TestAll_StopsEarly(t *testing.T) {
	s := New(0)
	s.Append(rec(1, 0, 1))
	s.Append(rec(2, 0, 1))
	s.Append(rec(3, 0, 1))

	var seen []int64
	for r := range s.All() {
		seen = append(seen, r.ProcessID)
		if r.ProcessID == 2 {
			break
		}
	}
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestDrain(t *testing.T) {
	s := New(0)
	s.Append(rec(1, 0, 1))
	s.Append(rec(2, 0, 1))
	_, _ = s.RemoveHead()
	s.Append(rec(3, 0, 1))

	out := s.Drain()
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ProcessID)
	assert.Equal(t, int64(3), out[1].ProcessID)
	assert.Zero(t, s.Len())
}
