package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
)

type AllocatorSuite struct {
	suite.Suite
	ctx       context.Context
	kv        *kvstore.MemoryStore
	allocator *Allocator
}

func TestAllocator(t *testing.T) {
	suite.Run(t, new(AllocatorSuite))
}

func (s *AllocatorSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = kvstore.NewMemoryStore()
	s.allocator = NewAllocator(s.kv, config.GetDefaultConfig(), logger.NewNopLogger())
}

func (s *AllocatorSuite) TestPeekCommitScenario() {
	id, seq, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0001", id)
	s.Equal(1, seq)

	s.NoError(s.allocator.Commit(s.ctx, 1, 2024))

	id, seq, err = s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0002", id)
	s.Equal(2, seq)

	id, seq, err = s.allocator.PeekNext(s.ctx, 2025)
	s.NoError(err)
	s.Equal("INV-2025-0001", id)
	s.Equal(1, seq)

	// rollover peek does not write
	state, err := s.allocator.State(s.ctx)
	s.NoError(err)
	s.Equal(State{Year: 2024, LastSequence: 1}, state)
}

func (s *AllocatorSuite) TestPeekTwiceReturnsSameCandidate() {
	first, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	second, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal(first, second)
}

func (s *AllocatorSuite) TestSequentialCommitsAreMonotonic() {
	last := 0
	for i := 0; i < 25; i++ {
		_, seq, err := s.allocator.PeekNext(s.ctx, 2024)
		s.NoError(err)
		s.Equal(last+1, seq)
		s.NoError(s.allocator.Commit(s.ctx, seq, 2024))
		last = seq
	}

	_, seq, err := s.allocator.PeekNext(s.ctx, 2025)
	s.NoError(err)
	s.NoError(s.allocator.Commit(s.ctx, seq, 2025))
	s.Equal(1, seq)
}

func (s *AllocatorSuite) TestUnparsableStateReadsAsUnset() {
	s.NoError(s.kv.Set(s.ctx, "invoice_year", "twenty"))
	s.NoError(s.kv.Set(s.ctx, "invoice_seq", "x"))

	id, seq, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0001", id)
	s.Equal(1, seq)
}

func (s *AllocatorSuite) TestWidthOverflowKeepsDigits() {
	s.NoError(s.allocator.Commit(s.ctx, 9999, 2024))
	id, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-10000", id)
}

func (s *AllocatorSuite) TestReserveIsUniqueUnderConcurrency() {
	const n = 50
	numbers := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.allocator.Reserve(s.ctx, 2024)
			s.NoError(err)
			numbers[i] = r.Number
		}(i)
	}
	wg.Wait()

	s.Len(lo.Uniq(numbers), n)

	state, err := s.allocator.State(s.ctx)
	s.NoError(err)
	s.Equal(n, state.LastSequence)
}

func (s *AllocatorSuite) TestReleaseTailRollsBack() {
	r, err := s.allocator.Reserve(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0001", r.Number)

	released, err := s.allocator.Release(s.ctx, r)
	s.NoError(err)
	s.True(released)

	id, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0001", id)
}

func (s *AllocatorSuite) TestReleaseNonTailLeavesGap() {
	first, err := s.allocator.Reserve(s.ctx, 2024)
	s.NoError(err)
	_, err = s.allocator.Reserve(s.ctx, 2024)
	s.NoError(err)

	released, err := s.allocator.Release(s.ctx, first)
	s.NoError(err)
	s.False(released)

	id, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0003", id)
}

func (s *AllocatorSuite) TestReleaseConsumedNumberLeavesGap() {
	r, err := s.allocator.Reserve(s.ctx, 2024)
	s.NoError(err)
	s.allocator.Consume(r.Number)

	released, err := s.allocator.Release(s.ctx, r)
	s.NoError(err)
	s.False(released)

	id, _, err := s.allocator.PeekNext(s.ctx, 2024)
	s.NoError(err)
	s.Equal("INV-2024-0002", id)
}

func (s *AllocatorSuite) TestReleaseTwice() {
	r, err := s.allocator.Reserve(s.ctx, 2024)
	s.NoError(err)

	released, err := s.allocator.Release(s.ctx, r)
	s.NoError(err)
	s.True(released)

	released, err = s.allocator.Release(s.ctx, r)
	s.NoError(err)
	s.False(released)
}

func (s *AllocatorSuite) TestReleaseNumberRejectsGarbage() {
	_, err := s.allocator.ReleaseNumber(s.ctx, "QT-1")
	s.Error(err)
}

func (s *AllocatorSuite) TestCommitNumberOnlyMovesForward() {
	s.NoError(s.allocator.Commit(s.ctx, 5, 2024))

	s.NoError(s.allocator.CommitNumber(s.ctx, "INV-2024-0003"))
	state, err := s.allocator.State(s.ctx)
	s.NoError(err)
	s.Equal(5, state.LastSequence)

	s.NoError(s.allocator.CommitNumber(s.ctx, "INV-2024-0006"))
	state, err = s.allocator.State(s.ctx)
	s.NoError(err)
	s.Equal(6, state.LastSequence)

	s.NoError(s.allocator.CommitNumber(s.ctx, "INV-2023-0042"))
	state, err = s.allocator.State(s.ctx)
	s.NoError(err)
	s.Equal(State{Year: 2024, LastSequence: 6}, state)
}

func (s *AllocatorSuite) TestParse() {
	tests := []struct {
		in   string
		year int
		seq  int
		ok   bool
	}{
		{"INV-2024-0001", 2024, 1, true},
		{"INV-2025-0120", 2025, 120, true},
		{"INV-2025", 0, 0, false},
		{"EXP-2025-0001", 0, 0, false},
		{"INV-2025-0000", 0, 0, false},
	}
	for _, tt := range tests {
		year, seq, ok := s.allocator.Parse(tt.in)
		s.Equal(tt.ok, ok, tt.in)
		s.Equal(tt.year, year, tt.in)
		s.Equal(tt.seq, seq, tt.in)
	}
}
