// Package sequence allocates year scoped, zero padded document numbers such
// as INV-2024-0001. State lives in two durable keys: the year of the last
// committed number and its sequence value.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
)

// State is the last committed allocation
type State struct {
	Year         int `json:"year"`
	LastSequence int `json:"last_sequence"`
}

// Reservation is a number handed out and already committed by Reserve
type Reservation struct {
	Number   string `json:"number"`
	Year     int    `json:"year"`
	Sequence int    `json:"sequence"`
}

type Allocator struct {
	mu      sync.Mutex
	kv      kvstore.Store
	prefix  string
	width   int
	yearKey string
	seqKey  string
	logger  *logger.Logger

	// numbers handed out by Reserve that are neither consumed nor released.
	// Process local: after a restart every open reservation stays a gap.
	pending map[string]struct{}
}

func NewAllocator(kv kvstore.Store, cfg *config.Configuration, log *logger.Logger) *Allocator {
	return &Allocator{
		kv:      kv,
		prefix:  cfg.Sequence.Prefix,
		width:   cfg.Sequence.Width,
		yearKey: cfg.Sequence.YearKey,
		seqKey:  cfg.Sequence.SeqKey,
		logger:  log,
		pending: make(map[string]struct{}),
	}
}

// Format renders PREFIX-{year}-{seq zero padded to width}
func (a *Allocator) Format(year, seq int) string {
	return fmt.Sprintf("%s-%d-%0*d", a.prefix, year, a.width, seq)
}

// Parse splits a formatted number back into year and sequence
func (a *Allocator) Parse(number string) (year, seq int, ok bool) {
	rest, found := strings.CutPrefix(number, a.prefix+"-")
	if !found {
		return 0, 0, false
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	seq, err = strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return 0, 0, false
	}
	return year, seq, true
}

// State reads the persisted year and sequence. Missing or unparsable keys
// read as zero.
func (a *Allocator) State(ctx context.Context) (State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.load(ctx)
}

func (a *Allocator) load(ctx context.Context) (State, error) {
	var state State

	year, ok, err := a.kv.Get(ctx, a.yearKey)
	if err != nil {
		return state, err
	}
	if ok {
		state.Year, _ = strconv.Atoi(year)
	}

	seq, ok, err := a.kv.Get(ctx, a.seqKey)
	if err != nil {
		return state, err
	}
	if ok {
		if n, err := strconv.Atoi(seq); err == nil && n > 0 {
			state.LastSequence = n
		}
	}
	return state, nil
}

// next is the candidate for year. A stored year other than the requested one
// counts as a fresh year without writing anything.
func (a *Allocator) next(state State, year int) int {
	if state.Year != year {
		return 1
	}
	return state.LastSequence + 1
}

// PeekNext returns the candidate number for year without committing it.
// Two peeks without a commit in between return the same candidate.
func (a *Allocator) PeekNext(ctx context.Context, year int) (string, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.load(ctx)
	if err != nil {
		return "", 0, err
	}
	seq := a.next(state, year)
	return a.Format(year, seq), seq, nil
}

// Commit persists seq as the last used value for year. It is the only writer
// of the durable keys besides Reserve and Release.
func (a *Allocator) Commit(ctx context.Context, seq, year int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.commit(ctx, seq, year)
}

func (a *Allocator) commit(ctx context.Context, seq, year int) error {
	if seq < 0 || year <= 0 {
		return ierr.NewErrorf("invalid sequence state year=%d seq=%d", year, seq).
			WithHint("Sequence and year must be positive").
			Mark(ierr.ErrValidation)
	}
	err := a.kv.SetMany(ctx, map[string]string{
		a.yearKey: strconv.Itoa(year),
		a.seqKey:  strconv.Itoa(seq),
	})
	if err != nil {
		return err
	}
	a.logger.Debugw("committed sequence", "year", year, "sequence", seq)
	return nil
}

// CommitNumber commits a formatted number that was obtained through PeekNext
// once the document using it is saved. Numbers at or behind the stored state
// leave it untouched so the counter never moves backwards.
func (a *Allocator) CommitNumber(ctx context.Context, number string) error {
	year, seq, ok := a.Parse(number)
	if !ok {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.load(ctx)
	if err != nil {
		return err
	}
	if year < state.Year || (year == state.Year && seq <= state.LastSequence) {
		return nil
	}
	return a.commit(ctx, seq, year)
}

// Reserve peeks and commits in one step so concurrent callers never receive
// the same number.
func (a *Allocator) Reserve(ctx context.Context, year int) (Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.load(ctx)
	if err != nil {
		return Reservation{}, err
	}
	seq := a.next(state, year)
	if err := a.commit(ctx, seq, year); err != nil {
		return Reservation{}, err
	}

	r := Reservation{Number: a.Format(year, seq), Year: year, Sequence: seq}
	a.pending[r.Number] = struct{}{}
	a.logger.Infow("reserved document number", "number", r.Number)
	return r, nil
}

// Release hands an abandoned reservation back. The counter only rolls back
// when r is an open reservation and still the last number allocated in its
// year; otherwise the number stays a gap and false is returned.
func (a *Allocator) Release(ctx context.Context, r Reservation) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.pending[r.Number]; !ok {
		a.logger.Infow("release of unknown or consumed number ignored", "number", r.Number)
		return false, nil
	}

	state, err := a.load(ctx)
	if err != nil {
		return false, err
	}
	if state.Year != r.Year || state.LastSequence != r.Sequence {
		delete(a.pending, r.Number)
		a.logger.Infow("reservation left as gap",
			"number", r.Number,
			"last_year", state.Year,
			"last_sequence", state.LastSequence,
		)
		return false, nil
	}
	if err := a.commit(ctx, r.Sequence-1, r.Year); err != nil {
		return false, err
	}
	delete(a.pending, r.Number)
	a.logger.Infow("released document number", "number", r.Number)
	return true, nil
}

// Consume marks a reserved number as used by a saved document. A consumed
// number is never handed out again, even if the document is deleted later.
func (a *Allocator) Consume(number string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.pending, number)
}

// ReleaseNumber is Release for a formatted number
func (a *Allocator) ReleaseNumber(ctx context.Context, number string) (bool, error) {
	year, seq, ok := a.Parse(number)
	if !ok {
		return false, ierr.NewErrorf("invalid document number %q", number).
			WithHintf("Number must look like %s", a.Format(2024, 1)).
			Mark(ierr.ErrValidation)
	}
	return a.Release(ctx, Reservation{Number: number, Year: year, Sequence: seq})
}
