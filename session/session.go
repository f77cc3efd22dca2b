// Package session owns one grid on behalf of a front end and serializes
// access to it: exactly one search run at a time, and no edits while a run is
// in flight. Overlapping calls are rejected with ErrBusy rather than queued.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/log"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// ErrBusy is returned when a run or an edit is attempted while another run
// holds the session.
var ErrBusy = errors.New("session: a run is already in progress")

// Config describes the grid a session manages and how mazes are drawn.
type Config struct {
	Rows, Cols int
	Start, End grid.Coord

	// Density is the obstacle probability of GenerateMaze.
	Density float64
	// Seed feeds GenerateMaze; 0 means seed from the clock.
	Seed int64
	// Noise tunes GenerateNoise.
	Noise maze.NoiseOptions
	// StrictDijkstra turns on guarded relaxation for Dijkstra runs.
	StrictDijkstra bool
}

// DefaultConfig returns the reference 20×20 setup.
func DefaultConfig() Config {
	return Config{
		Rows:    grid.DefaultRows,
		Cols:    grid.DefaultCols,
		Start:   grid.DefaultStart(),
		End:     grid.DefaultEnd(),
		Density: maze.DefaultDensity,
		Noise:   maze.DefaultNoiseOptions(),
	}
}

// Run records the outcome of one search.
type Run struct {
	ID         string
	Algorithm  search.Algorithm
	Visited    int
	PathLength int
	Found      bool
	StartedAt  time.Time
	Duration   time.Duration
}

// Session is a caller-owned grid plus the busy flag guarding it.
type Session struct {
	cfg  Config
	g    *grid.Grid
	log  *log.Logger
	rng  *rand.Rand
	busy atomic.Bool
	last *Run
}

// New builds a session over a fresh grid described by cfg.
// A nil logger discards output.
func New(cfg Config, logger *log.Logger) (*Session, error) {
	g, err := grid.New(cfg.Rows, cfg.Cols, cfg.Start, cfg.End)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return FromGrid(g, cfg, logger), nil
}

// FromGrid builds a session over an existing grid, for example one parsed
// from a map file. cfg's dimensions and endpoints are taken from g.
func FromGrid(g *grid.Grid, cfg Config, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Discard()
	}
	cfg.Rows, cfg.Cols = g.Rows(), g.Cols()
	cfg.Start, cfg.End = g.Start(), g.End()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg: cfg,
		g:   g,
		log: logger,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Grid exposes the managed grid for rendering. Callers must not mutate it
// while a run is in progress.
func (s *Session) Grid() *grid.Grid { return s.g }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Busy reports whether a run currently holds the session.
func (s *Session) Busy() bool { return s.busy.Load() }

// LastRun returns the record of the most recent completed run.
func (s *Session) LastRun() (Run, bool) {
	if s.last == nil {
		return Run{}, false
	}
	return *s.last, true
}

func (s *Session) acquire(op string) error {
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Debugf("%s rejected: run in progress", op)
		return ErrBusy
	}
	return nil
}

func (s *Session) release() { s.busy.Store(false) }

// Run executes alg on the managed grid. It holds the busy flag for the whole
// synchronous call. On ErrPathNotFound the partial result is returned with
// the error so that the caller can replay the search before notifying.
func (s *Session) Run(alg search.Algorithm, opts ...search.Option) (*search.Result, error) {
	if err := s.acquire("run " + alg.String()); err != nil {
		return nil, err
	}
	defer s.release()

	if s.cfg.StrictDijkstra && alg == search.AlgoDijkstra {
		opts = append(opts[:len(opts):len(opts)], search.WithStrictRelaxation())
	}

	run := &Run{ID: uuid.NewString(), Algorithm: alg, StartedAt: time.Now()}
	s.log.Debugf("run %s: starting %s on %dx%d grid", run.ID, alg, s.g.Rows(), s.g.Cols())

	res, err := search.Run(alg, s.g, opts...)
	run.Duration = time.Since(run.StartedAt)
	if res != nil {
		run.Visited = len(res.Visited)
		run.PathLength = res.PathLength()
		run.Found = res.Found
	}

	switch {
	case errors.Is(err, search.ErrPathNotFound):
		s.log.Warnf("run %s: %s found no path after %d cells", run.ID, alg, run.Visited)
	case err != nil:
		s.log.Errorf("run %s: %v", run.ID, err)
		return nil, err
	default:
		s.log.Infof("run %s: %s visited=%d path=%d in %s", run.ID, alg, run.Visited, run.PathLength, run.Duration)
	}
	s.last = run
	return res, err
}

// ToggleObstacle flips the obstacle at (row,col); start and end are
// protected by the grid itself.
func (s *Session) ToggleObstacle(row, col int) error {
	if err := s.acquire("toggle"); err != nil {
		return err
	}
	defer s.release()
	s.g.ResetSearchState(false)
	s.g.ToggleObstacle(row, col)
	return nil
}

// Clear removes all obstacles and search marks.
func (s *Session) Clear() error {
	if err := s.acquire("clear"); err != nil {
		return err
	}
	defer s.release()
	s.g.Clear()
	s.log.Debugf("grid cleared")
	return nil
}

// GenerateMaze paints a Bernoulli maze with the configured density.
func (s *Session) GenerateMaze() (int, error) {
	if err := s.acquire("maze"); err != nil {
		return 0, err
	}
	defer s.release()
	s.g.ResetSearchState(false)
	n, err := maze.Random(s.g, s.rng, s.cfg.Density)
	if err != nil {
		return 0, err
	}
	s.log.Debugf("random maze: %d obstacles", n)
	return n, nil
}

// GenerateNoise paints a simplex-noise maze for seed.
func (s *Session) GenerateNoise(seed int64) (int, error) {
	if err := s.acquire("noise"); err != nil {
		return 0, err
	}
	defer s.release()
	s.g.ResetSearchState(false)
	n, err := maze.Noise(s.g, seed, s.cfg.Noise)
	if err != nil {
		return 0, err
	}
	s.log.Debugf("noise maze (seed %d): %d obstacles", seed, n)
	return n, nil
}
