package replay

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// DefaultStepDelay is the pause between two frames in Play.
const DefaultStepDelay = 20 * time.Millisecond

// Kind tells what a frame highlights.
type Kind int

const (
	// KindVisit marks a cell expanded by the search.
	KindVisit Kind = iota
	// KindPath marks a cell on the reconstructed path.
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindVisit:
		return "visit"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Frame is one replay step.
type Frame struct {
	Step  int // zero-based position in the whole replay
	Kind  Kind
	Coord grid.Coord
}

// Player hands out the frames of one result exactly once.
type Player struct {
	frames []Frame
	next   int
	found  bool
}

// New builds a Player over res. A nil result yields an empty replay.
func New(res *search.Result) *Player {
	p := &Player{}
	if res == nil {
		return p
	}
	p.found = res.Found
	p.frames = make([]Frame, 0, len(res.Visited)+len(res.Path))
	for _, c := range res.Visited {
		p.frames = append(p.frames, Frame{Step: len(p.frames), Kind: KindVisit, Coord: c})
	}
	for _, c := range res.Path {
		p.frames = append(p.frames, Frame{Step: len(p.frames), Kind: KindPath, Coord: c})
	}
	return p
}

// Len returns the total number of frames.
func (p *Player) Len() int { return len(p.frames) }

// Remaining returns how many frames Next has not handed out yet.
func (p *Player) Remaining() int { return len(p.frames) - p.next }

// Found reports whether the replayed search reached the end.
func (p *Player) Found() bool { return p.found }

// Next returns the next frame, or false once the replay is exhausted.
func (p *Player) Next() (Frame, bool) {
	if p.next >= len(p.frames) {
		return Frame{}, false
	}
	f := p.frames[p.next]
	p.next++
	return f, true
}

// All yields the remaining frames, consuming them.
func (p *Player) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := p.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Play hands the remaining frames to fn, sleeping delay before each one.
// It returns ctx.Err() if ctx ends first, or the first error from fn.
func (p *Player) Play(ctx context.Context, delay time.Duration, fn func(Frame) error) error {
	var tick <-chan time.Time
	if delay > 0 {
		t := time.NewTicker(delay)
		defer t.Stop()
		tick = t.C
	}
	for f := range p.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := fn(f); err != nil {
			return fmt.Errorf("replay: frame %d: %w", f.Step, err)
		}
	}
	return nil
}

// Apply sets the flag a frame highlights on g: IsVisited for visit frames,
// IsPath for path frames. Out-of-bounds frames are ignored.
func Apply(g *grid.Grid, f Frame) {
	n := g.At(f.Coord)
	if n == nil {
		return
	}
	switch f.Kind {
	case KindVisit:
		n.IsVisited = true
	case KindPath:
		n.IsPath = true
	}
}

// Blank returns a copy of g with search marks cleared and obstacles kept,
// ready for frames to be applied one by one.
func Blank(g *grid.Grid) *grid.Grid {
	cp := g.Clone()
	cp.ResetSearchState(false)
	return cp
}
