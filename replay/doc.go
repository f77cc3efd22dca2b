// Package replay turns a finished search.Result into a finite,
// non-restartable sequence of frames for a presentation layer.
//
// A Player first yields one KindVisit frame per expanded cell, in expansion
// order, then one KindPath frame per path cell, from start side to end.
// Frames are produced on demand; the consumer decides the pace. Play adds
// the visualizer's fixed per-frame delay and stops early when its context
// is cancelled, which is the only cancellation point of a run.
package replay
