package hull

import (
	"fmt"
	"time"
)

// Session owns the point buffers and runs both hull engines on identical
// copies of freshly generated point sets so their results and running
// times can be compared.
//
// A Session must not be used concurrently: a computation has exclusive use
// of both buffers until it returns.
type Session struct {
	gen *Generator

	// ps is the working buffer that ends up in the QuickHull arrangement
	// and is handed to the renderer. buffer keeps the pristine copy of the
	// generated points so the second engine starts from the same input.
	ps     []Vec
	buffer []Vec

	// hull prefix of the graham run, copied out before ps is restored
	grahamHull []Vec

	lastN int
}

// Timing captures the outcome of a single engine run.
type Timing struct {
	Count   int
	Elapsed time.Duration
}

// Result describes one comparison run over a generated point set.
type Result struct {
	N      int
	Quick  Timing
	Graham Timing
}

// HullCount is the number of hull vertices at the front of Session.Points.
func (r Result) HullCount() int {
	return r.Quick.Count
}

// NewSession preallocates both point buffers for at most maxPoints points.
// The buffers are reused across computations and released by Close.
func NewSession(cfg Config, maxPoints int) (*Session, error) {
	if maxPoints < 1 {
		return nil, fmt.Errorf("hull: capacity must be positive, got %d", maxPoints)
	}

	return &Session{
		gen:        NewGenerator(cfg),
		ps:         make([]Vec, maxPoints),
		buffer:     make([]Vec, maxPoints),
		grahamHull: make([]Vec, 0, maxPoints),
	}, nil
}

// Reset swaps the point generator while keeping the allocated buffers.
func (s *Session) Reset(cfg Config) {
	s.gen = NewGenerator(cfg)
	s.grahamHull = s.grahamHull[:0]
	s.lastN = 0
}

// Compute generates n points and runs both engines on identical copies.
// Afterwards Points holds the QuickHull arrangement: the hull vertices
// first, in counter-clockwise order, the remaining points behind them.
func (s *Session) Compute(n int) (Result, error) {
	if s.ps == nil {
		return Result{}, fmt.Errorf("hull: session is closed")
	}

	if n < 1 {
		return Result{}, fmt.Errorf("hull: point count must be positive, got %d", n)
	}

	if n > len(s.buffer) {
		return Result{}, fmt.Errorf("hull: point count %d exceeds capacity %d", n, len(s.buffer))
	}

	ps := s.ps[:n]
	s.gen.Fill(ps)
	copy(s.buffer, ps)
	s.lastN = n

	start := time.Now()
	grahamCount := GrahamScan(ps)
	grahamElapsed := time.Since(start)

	s.grahamHull = append(s.grahamHull[:0], ps[:grahamCount]...)

	// restore the generated points so quickhull starts from the same input
	copy(ps, s.buffer[:n])

	start = time.Now()
	quickCount := QuickHull(ps)
	quickElapsed := time.Since(start)

	return Result{
		N:      n,
		Quick:  Timing{Count: quickCount, Elapsed: quickElapsed},
		Graham: Timing{Count: grahamCount, Elapsed: grahamElapsed},
	}, nil
}

// Points returns the point set of the last computation, rearranged by
// QuickHull. The slice stays owned by the Session and is only valid until
// the next call to Compute or Reset.
func (s *Session) Points() []Vec {
	return s.ps[:s.lastN]
}

// GrahamHull returns the hull vertices found by the Graham scan of the
// last computation. Same ownership rules as Points.
func (s *Session) GrahamHull() []Vec {
	return s.grahamHull
}

// Close releases both buffers. The Session must not be used afterwards.
func (s *Session) Close() {
	s.ps = nil
	s.buffer = nil
	s.grahamHull = nil
	s.lastN = 0
}
