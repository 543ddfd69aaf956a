package parser

import (
	"errors"
)

// production parses one node from the stream.
type production[N any] func(s *Stream) (N, error)

// attempt runs p and restores the stream when it fails.
func attempt[N any](s *Stream, p production[N]) (N, error) {
	m := s.Mark()
	n, err := p(s)
	if err != nil {
		s.Reset(m)
	}
	return n, err
}

// choice tries alts in order from the same position and commits to the
// first success. A committed failure (bad literal, nesting limit) stops the
// search. Otherwise the failure that got furthest is returned, or
// "expected <expected>" when no alternative consumed anything.
func choice[N any](s *Stream, expected string, alts ...production[N]) (N, error) {
	var zero N
	start := s.Mark()
	var best *Error
	for _, alt := range alts {
		n, err := alt(s)
		if err == nil {
			return n, nil
		}
		s.Reset(start)
		var perr *Error
		if !errors.As(err, &perr) || perr.committed() {
			return zero, err
		}
		best = further(best, perr)
	}
	if best == nil || best.at == start.pos {
		return zero, s.unexpected(expected)
	}
	return zero, best
}
