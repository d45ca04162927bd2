package core

import (
	"fmt"

	"alusus/internal/osal"
)

// searchPathStack is the LIFO of directories the resolver consults.
// Pushing the current top again collapses into a refcount bump, so a
// balanced push/pop sequence always restores the previous state.
type searchPathStack struct {
	paths  []osal.Path
	counts []int
}

func (s *searchPathStack) push(p osal.Path) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: empty search path", ErrInvalidArgument)
	}
	if !p.IsAbs() {
		return fmt.Errorf("%w: search path %q is not absolute", ErrInvalidArgument, p)
	}
	if n := len(s.paths); n > 0 && s.paths[n-1].Equal(p) {
		s.counts[n-1]++
		return nil
	}
	s.paths = append(s.paths, p)
	s.counts = append(s.counts, 1)
	return nil
}

func (s *searchPathStack) pop(p osal.Path) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: empty search path", ErrInvalidArgument)
	}
	if !p.IsAbs() {
		return fmt.Errorf("%w: search path %q is not absolute", ErrInvalidArgument, p)
	}
	for i := len(s.paths) - 1; i >= 0; i-- {
		if !s.paths[i].Equal(p) {
			continue
		}
		s.counts[i]--
		if s.counts[i] == 0 {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			s.counts = append(s.counts[:i], s.counts[i+1:]...)
		}
		return nil
	}
	return fmt.Errorf("%w: search path %q is not on the stack", ErrInvalidArgument, p)
}

// newestFirst returns the lookup order: top of the stack first.
func (s *searchPathStack) newestFirst() []osal.Path {
	out := make([]osal.Path, 0, len(s.paths))
	for i := len(s.paths) - 1; i >= 0; i-- {
		out = append(out, s.paths[i])
	}
	return out
}

func (s *searchPathStack) depth() int { return len(s.paths) }
