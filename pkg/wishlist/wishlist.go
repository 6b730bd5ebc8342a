package wishlist

import "sort"

// Set is the membership-only collection of wishlisted product ids.
type Set struct {
	ids map[string]struct{}
}

func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is a member afterwards.
func (s *Set) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the members sorted, for stable rendering.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
