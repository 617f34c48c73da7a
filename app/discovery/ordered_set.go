package discovery

// orderedSet is an insertion-ordered string set. Candidate order
// encodes priority, so uniqueness must not disturb it.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) Add(v string) {
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

// Prepend places v at the front of the set. When v is already present
// it is moved forward, so authoritative sources always win the order.
func (s *orderedSet) Prepend(v string) {
	if v == "" {
		return
	}
	if s.seen[v] {
		for i, item := range s.items {
			if item == v {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
	}
	s.seen[v] = true
	s.items = append([]string{v}, s.items...)
}

func (s *orderedSet) Items() []string {
	return s.items
}
