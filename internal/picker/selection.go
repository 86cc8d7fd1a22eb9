package picker

import (
	"sort"
	"strings"
)

// selection is the set of canonical keys currently chosen.
type selection map[string]struct{}

func (s selection) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s selection) reset() {
	for k := range s {
		delete(s, k)
	}
}

// toggle flips key membership. With replace the set is emptied first, so
// the result is always exactly {key} and never empty.
func (s selection) toggle(key string, replace bool) {
	if replace {
		s.reset()
		s[key] = struct{}{}
		return
	}
	if s.has(key) {
		delete(s, key)
		return
	}
	s[key] = struct{}{}
}

func (s selection) sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s selection) join() string {
	return strings.Join(s.sorted(), ",")
}
