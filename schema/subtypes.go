package schema

import "sort"

// Subtypes returns the transitive closure of types extending base, base
// itself included and listed first. The remainder is name-sorted so the
// closure is deterministic for a given document.
func (s *Schema) Subtypes(base string) ([]string, error) {
	if _, ok := s.Types[base]; !ok {
		return nil, &UnknownSupertypeError{Type: base, Super: base}
	}
	closure := map[string]bool{base: true}
	frontier := []string{base}
	for len(frontier) > 0 {
		name := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for candidate, def := range s.Types {
			if closure[candidate] {
				continue
			}
			for _, super := range def.Extends {
				if super == name {
					closure[candidate] = true
					frontier = append(frontier, candidate)
					break
				}
			}
		}
	}
	rest := make([]string, 0, len(closure)-1)
	for name := range closure {
		if name != base {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append([]string{base}, rest...), nil
}
