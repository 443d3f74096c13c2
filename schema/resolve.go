package schema

import "fmt"

// UnknownSupertypeError reports an extends reference to an undefined type.
type UnknownSupertypeError struct {
	Type  string
	Super string
}

func (e *UnknownSupertypeError) Error() string {
	return fmt.Sprintf("schema: type %q extends undefined type %q", e.Type, e.Super)
}

// KindMismatchError reports a preferred-name override whose shape does not
// match the property's actual shape.
type KindMismatchError struct {
	Type     string
	Property string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("schema: preferred name for %s.%s does not match the property shape", e.Type, e.Property)
}

// CycleError reports a cycle in the extends graph.
type CycleError struct{ Type string }

func (e *CycleError) Error() string {
	return fmt.Sprintf("schema: inheritance cycle through type %q", e.Type)
}

// ResolvedProperty is one entry of a type's effective property set.
type ResolvedProperty struct {
	Name string
	Def  PropertyDef
}

// EffectiveProperties computes the effective property set of a type: the
// post-order union of its resolved ancestor sets with the type's own
// properties applied last (winning name collisions), minus the type's
// except_properties, with preferred-name overrides folded in. The result is
// ordered by first insertion and is deterministic for a given document.
func (s *Schema) EffectiveProperties(name string) ([]ResolvedProperty, error) {
	return s.effectiveProperties(name, map[string]bool{})
}

func (s *Schema) effectiveProperties(name string, walking map[string]bool) ([]ResolvedProperty, error) {
	def, ok := s.Types[name]
	if !ok {
		return nil, &UnknownSupertypeError{Type: name, Super: name}
	}
	if walking[name] {
		return nil, &CycleError{Type: name}
	}
	walking[name] = true
	defer delete(walking, name)

	order := []string{}
	byName := map[string]PropertyDef{}
	insert := func(pn string, pd PropertyDef) {
		if _, seen := byName[pn]; !seen {
			order = append(order, pn)
		}
		byName[pn] = pd
	}

	for _, super := range def.Extends {
		if _, ok := s.Types[super]; !ok {
			return nil, &UnknownSupertypeError{Type: name, Super: super}
		}
		inherited, err := s.effectiveProperties(super, walking)
		if err != nil {
			return nil, err
		}
		for _, rp := range inherited {
			insert(rp.Name, rp.Def)
		}
	}
	for _, pn := range def.Properties.Names() {
		pd, _ := def.Properties.Get(pn)
		insert(pn, pd)
	}

	out := make([]ResolvedProperty, 0, len(order))
	for _, pn := range order {
		if def.excepts(pn) {
			continue
		}
		pd, err := applyPreferredName(name, pn, byName[pn], def)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedProperty{Name: pn, Def: pd})
	}
	return out, nil
}

// applyPreferredName makes an override's name the canonical tag and folds the
// previous tag (and container tag) into the alias set so old documents remain
// decodable.
func applyPreferredName(typeName, propName string, pd PropertyDef, def TypeDef) (PropertyDef, error) {
	pref, ok := def.PreferredName[propName]
	if !ok {
		return pd, nil
	}
	if pd.IsLangContainer() != (pref.Container != "") {
		return pd, &KindMismatchError{Type: typeName, Property: propName}
	}
	pd.Aka = appendUnique(pd.Aka, pd.WireTag(propName))
	pd.Tag = pref.Default
	if pref.Container != "" {
		pd.ContainerAka = appendUnique(pd.ContainerAka, pd.ContainerTag)
		pd.ContainerTag = pref.Container
	}
	return pd, nil
}

func appendUnique(xs []string, v string) []string {
	for _, x := range xs {
		if x == v {
			return xs
		}
	}
	out := make([]string, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, v)
}
