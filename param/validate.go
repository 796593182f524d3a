package param

// Validate checks raw caller input against the schema and returns a fresh
// Set, or the first violation in schema order. The output is all-or-nothing:
// on error nothing of the partially built set is visible to the caller.
// Unknown keys in raw are dropped, not stored. Validate is a pure function
// of its inputs and safe for concurrent use.
func (s Schema) Validate(raw map[string]interface{}) (Set, error) {
	out := make(Set, len(s))

	for _, rule := range s {
		value, provided := raw[rule.Name]

		switch rule.Category {
		case Mandatory:
			if !provided {
				return nil, &MissingError{Param: rule.Name}
			}
		case Optional:
			if !provided {
				continue
			}
		case Conditional:
			if !provided {
				if dep, ok := triggered(rule.DependsOn, raw); ok {
					return nil, &MissingError{
						Param:        rule.Name,
						Because:      dep.Param,
						BecauseValue: raw[dep.Param],
					}
				}
				continue
			}
		}

		if len(rule.Kinds) > 0 && !kindOK(rule.Kinds, value) {
			return nil, &TypeError{Param: rule.Name, Want: rule.Kinds, Got: value}
		}
		if rule.Range != nil {
			n, _ := numeric(value)
			if n < rule.Range.Min || n > rule.Range.Max {
				return nil, &RangeError{Param: rule.Name, Min: rule.Range.Min, Max: rule.Range.Max, Got: n}
			}
		}
		if len(rule.Allowed) > 0 && !allowed(rule.Allowed, value) {
			return nil, &ChoiceError{Param: rule.Name, Allowed: rule.Allowed, Got: value}
		}

		out[rule.Name] = value
	}
	return out, nil
}

func triggered(deps []Dependency, raw map[string]interface{}) (Dependency, bool) {
	for _, d := range deps {
		if d.satisfied(raw) {
			return d, true
		}
	}
	return Dependency{}, false
}

func allowed(set []string, v interface{}) bool {
	str, ok := v.(string)
	if !ok {
		return false
	}
	for _, a := range set {
		if a == str {
			return true
		}
	}
	return false
}
