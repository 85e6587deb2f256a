package logic

// FindModel returns the first assignment, in canonical order, under which
// f is true. It returns ErrNotSatisfiable when there is none.
func FindModel(f Formula, opts ...TableOption) (Assignment, error) {
	if err := requirePropositional(f); err != nil {
		return nil, err
	}
	a, _, err := scanModel(Variables(f), f, newTableConfig(opts))
	return a, err
}

// scanModel also reports how many rows it looked at.
func scanModel(vars []string, f Formula, cfg tableConfig) (Assignment, int, error) {
	if err := cfg.checkSize(vars); err != nil {
		return nil, 0, err
	}
	checked := 0
	for a := range AllAssignments(vars) {
		checked++
		ok, err := Evaluate(f, a)
		if err != nil {
			return nil, checked, err
		}
		if ok {
			return a, checked, nil
		}
	}
	return nil, checked, ErrNotSatisfiable
}
