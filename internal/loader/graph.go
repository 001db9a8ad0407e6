package loader

import "fmt"

// insertionOrder sorts tables so every table appears after the tables it
// references, keeping foreign-key constraints satisfiable during a load.
// Ties keep the input slice order, so the result is deterministic.
func insertionOrder(tables []Table) ([]Table, error) {
	byName := make(map[string]Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}

	visited := make(map[string]bool)
	visiting := make(map[string]bool)
	var order []Table

	var visit func(name string) error
	visit = func(name string) error {
		if visiting[name] {
			return fmt.Errorf("circular dependency detected involving table %s", name)
		}
		if visited[name] {
			return nil
		}

		table, ok := byName[name]
		if !ok {
			return fmt.Errorf("table %s is referenced but not defined", name)
		}

		visiting[name] = true
		for _, dep := range table.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		visiting[name] = false

		visited[name] = true
		order = append(order, table)
		return nil
	}

	for _, t := range tables {
		if err := visit(t.Name); err != nil {
			return nil, err
		}
	}

	return order, nil
}
