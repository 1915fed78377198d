package engine

type noModifiers struct{}

func (noModifiers) FlatModifiers(string) []float64   { return nil }
func (noModifiers) ScalarModifiers(string) []float64 { return nil }

// StaticModifiers is a ModifierSource backed by fixed per-stat lists
type StaticModifiers struct {
	Flat   map[string][]float64
	Scalar map[string][]float64
}

// FlatModifiers returns the flat modifiers registered for stat
func (m *StaticModifiers) FlatModifiers(stat string) []float64 {
	if m == nil {
		return nil
	}
	return m.Flat[stat]
}

// ScalarModifiers returns the scalar modifiers registered for stat
func (m *StaticModifiers) ScalarModifiers(stat string) []float64 {
	if m == nil {
		return nil
	}
	return m.Scalar[stat]
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
