package model

import "math"

// Macros represents nutrition information for one serving of a food or add-on.
type Macros struct {
	Calories int     `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
	Fiber    float64 `json:"fiber" yaml:"fiber"`
	Sugar    float64 `json:"sugar" yaml:"sugar"`
}

// Fields returns the decimal macro fields keyed by name, in a fixed order.
func (m Macros) Fields() []MacroField {
	return []MacroField{
		{Name: "protein", Value: m.Protein},
		{Name: "carbs", Value: m.Carbs},
		{Name: "fat", Value: m.Fat},
		{Name: "fiber", Value: m.Fiber},
		{Name: "sugar", Value: m.Sugar},
	}
}

// MacroField is a single named decimal macro value.
type MacroField struct {
	Name  string
	Value float64
}

// Invalid reports the names of fields that are negative, NaN or infinite.
func (m Macros) Invalid() []string {
	var bad []string
	if m.Calories < 0 {
		bad = append(bad, "calories")
	}
	for _, f := range m.Fields() {
		if f.Value < 0 || math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			bad = append(bad, f.Name)
		}
	}
	return bad
}
