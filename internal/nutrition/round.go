package nutrition

import "github.com/shopspring/decimal"

// RoundHalfUp rounds v to places decimal places with halves rounded away from
// zero. The value is converted through its shortest decimal representation,
// so 3.45 rounds to 3.5 even though the float64 closest to 3.45 is below it.
func RoundHalfUp(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
