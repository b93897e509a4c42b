package taxes

// Tax represents a tax rule. Selecting a rule on a journal line is
// informational; no tax line is generated automatically.
type Tax struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"` // fraction, 0..1
}

// Defaults returns the configured Indonesian tax rules.
func Defaults() []Tax {
	return []Tax{
		{Code: "PPN", Rate: 0.11, Name: "PPN 11%"},
		{Code: "PPH23", Rate: 0.02, Name: "PPh 23 (Jasa)"},
		{Code: "PPH21", Rate: 0.05, Name: "PPh 21 (Tenaga Ahli)"},
		{Code: "NON", Rate: 0, Name: "Non-Taxable"},
	}
}
