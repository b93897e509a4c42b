package costcenters

// CostCenter labels an organizational unit for journal line attribution.
type CostCenter struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Label renders the display form used on journal lines, e.g.
// "CC-100 - Fak. Teknik".
func (c CostCenter) Label() string {
	return c.Code + " - " + c.Name
}

// Defaults returns the university cost centers.
func Defaults() []CostCenter {
	return []CostCenter{
		{Code: "CC-000", Name: "General / Umum"},
		{Code: "CC-100", Name: "Fak. Teknik"},
		{Code: "CC-200", Name: "Fak. Kedokteran"},
		{Code: "CC-300", Name: "Admin & HR"},
		{Code: "CC-400", Name: "Yayasan"},
	}
}
