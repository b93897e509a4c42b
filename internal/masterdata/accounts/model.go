package accounts

// Account is a chart-of-accounts entry. Immutable reference data looked up
// by code when building journal lines.
type Account struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultChart returns the university chart of accounts.
func DefaultChart() []Account {
	return []Account{
		{Code: "1001", Name: "Kas Kecil / Petty Cash"},
		{Code: "1002", Name: "Bank BCA - Operasional"},
		{Code: "1003", Name: "Bank Mandiri - Yayasan"},
		{Code: "2001", Name: "Hutang Usaha / Accounts Payable"},
		{Code: "2100", Name: "Hutang PPh 21"},
		{Code: "2101", Name: "Hutang PPN"},
		{Code: "4001", Name: "Pendapatan SPP / Tuition"},
		{Code: "4100", Name: "Pendapatan Hibah / Grants"},
		{Code: "5001", Name: "Beban Gaji / Salaries"},
		{Code: "5005", Name: "Beban Perlengkapan Lab"},
		{Code: "5200", Name: "Beban Listrik & Air"},
	}
}
