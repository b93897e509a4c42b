package suppliers

// Supplier represents a registered vendor. Reference data; never mutated
// automatically by order flows.
type Supplier struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Contact  string  `json:"contact"`
	Email    string  `json:"email"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"` // 1..5
}

// Seed returns the initial supplier directory.
func Seed() []Supplier {
	return []Supplier{
		{ID: "SUP-001", Name: "CV. Pustaka Abadi", Contact: "Budi Santoso", Email: "sales@pustaka.co.id", Category: "Stationery", Rating: 4.5},
		{ID: "SUP-002", Name: "PT. Teknologi Edukasi Indonesia", Contact: "Siska Wulandari", Email: "biz@techedu.id", Category: "IT Hardware", Rating: 4.8},
		{ID: "SUP-003", Name: "CV. Meubel Kampus", Contact: "Haji Ahmad", Email: "order@meubelkampus.com", Category: "Furniture", Rating: 4.0},
		{ID: "SUP-004", Name: "Global Science Supplies", Contact: "Dr. Rian", Email: "rian@globalsci.com", Category: "Lab Equipment", Rating: 4.9},
	}
}
