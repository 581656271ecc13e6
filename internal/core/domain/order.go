package domain

// Order is a single row of the orders list as the backend reports it.
// Every field arrives as a string; the backend pre-aggregates counts and
// totals, so the dashboard never recomputes them.
type Order struct {
	ID                 string `json:"Id"`
	TotalProducts      string `json:"TotalProducts"`
	TotalProductsPrice string `json:"TotalProductsPrice"`
	TotalProductsItems string `json:"TotalProductsItems"`
	OrderDate          string `json:"OrderDate"`
	ShipName           string `json:"ShipName"`
	ShipCity           string `json:"ShipCity"`
	ShipCountry        string `json:"ShipCountry"`
}
