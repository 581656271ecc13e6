package domain

// Product is the product detail record served by the backend product API.
// UnitsInStock is the only field the dashboard ever shadows locally; all
// others are displayed as-is.
type Product struct {
	ID              string  `json:"Id"`
	ProductName     string  `json:"ProductName"`
	SupplierID      string  `json:"SupplierId"`
	SupplierName    string  `json:"SupplierName"`
	QuantityPerUnit string  `json:"QuantityPerUnit"`
	UnitPrice       float64 `json:"UnitPrice"`
	UnitsInStock    int     `json:"UnitsInStock"`
	UnitsOnOrder    int     `json:"UnitsOnOrder"`
	ReorderLevel    int     `json:"ReorderLevel"`
	Discontinued    int     `json:"Discontinued"`
}
