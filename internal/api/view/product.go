package view

import (
	"strconv"

	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
)

// Field is one labeled value of the product information card, optionally a
// link.
type Field struct {
	Name  string
	Value string
	Link  string
}

// ProductPage is the product page view model. UnitsInStock is the local
// shadow value, not the raw backend field; Stale marks that an inventory
// write has been dispatched whose effect the backend has not confirmed.
type ProductPage struct {
	Title        string
	Found        bool
	ID           string
	Left         []Field
	Right        []Field
	UnitsInStock int
	Stale        bool
}

// NewProductPage maps the loaded product onto the view model. unitsInStock
// is the shadow stock to display; pass the raw backend value on a fresh
// load, or the optimistically adjusted value after an update.
func NewProductPage(p *domain.Product, unitsInStock int, stale bool) ProductPage {
	vm := ProductPage{Title: "Product"}
	if p == nil {
		return vm
	}

	vm.Found = true
	vm.ID = p.ID
	vm.UnitsInStock = unitsInStock
	vm.Stale = stale
	vm.Left = []Field{
		{Name: "Product Name", Value: p.ProductName},
		{Name: "Supplier", Value: p.SupplierName, Link: "/supplier/" + p.SupplierID},
		{Name: "Quantity Per Unit", Value: p.QuantityPerUnit},
		{Name: "Unit Price", Value: "$" + strconv.FormatFloat(p.UnitPrice, 'f', -1, 64)},
	}
	vm.Right = []Field{
		{Name: "Units In Stock", Value: strconv.Itoa(unitsInStock)},
		{Name: "Units In Order", Value: strconv.Itoa(p.UnitsOnOrder)},
		{Name: "Reorder Level", Value: strconv.Itoa(p.ReorderLevel)},
		{Name: "Discontinued", Value: strconv.Itoa(p.Discontinued)},
	}
	return vm
}
