package view

import (
	"fmt"
	"strconv"

	"github.com/cf-northwind/admin-dashboard/internal/api/viewstate"
	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/core/ports"
)

// pageLinkRadius is how many numbered links show on each side of the
// current page.
const pageLinkRadius = 3

// RoleOption is one entry of the role selector.
type RoleOption struct {
	Key      string
	Label    string
	Selected bool
}

// OrderRow is one pre-formatted table row.
type OrderRow struct {
	ID        string
	DetailURL string
	Price     string
	Products  string
	Quantity  string
	Date      string
	ShipName  string
	City      string
	Country   string
}

// PageLink is one entry of the pagination control. URLs keep the currently
// selected token so role selection survives page changes.
type PageLink struct {
	Num     int
	URL     string
	Current bool
}

// OrdersPage is the orders page view model.
type OrdersPage struct {
	Title     string
	Error     string
	Rows      []OrderRow
	Roles     []RoleOption
	Page      int
	Pages     int
	Count     int
	Search    string
	Token     string
	SelfURL   string
	PageLinks []PageLink
}

// NewOrdersPage maps a loader result onto the view model. When the result
// carries an error, only the error (and the role selector) renders; the rows
// stay empty even if the result also carried orders.
func NewOrdersPage(state viewstate.Orders, result ports.OrdersPage) OrdersPage {
	p := OrdersPage{
		Title:   "Orders",
		Error:   result.Error,
		Page:    state.Page,
		Count:   state.Count,
		Search:  state.Search,
		Token:   state.Token,
		SelfURL: state.URL(),
	}

	for _, role := range domain.Roles {
		p.Roles = append(p.Roles, RoleOption{
			Key:      string(role),
			Label:    role.Label(),
			Selected: state.Token == string(role),
		})
	}

	if result.Error != "" {
		return p
	}

	p.Page = result.Page
	p.Pages = result.Pages
	for _, o := range result.Orders {
		p.Rows = append(p.Rows, OrderRow{
			ID:        o.ID,
			DetailURL: "/order/" + o.ID,
			Price:     formatPrice(o.TotalProductsPrice),
			Products:  o.TotalProducts,
			Quantity:  o.TotalProductsItems,
			Date:      o.OrderDate,
			ShipName:  o.ShipName,
			City:      o.ShipCity,
			Country:   o.ShipCountry,
		})
	}
	p.PageLinks = pageLinks(state, result.Page, result.Pages)

	return p
}

// formatPrice renders the backend's decimal string as fixed two-decimal
// currency. Unparsable values format as $0.00.
func formatPrice(s string) string {
	v, _ := strconv.ParseFloat(s, 64)
	return fmt.Sprintf("$%.2f", v)
}

// pageLinks builds a numbered window around the current page.
func pageLinks(state viewstate.Orders, page, pages int) []PageLink {
	if pages < 1 {
		pages = 1
	}
	first := page - pageLinkRadius
	if first < 1 {
		first = 1
	}
	last := first + 2*pageLinkRadius
	if last > pages {
		last = pages
	}

	var links []PageLink
	for n := first; n <= last; n++ {
		links = append(links, PageLink{
			Num:     n,
			URL:     state.WithPage(n).URL(),
			Current: n == page,
		})
	}
	return links
}
