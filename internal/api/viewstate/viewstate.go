// Package viewstate defines the serializable view state the pages keep in
// the URL query string rather than in memory. Parse and Values are total and
// reversible: Values(Parse(q)) normalizes but never loses a field.
package viewstate

import (
	"net/url"
	"strconv"
)

// Orders is the orders page view state.
type Orders struct {
	Page   int
	Count  int
	Search string
	Token  string
}

// ParseOrders decodes the orders view state from query parameters, applying
// the page defaults: page falls back to 1 when absent or unparsable, token
// falls back to "admin" when absent or empty.
func ParseOrders(q url.Values) Orders {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page == 0 {
		page = 1
	}
	count, _ := strconv.Atoi(q.Get("count"))

	token := q.Get("token")
	if token == "" {
		token = "admin"
	}

	return Orders{
		Page:   page,
		Count:  count,
		Search: q.Get("search"),
		Token:  token,
	}
}

// Values encodes the state back to query parameters. Page and token are
// always present; search and count are omitted when empty or zero so URLs
// stay minimal.
func (s Orders) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(s.Page))
	v.Set("token", s.Token)
	if s.Search != "" {
		v.Set("search", s.Search)
	}
	if s.Count != 0 {
		v.Set("count", strconv.Itoa(s.Count))
	}
	return v
}

// WithPage returns a copy of the state pointing at another page, keeping the
// selected token, search, and count. Pagination links are built from this so
// role selection survives page changes.
func (s Orders) WithPage(page int) Orders {
	s.Page = page
	return s
}

// WithToken returns a copy with a different role key, preserving the rest.
func (s Orders) WithToken(token string) Orders {
	s.Token = token
	return s
}

// URL renders the orders page URL for this state.
func (s Orders) URL() string {
	return "/orders?" + s.Values().Encode()
}
