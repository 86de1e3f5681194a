package gumroad

import (
	"net/url"
	"strconv"
)

// QueryParams represents query parameters for list requests.
type QueryParams struct {
	// Page selects the page to fetch (1-based). Zero means the first page.
	Page int
	// After restricts sales to those on or after this date (YYYY-MM-DD).
	After string
	// Before restricts sales to those before this date (YYYY-MM-DD).
	Before string
	// ProductID restricts sales to a single product.
	ProductID string
	// Email restricts sales to a single buyer email.
	Email string
	// OrderID looks up a single order number.
	OrderID string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithAfter sets the after-date filter.
func (q *QueryParams) WithAfter(date string) *QueryParams {
	q.After = date

	return q
}

// WithBefore sets the before-date filter.
func (q *QueryParams) WithBefore(date string) *QueryParams {
	q.Before = date

	return q
}

// WithProductID sets the product filter.
func (q *QueryParams) WithProductID(productID string) *QueryParams {
	q.ProductID = productID

	return q
}

// WithEmail sets the buyer email filter.
func (q *QueryParams) WithEmail(email string) *QueryParams {
	q.Email = email

	return q
}

// WithOrderID sets the order number filter.
func (q *QueryParams) WithOrderID(orderID string) *QueryParams {
	q.OrderID = orderID

	return q
}

// ToValues converts the params to url.Values for the request query string.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.After != "" {
		values.Set("after", q.After)
	}

	if q.Before != "" {
		values.Set("before", q.Before)
	}

	if q.ProductID != "" {
		values.Set("product_id", q.ProductID)
	}

	if q.Email != "" {
		values.Set("email", q.Email)
	}

	if q.OrderID != "" {
		values.Set("order_id", q.OrderID)
	}

	return values
}

// Clone returns a copy so pagination loops can advance the page counter
// without mutating the caller's params.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q

	return &clone
}
