package gumroad

import "time"

// Product represents a Gumroad product.
type Product struct {
	ID                string   `json:"id"                           yaml:"id"`
	Name              string   `json:"name"                         yaml:"name"`
	Description       string   `json:"description,omitempty"        yaml:"description,omitempty"`
	URL               string   `json:"url,omitempty"                yaml:"url,omitempty"`
	ShortURL          string   `json:"short_url,omitempty"          yaml:"short_url,omitempty"`
	PreviewURL        string   `json:"preview_url,omitempty"        yaml:"preview_url,omitempty"`
	ThumbnailURL      string   `json:"thumbnail_url,omitempty"      yaml:"thumbnail_url,omitempty"`
	CustomPermalink   string   `json:"custom_permalink,omitempty"   yaml:"custom_permalink,omitempty"`
	Price             int64    `json:"price"                        yaml:"price"`
	Currency          string   `json:"currency"                     yaml:"currency"`
	FormattedPrice    string   `json:"formatted_price,omitempty"    yaml:"formatted_price,omitempty"`
	CustomizablePrice bool     `json:"customizable_price"           yaml:"customizable_price"`
	RequireShipping   bool     `json:"require_shipping"             yaml:"require_shipping"`
	Published         bool     `json:"published"                    yaml:"published"`
	ShownOnProfile    bool     `json:"shown_on_profile"             yaml:"shown_on_profile"`
	Deleted           bool     `json:"deleted"                      yaml:"deleted"`
	MaxPurchaseCount  *int     `json:"max_purchase_count,omitempty" yaml:"max_purchase_count,omitempty"`
	SalesCount        int64    `json:"sales_count"                  yaml:"sales_count"`
	SalesUSDCents     int64    `json:"sales_usd_cents"              yaml:"sales_usd_cents"`
	Tags              []string `json:"tags,omitempty"               yaml:"tags,omitempty"`
	ViewCount         int64    `json:"view_count,omitempty"         yaml:"view_count,omitempty"`
}

// Sale represents a single Gumroad sale.
type Sale struct {
	ID             string    `json:"id"                        yaml:"id"`
	SellerID       string    `json:"seller_id,omitempty"       yaml:"seller_id,omitempty"`
	ProductID      string    `json:"product_id"                yaml:"product_id"`
	ProductName    string    `json:"product_name"              yaml:"product_name"`
	Email          string    `json:"email"                     yaml:"email"`
	PurchaseEmail  string    `json:"purchase_email,omitempty"  yaml:"purchase_email,omitempty"`
	FullName       string    `json:"full_name,omitempty"       yaml:"full_name,omitempty"`
	Country        string    `json:"country,omitempty"         yaml:"country,omitempty"`
	State          string    `json:"state,omitempty"           yaml:"state,omitempty"`
	Price          int64     `json:"price"                     yaml:"price"`
	GumroadFee     int64     `json:"gumroad_fee"               yaml:"gumroad_fee"`
	Currency       string    `json:"currency,omitempty"        yaml:"currency,omitempty"`
	Quantity       int       `json:"quantity"                  yaml:"quantity"`
	OrderNumber    int64     `json:"order_number"              yaml:"order_number"`
	OfferCode      string    `json:"offer_code,omitempty"      yaml:"offer_code,omitempty"`
	SubscriptionID string    `json:"subscription_id,omitempty" yaml:"subscription_id,omitempty"`
	Refunded       bool      `json:"refunded"                  yaml:"refunded"`
	Chargedback    bool      `json:"chargedback"               yaml:"chargedback"`
	CreatedAt      time.Time `json:"created_at"                yaml:"created_at"`
}

// OfferCode represents a discount code attached to a product. Exactly one of
// AmountCents or PercentOff is set, depending on the code's offer type.
type OfferCode struct {
	ID               string `json:"id"                           yaml:"id"`
	Name             string `json:"name"                         yaml:"name"`
	AmountCents      *int64 `json:"amount_cents,omitempty"       yaml:"amount_cents,omitempty"`
	PercentOff       *int   `json:"percent_off,omitempty"        yaml:"percent_off,omitempty"`
	MaxPurchaseCount *int   `json:"max_purchase_count,omitempty" yaml:"max_purchase_count,omitempty"`
	Universal        bool   `json:"universal"                    yaml:"universal"`
	TimesUsed        int    `json:"times_used"                   yaml:"times_used"`
}

// Offer code discount types accepted by the API.
const (
	OfferTypeCents   = "cents"
	OfferTypePercent = "percent"
)

// OfferCodeCreateRequest represents a request to create an offer code.
type OfferCodeCreateRequest struct {
	// Name is the code buyers type at checkout (unique per product).
	Name string `json:"name" yaml:"name"`
	// AmountOff is the discount, in cents or percent depending on OfferType.
	AmountOff int `json:"amount_off" yaml:"amount_off"`
	// OfferType is OfferTypeCents (default) or OfferTypePercent.
	OfferType string `json:"offer_type,omitempty" yaml:"offer_type,omitempty"`
	// MaxPurchaseCount optionally limits how often the code can be used.
	MaxPurchaseCount *int `json:"max_purchase_count,omitempty" yaml:"max_purchase_count,omitempty"`
	// Universal applies the code to all of the seller's products.
	Universal bool `json:"universal,omitempty" yaml:"universal,omitempty"`
}

// SalesPage is one page of sales together with the cursor to the next page.
// NextPageURL is empty on the final page.
type SalesPage struct {
	Sales       []Sale `json:"sales"                   yaml:"sales"`
	NextPageURL string `json:"next_page_url,omitempty" yaml:"next_page_url,omitempty"`
}

// Response envelopes. Every Gumroad V2 response carries a success flag; error
// responses carry a message instead of the resource payload.

// ProductsResponse is the envelope for GET /v2/products.
type ProductsResponse struct {
	Success     bool      `json:"success"`
	Products    []Product `json:"products"`
	NextPageURL string    `json:"next_page_url,omitempty"`
	Message     string    `json:"message,omitempty"`
}

// ProductResponse is the envelope for GET /v2/products/{id}.
type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
	Message string  `json:"message,omitempty"`
}

// SalesResponse is the envelope for GET /v2/sales.
type SalesResponse struct {
	Success     bool   `json:"success"`
	Sales       []Sale `json:"sales"`
	NextPageURL string `json:"next_page_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// OfferCodesResponse is the envelope for GET /v2/products/{id}/offer_codes.
type OfferCodesResponse struct {
	Success    bool        `json:"success"`
	OfferCodes []OfferCode `json:"offer_codes"`
	Message    string      `json:"message,omitempty"`
}

// OfferCodeResponse is the envelope for single offer code reads and creates.
type OfferCodeResponse struct {
	Success   bool      `json:"success"`
	OfferCode OfferCode `json:"offer_code"`
	Message   string    `json:"message,omitempty"`
}
