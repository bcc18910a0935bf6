package entities

// ServiceType is a canonical cleaning service label.
//
// Domain notes:
//   - The service catalog is keyed by these values; client-supplied labels
//     that drifted from the canonical set are resolved through the alias
//     table before any lookup.
//   - Parsing from the wire format happens once, right after admission.

type ServiceType string

const (
	ServiceStandardCleanFurnished  ServiceType = "Standard Clean (FURNISHED)"
	ServiceDeepCleanFurnished      ServiceType = "Deep Clean (FURNISHED)"
	ServiceTenancyCleanUnfurnished ServiceType = "Pre and Post Tenancy Deposit Clean (UNFURNISHED)"
	AliasTenancyCleanUnfurnished   ServiceType = "Pre and Post Tenancy Clean (UNFURNISHED)"
)

// PropertySize is one of the five property-size tiers priced in the catalog.
type PropertySize string

const (
	SizeOneBedOneBath   PropertySize = "1-bed/1-bath"
	SizeTwoBedOneBath   PropertySize = "2-bed/1-bath"
	SizeThreeBedTwoBath PropertySize = "3-bed/2-bath"
	SizeFourBedTwoBath  PropertySize = "4-bed/2+-bath"
	SizeFiveBedTwoBath  PropertySize = "5-bed/2+-bath"
)

// AddOn is an optional extra service with a unit price.
type AddOn string

const (
	AddOnIroningBasket  AddOn = "Ironing Standard Basket"
	AddOnWindowCleaning AddOn = "Int/Ext Window Cleaning"
	AddOnSmallPatio     AddOn = "Small Patio/Balcony (10-20 sqm)"
	AddOnMediumPatio    AddOn = "Medium Patio/Balcony (20-40 sqm)"
	AddOnLargePatio     AddOn = "Large Patio/Balcony (40+ sqm)"
	AddOnCupboardSort   AddOn = "Cupboard Sorting and Repacking"
)

// AddOnSelection is a customer-selected add-on with an optional quantity.
// A quantity below 1 means the customer did not pick one; pricing treats it
// as a single unit.
type AddOnSelection struct {
	Name     AddOn
	Quantity int
}

// QuoteRequest is the request-scoped, sanitized customer submission.
//
// Lifecycle: built from the wire payload, escaped and length-clamped at the
// HTTP boundary, discarded once the response is produced. Never persisted.
type QuoteRequest struct {
	Name            string
	BusinessName    string
	Phone           string
	Email           string
	Address         string
	SelectedDate    string // ISO date string; empty means not selected
	ServiceType     string // canonical or alias label, resolved by the catalog
	PropertySize    string
	SquareMeters    int
	AddOns          []AddOnSelection
	AdditionalNotes string
}

// AddOnLineItem is one priced add-on row in the quotation summary.
type AddOnLineItem struct {
	Name      AddOn `json:"name"`
	Quantity  int   `json:"quantity"`
	UnitPrice int   `json:"unit_price"`
	LineTotal int   `json:"line_total"`
}

// PricedQuote is the authoritative server-side pricing of a QuoteRequest.
//
// Monetary representation: whole Rand (no cents are ever charged).
// Computed fresh on every request and never cached; a client-side preview of
// the same numbers is non-authoritative and never reaches the delivery path.
type PricedQuote struct {
	ServiceType  ServiceType     `json:"service_type"`
	PropertySize PropertySize    `json:"property_size"`
	BasePrice    int             `json:"base_price"`
	BaseKnown    bool            `json:"-"`
	AddOns       []AddOnLineItem `json:"add_ons"`
	GrandTotal   int             `json:"grand_total"`
}

// QuoteDocument is the rendered quotation email, ready for delivery.
type QuoteDocument struct {
	Subject  string
	HTML     string
	HasLogo  bool
	LogoPath string
}

// QuoteReceipt is returned to the customer after a successful delivery.
type QuoteReceipt struct {
	MessageID  string
	GrandTotal int
}
