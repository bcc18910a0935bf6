package response

import (
	"angies_cleaning/internal/domain/catalog"
	"angies_cleaning/internal/domain/entities"
)

// QuoteSentResponse is the success body for a delivered quotation.
type QuoteSentResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
	Success   bool   `json:"success"`
}

func FromReceipt(r entities.QuoteReceipt) QuoteSentResponse {
	return QuoteSentResponse{
		Message:   "Email sent successfully",
		MessageID: r.MessageID,
		Success:   true,
	}
}

// PreviewLineItem is one priced add-on row in a preview.
type PreviewLineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	LineTotal int    `json:"lineTotal"`
}

// QuotePreviewResponse is a non-authoritative priced preview. Authoritative
// is always false: the number the customer receives is recomputed by the
// send pipeline, never copied from a preview.
type QuotePreviewResponse struct {
	ServiceType   string            `json:"serviceType"`
	PropertySize  string            `json:"propertySize"`
	BasePrice     int               `json:"basePrice"`
	AddOns        []PreviewLineItem `json:"addOns"`
	GrandTotal    int               `json:"grandTotal"`
	Authoritative bool              `json:"authoritative"`
}

func FromPricedQuote(p entities.PricedQuote) QuotePreviewResponse {
	out := QuotePreviewResponse{
		ServiceType:  string(p.ServiceType),
		PropertySize: string(p.PropertySize),
		BasePrice:    p.BasePrice,
		GrandTotal:   p.GrandTotal,
	}
	for _, line := range p.AddOns {
		out.AddOns = append(out.AddOns, PreviewLineItem{
			Name:      string(line.Name),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	return out
}

// CatalogResponse is the read-only pricing view served to the quote form so
// its live preview renders from the same table the server prices with.
type CatalogResponse struct {
	Services      map[string]map[string]int `json:"services"`
	Aliases       map[string]string         `json:"aliases"`
	AddOns        map[string]int            `json:"addOns"`
	PropertySizes []string                  `json:"propertySizes"`
}

func NewCatalogResponse() CatalogResponse {
	out := CatalogResponse{
		Services: make(map[string]map[string]int),
		Aliases:  make(map[string]string),
		AddOns:   make(map[string]int),
	}
	for service, sizes := range catalog.Services() {
		inner := make(map[string]int, len(sizes))
		for size, price := range sizes {
			inner[string(size)] = price
		}
		out.Services[string(service)] = inner
	}
	for alias, canonical := range catalog.Aliases() {
		out.Aliases[string(alias)] = string(canonical)
	}
	for name, price := range catalog.AddOns() {
		out.AddOns[string(name)] = price
	}
	for _, size := range catalog.PropertySizes() {
		out.PropertySizes = append(out.PropertySizes, string(size))
	}
	return out
}
