package interfaces

import "angies_cleaning/internal/domain/entities"

// IQuoteRenderer assembles the human-readable quotation document from a
// sanitized request and its authoritative pricing. A missing branding asset
// must degrade to a text wordmark, never fail the render.
type IQuoteRenderer interface {
	Render(req entities.QuoteRequest, priced entities.PricedQuote) (entities.QuoteDocument, error)
}
