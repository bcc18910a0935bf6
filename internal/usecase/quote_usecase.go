package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"angies_cleaning/internal/domain/catalog"
	"angies_cleaning/internal/domain/entities"
	"angies_cleaning/internal/domain/pricing"
	"angies_cleaning/internal/usecase/interfaces"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMailUnavailable = errors.New("email service unavailable")
	ErrDeliveryFailed  = errors.New("quote delivery failed")
)

// A non-whitespace local part, an @, and a domain with a dot. Deliberately
// simple; deliverability is proven by the send itself.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IQuoteUseCase exposes the quote pipeline operations.
//
//   - SendQuote: authoritative server-side pricing followed by email delivery
//   - PreviewQuote: the same calculation with no side effects, served to the
//     form for a non-authoritative live preview

type IQuoteUseCase interface {
	SendQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteReceipt, error)
	PreviewQuote(req entities.QuoteRequest) entities.PricedQuote
}

type QuoteUseCase struct {
	renderer interfaces.IQuoteRenderer
	sender   interfaces.IMailSender
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(renderer interfaces.IQuoteRenderer, sender interfaces.IMailSender) *QuoteUseCase {
	return &QuoteUseCase{renderer: renderer, sender: sender}
}

// SendQuote validates the sanitized request, recomputes the price from the
// catalog (the client never sends one), renders the quotation and delivers
// it. Relay connectivity is verified before any send; there is no partial
// success, a priced-but-unsent quote is a failure.
func (u *QuoteUseCase) SendQuote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteReceipt, error) {
	if req.Name == "" || req.Email == "" || req.ServiceType == "" || req.PropertySize == "" {
		log.Printf("[quote][usecase] rejected: missing required fields")
		return entities.QuoteReceipt{}, ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		log.Printf("[quote][usecase] rejected: invalid email format")
		return entities.QuoteReceipt{}, ErrInvalidEmail
	}

	if err := u.sender.Verify(ctx); err != nil {
		return entities.QuoteReceipt{}, fmt.Errorf("%w: %v", ErrMailUnavailable, err)
	}

	priced := u.price(req)

	doc, err := u.renderer.Render(req, priced)
	if err != nil {
		return entities.QuoteReceipt{}, err
	}

	messageID, err := u.sender.Send(ctx, req.Email, doc)
	if err != nil {
		return entities.QuoteReceipt{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	log.Printf("[quote][usecase] sent message_id=%s total=%d", messageID, priced.GrandTotal)
	return entities.QuoteReceipt{MessageID: messageID, GrandTotal: priced.GrandTotal}, nil
}

// PreviewQuote prices a request without admitting it to the delivery path.
func (u *QuoteUseCase) PreviewQuote(req entities.QuoteRequest) entities.PricedQuote {
	return u.price(req)
}

func (u *QuoteUseCase) price(req entities.QuoteRequest) entities.PricedQuote {
	normalized := catalog.Normalize(req.ServiceType)
	priced := pricing.Calculate(normalized, entities.PropertySize(req.PropertySize), req.AddOns)
	if !priced.BaseKnown {
		// Unrecognized combinations price at zero by policy; a zero-Rand
		// quote for a real service is a data-entry defect, so make it loud.
		log.Printf("[quote][usecase] base price lookup failed service=%q normalized=%q size=%q", req.ServiceType, normalized, req.PropertySize)
	}
	return priced
}
