package request

import (
	"strconv"
	"strings"

	"angies_cleaning/internal/domain/entities"
)

// QuoteEmailRequest is the wire payload posted by the quote form. Field names
// match the form's JSON exactly. The client never sends a price; the server
// recomputes it from the catalog.
type QuoteEmailRequest struct {
	Name            string         `json:"name"`
	BusinessName    string         `json:"businessName"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	Address         string         `json:"address"`
	SelectedDate    string         `json:"selectedDate"`
	ServiceType     string         `json:"serviceType"`
	PropertySize    string         `json:"propertySize"`
	SquareMeters    any            `json:"squareMeters"`
	AddOns          []string       `json:"addOns"`
	AddOnQuantities map[string]int `json:"addOnQuantities"`
	AdditionalNotes string         `json:"additionalNotes"`
}

// Per-field length caps applied after escaping.
const (
	maxTextLen    = 100
	maxPhoneLen   = 50
	maxAddressLen = 255
	maxNotesLen   = 1000
)

// htmlEscaper escapes the five markup-significant characters. Replacer works
// in a single pass, so the entities it emits are never themselves rescanned.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitized escapes and length-clamps every free-text field and resolves the
// lenient wire types, producing the request-scoped domain value. This is the
// only path from the wire into the pipeline.
func (r QuoteEmailRequest) Sanitized() entities.QuoteRequest {
	out := entities.QuoteRequest{
		Name:            escapeClamp(r.Name, maxTextLen),
		BusinessName:    escapeClamp(r.BusinessName, maxTextLen),
		Phone:           escapeClamp(r.Phone, maxPhoneLen),
		Email:           escapeClamp(r.Email, maxTextLen),
		Address:         escapeClamp(r.Address, maxAddressLen),
		SelectedDate:    escapeClamp(r.SelectedDate, maxTextLen),
		ServiceType:     escapeClamp(r.ServiceType, maxTextLen),
		PropertySize:    escapeClamp(r.PropertySize, maxTextLen),
		SquareMeters:    resolveSquareMeters(r.SquareMeters),
		AdditionalNotes: escapeClamp(r.AdditionalNotes, maxNotesLen),
	}

	for _, name := range r.AddOns {
		out.AddOns = append(out.AddOns, entities.AddOnSelection{
			Name:     entities.AddOn(escapeClamp(name, maxTextLen)),
			Quantity: r.AddOnQuantities[name],
		})
	}

	return out
}

func escapeClamp(s string, max int) string {
	escaped := htmlEscaper.Replace(s)
	runes := []rune(escaped)
	if len(runes) > max {
		return string(runes[:max])
	}
	return escaped
}

// resolveSquareMeters tolerates the form posting square meters as a string,
// a number, or nothing at all. Anything unparseable resolves to zero.
func resolveSquareMeters(v any) int {
	switch sqm := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(sqm))
		if err != nil || n < 0 {
			return 0
		}
		return n
	case float64:
		if sqm < 0 {
			return 0
		}
		return int(sqm)
	default:
		return 0
	}
}
