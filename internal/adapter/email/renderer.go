package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"os"
	"text/template"
	"time"

	"angies_cleaning/internal/domain/entities"
	"angies_cleaning/internal/usecase/interfaces"
)

// Table-based markup with inline styles only, so the quotation renders in
// legacy mail clients. Free-text fields arrive already escaped and clamped by
// the admission boundary, which is why this is text/template and not
// html/template (escaping twice would show entities to the customer).
//
//go:embed quote_email.tmpl
var quoteTemplate string

const (
	subject = "Your Quote from Angie's Cleaning Service"
	logoCID = "logo.png"
)

// Renderer builds the quotation email document.
type Renderer struct {
	tmpl     *template.Template
	logoPath string
}

var _ interfaces.IQuoteRenderer = (*Renderer)(nil)

func NewRenderer(logoPath string) (*Renderer, error) {
	tmpl, err := template.New("quote_email").Parse(quoteTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse quote template: %w", err)
	}
	return &Renderer{tmpl: tmpl, logoPath: logoPath}, nil
}

type lineView struct {
	Label  string
	Amount string
}

type templateData struct {
	Name          string
	BusinessName  string
	Phone         string
	Email         string
	Address       string
	ServiceType   string
	PropertySize  string
	SquareMeters  string
	PreferredDate string
	BasePrice     string
	AddOns        []lineView
	GrandTotal    string
	Notes         string
	HasLogo       bool
	LogoCID       string
}

// Render assembles the quotation document. The logo asset is probed at
// request time; when absent or unreadable the document falls back to a text
// wordmark and rendering continues.
func (r *Renderer) Render(req entities.QuoteRequest, priced entities.PricedQuote) (entities.QuoteDocument, error) {
	hasLogo := r.probeLogo()

	data := templateData{
		Name:          req.Name,
		BusinessName:  req.BusinessName,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		ServiceType:   req.ServiceType,
		PropertySize:  req.PropertySize,
		SquareMeters:  formatSquareMeters(req.SquareMeters),
		PreferredDate: formatDate(req.SelectedDate),
		BasePrice:     formatRand(priced.BasePrice),
		GrandTotal:    formatRand(priced.GrandTotal),
		Notes:         req.AdditionalNotes,
		HasLogo:       hasLogo,
		LogoCID:       logoCID,
	}
	for _, line := range priced.AddOns {
		data.AddOns = append(data.AddOns, lineView{
			Label:  fmt.Sprintf("%s (Qty: %d)", line.Name, line.Quantity),
			Amount: formatRand(line.LineTotal),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return entities.QuoteDocument{}, fmt.Errorf("render quote document: %w", err)
	}

	return entities.QuoteDocument{
		Subject:  subject,
		HTML:     buf.String(),
		HasLogo:  hasLogo,
		LogoPath: r.logoPath,
	}, nil
}

func (r *Renderer) probeLogo() bool {
	if r.logoPath == "" {
		return false
	}
	info, err := os.Stat(r.logoPath)
	if err != nil {
		log.Printf("[quote][renderer] logo unavailable path=%s err=%v", r.logoPath, err)
		return false
	}
	return !info.IsDir()
}

func formatRand(amount int) string {
	return fmt.Sprintf("R %.2f", float64(amount))
}

func formatSquareMeters(sqm int) string {
	if sqm <= 0 {
		return "Not specified"
	}
	return fmt.Sprintf("%d m²", sqm)
}

// formatDate renders an ISO date in the long style used on the quote form.
// An absent date renders as an explicit marker, not an empty cell; a
// string that is not a date at all is shown as received (it was already
// sanitized upstream).
func formatDate(raw string) string {
	if raw == "" {
		return "Not selected"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Monday, 2 January 2006")
		}
	}
	return raw
}
