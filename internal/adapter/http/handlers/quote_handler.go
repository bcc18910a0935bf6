package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	request "angies_cleaning/internal/adapter/http/dto/request"
	response "angies_cleaning/internal/adapter/http/dto/response"
	"angies_cleaning/internal/usecase"
	"angies_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote pipeline.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// SendQuote accepts a quote-form submission, prices it server-side and emails
// the quotation to the customer. The payload is sanitized before anything
// else reads it; rate limiting has already run as route middleware.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var payload request.QuoteEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.SendQuote(c.Request.Context(), payload.Sanitized())
	if err != nil {
		appErr := mapQuoteError(err)
		// Cause stays server-side; the body carries it only in development.
		log.Printf("[quote][handler] send failed code=%s err=%v", appErr.Code, err)
		if appErr.HTTPStatus == http.StatusInternalServerError && isDevelopment() {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails())
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

// PreviewQuote prices a submission without sending anything. The result is
// non-authoritative; a later SendQuote recomputes it from scratch.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuoteEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	priced := h.usecase.PreviewQuote(payload.Sanitized())
	c.JSON(http.StatusOK, response.FromPricedQuote(priced))
}

// GetCatalog serves the read-only pricing view consumed by the quote form.
func (h *QuoteHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewCatalogResponse())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMailUnavailable):
		return pkg.NewDomainError("MAIL_UNAVAILABLE", "Email service currently unavailable", err, http.StatusServiceUnavailable)
	default:
		// ErrDeliveryFailed lands here deliberately: it happens after a
		// successful verify and is treated as unexpected.
		return pkg.NewDomainError("INTERNAL_ERROR", "Failed to process your request. Please try again later.", err, http.StatusInternalServerError)
	}
}

func isDevelopment() bool {
	return os.Getenv("APP_ENV") == "development"
}
