package routes

import (
	"angies_cleaning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathCatalog = "/catalog"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, rateLimit gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes)
	{
		// The send endpoint is the only side-effecting operation; it alone
		// consumes the rate limit.
		quotes.POST("", rateLimit, quoteHandler.SendQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
	}

	rg.GET(PathCatalog, quoteHandler.GetCatalog)
}
