package routes

import (
	"log"
	"os"
	"strconv"

	_ "angies_cleaning/docs" // swag-generated swagger docs
	"angies_cleaning/internal/adapter/email"
	"angies_cleaning/internal/adapter/http/handlers"
	"angies_cleaning/internal/infrastructure/mail"
	"angies_cleaning/internal/infrastructure/ratelimit"
	"angies_cleaning/internal/usecase"
	"angies_cleaning/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	stopSweeper := getRoutes()
	defer stopSweeper()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() (stop func()) {
	renderer, err := email.NewRenderer(getenvDefault("LOGO_PATH", "public/images/logo.png"))
	if err != nil {
		log.Fatalf("Failed to build the quote renderer: %v", err)
	}

	var sender interfaces.IMailSender
	smtpSender, err := mail.NewSMTPSenderFromEnv()
	if err != nil {
		// Without relay credentials every quote is answered 503 instead of
		// failing at startup, so the catalog and preview endpoints stay up.
		log.Printf("Mail sender not configured: %v", err)
		sender = mail.NewDisabledSender(err)
	} else {
		sender = smtpSender
	}

	quoteUseCase := usecase.NewQuoteUseCase(renderer, sender)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	limiter := ratelimit.New(rateLimitWindow, rateLimitMax)
	stop = limiter.StartSweeper(sweepInterval)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, rateLimitMiddleware(limiter))

	return stop
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
