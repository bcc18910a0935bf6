package main

import (
	_ "angies_cleaning/docs"
	"angies_cleaning/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Angie's Cleaning Service API
// @version         1.0
// @description     Quote pipeline for Angie's Cleaning Service: prices a cleaning request and emails the quotation to the customer over SMTP.

// @contact.name   Angie's Cleaning Service
// @contact.email  info@angicleans.co.za

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
