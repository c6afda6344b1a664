package main

import (
	_ "renewal_automation/docs"
	"renewal_automation/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Renewal Charge Service API
// @version         1.0
// @description     Subscription-renewal charge orchestration (GoCardless, Braintree, Stripe) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
