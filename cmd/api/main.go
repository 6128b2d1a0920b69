package main

import (
	_ "paypal_subscriptions/docs"
	"paypal_subscriptions/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PayPal Subscriptions Gateway API
// @version         1.0
// @description     Recurring-payment gateway (PayPal subscriptions + webhook verification) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
