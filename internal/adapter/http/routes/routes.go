package routes

import (
	"log"
	"os"
	"strconv"

	_ "paypal_subscriptions/docs" // This will be auto-generated
	"paypal_subscriptions/internal/adapter/http/handlers"
	repository2 "paypal_subscriptions/internal/adapter/persistence/repository"
	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/gateway"
	"paypal_subscriptions/internal/infrastructure/database"
	"paypal_subscriptions/internal/infrastructure/notifier"
	"paypal_subscriptions/internal/infrastructure/paypal"
	"paypal_subscriptions/internal/usecase"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	priceRepo := repository2.NewPriceDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	cfg := entities.GatewayConfig{
		Mode:         entities.GatewayMode(getenvDefault("PAYPAL_MODE", string(entities.GatewayModeSandbox))),
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		log.Printf("[gateway][routes] PayPal credentials not configured; remote calls will fail mode=%s", cfg.Mode)
	}
	log.Printf("[gateway][routes] PayPal gateway mode=%s base_url=%s", cfg.Mode, cfg.Mode.BaseURL())

	appURL := getenvDefault("APP_URL", "http://localhost:8080")
	callbackURL := appURL + "/payment/return/" + gateway.DriverKey

	paypalClient := paypal.NewClient(cfg)
	panelNotifier := notifier.NewClient(
		getenvDefault("PANEL_URL", appURL),
		os.Getenv("PANEL_API_KEY"),
	)

	provisioner := usecase.NewPlanProvisioningUseCase(priceRepo, packageRepo, paypalClient, cfg.Mode)
	registrar := usecase.NewWebhookRegistrarUseCase(settingsRepo, paypalClient, cfg.Mode, callbackURL)
	subscriptions := usecase.NewSubscriptionUseCase(paymentRepo, priceRepo, provisioner, registrar, paypalClient, appURL)
	webhooks := usecase.NewWebhookUseCase(paymentRepo, registrar, paypalClient, panelNotifier)

	registry := gateway.NewRegistry()
	if err := registry.Register(gateway.NewPayPalSubscriptionsDriver(subscriptions, webhooks)); err != nil {
		log.Fatalf("Failed to register payment gateway driver: %v", err)
	}

	paymentHandler := handlers.NewPaymentHandler(registry)
	webhookHandler := handlers.NewWebhookHandler(registry)

	// Rotas publicas
	addPaymentRoutes(router, paymentHandler, webhookHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, paymentHandler)
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
