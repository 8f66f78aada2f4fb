package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "tirestore_checkout/docs" // This will be auto-generated
	"tirestore_checkout/internal/adapter/http/handlers"
	repository2 "tirestore_checkout/internal/adapter/persistence/repository"
	"tirestore_checkout/internal/infrastructure/cache"
	"tirestore_checkout/internal/infrastructure/database"
	"tirestore_checkout/internal/infrastructure/payments"
	"tirestore_checkout/internal/usecase"
	"tirestore_checkout/internal/usecase/interfaces"

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
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	var cardGateway interfaces.ICardGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		cardGateway = stripeGateway
	}

	var walletGateway interfaces.IWalletGateway
	paypalGateway, err := payments.NewPayPalGateway(
		context.Background(),
		os.Getenv("PAYPAL_CLIENT_ID"),
		os.Getenv("PAYPAL_CLIENT_SECRET"),
		isPayPalLive(),
	)
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		walletGateway = paypalGateway
	}

	var guard interfaces.IVerificationGuard
	if rdb := cache.NewRedisClient(); rdb != nil {
		guard = cache.NewRedisVerificationGuard(rdb)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	intentUseCase := usecase.NewPaymentIntentUseCase(paymentRepo, cardGateway)
	verifyUseCase := usecase.NewPaymentVerifyUseCase(paymentRepo, orderRepo, cardGateway, walletGateway, guard)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(intentUseCase, verifyUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isPayPalLive() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PAYPAL_ENV"))) {
	case "live", "production":
		return true
	}
	return false
}
