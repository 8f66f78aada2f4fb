package routes

import (
	"tirestore_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addCheckoutRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/cancel", orderHandler.CancelOrder)
	}

	payments := rg.Group(PathPayments)
	{
		// Endpoints consumed by the storefront confirmation router.
		payments.POST("/intent", paymentHandler.CreateIntent)
		payments.POST("/verify-stripe", paymentHandler.VerifyStripe)
		payments.POST("/verify-paypal", paymentHandler.VerifyPaypal)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
