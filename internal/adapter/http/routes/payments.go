package routes

import (
	"beanpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathSubscriptions = "/subscriptions"
	PathProfiles      = "/profiles"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, subscriptionHandler *handlers.SubscriptionHandler, profileHandler *handlers.ProfileHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Purchase)
		payments.POST("/authorize", paymentHandler.Authorize)
		payments.POST("/:id/capture", paymentHandler.Capture)
		payments.POST("/:id/refund", paymentHandler.Refund)
		payments.POST("/:id/void", paymentHandler.Void)
		payments.GET("/:id", paymentHandler.GetByID)
		payments.GET("", paymentHandler.ListByOrderNumber)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", subscriptionHandler.Create)
		subscriptions.PATCH("/:account_id", subscriptionHandler.Update)
		subscriptions.DELETE("/:account_id", subscriptionHandler.Cancel)
	}

	profiles := rg.Group(PathProfiles)
	{
		profiles.POST("", profileHandler.Create)
		profiles.PUT("/:customer_code", profileHandler.Update)
	}
}
