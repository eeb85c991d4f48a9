package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "beanpay/docs" // This will be auto-generated
	"beanpay/internal/adapter/http/handlers"
	repository2 "beanpay/internal/adapter/persistence/repository"
	"beanpay/internal/infrastructure/database"
	"beanpay/internal/infrastructure/payments/beanstream"
	"beanpay/internal/usecase"
	"beanpay/internal/usecase/interfaces"

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

	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	gateway, err := beanstream.New(gatewayConfigFromEnv(), nil)
	if err != nil {
		log.Printf("Beanstream gateway not configured: %v", err)
	} else {
		paymentGateway = gateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, paymentGateway)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(transactionRepo, paymentGateway)
	profileUseCase := usecase.NewProfileUseCase(paymentGateway)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, subscriptionHandler, profileHandler)
}

func gatewayConfigFromEnv() beanstream.Config {
	return beanstream.Config{
		MerchantID:      os.Getenv("BEANSTREAM_MERCHANT_ID"),
		Username:        os.Getenv("BEANSTREAM_USERNAME"),
		Password:        os.Getenv("BEANSTREAM_PASSWORD"),
		Passcode:        os.Getenv("BEANSTREAM_PASSCODE"),
		ProfilePasscode: os.Getenv("BEANSTREAM_PROFILE_PASSCODE"),
		TestMode:        isTruthy(os.Getenv("BEANSTREAM_TEST_MODE")),
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
