package routes

import (
	"context"
	"log"
	"strconv"

	_ "renewal_automation/docs" // This will be auto-generated
	"renewal_automation/internal/adapter/http/handlers"
	repository2 "renewal_automation/internal/adapter/persistence/repository"
	"renewal_automation/internal/infrastructure/database"
	"renewal_automation/internal/infrastructure/notifications"
	"renewal_automation/internal/infrastructure/payments"
	"renewal_automation/internal/usecase"

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

	recordRepo := repository2.NewBillingRecordDynamoRepository(ddb)

	adapters := usecase.NewGatewayAdapters(
		payments.NewGoCardlessTransport(),
		payments.NewBraintreeTransport(),
		payments.NewStripeTransport(),
	)
	sink := notifications.NewLogSink()

	// After each interpreted outcome the batch is re-fetched so displayed
	// state tracks the store the integration proxy writes to.
	refresh := func(ctx context.Context) {
		if _, err := recordRepo.FetchRenewalBillingRecords(ctx, ""); err != nil {
			log.Printf("[renewal][routes] post-attempt refresh failed err=%v", err)
		}
	}

	queryUseCase := usecase.NewRenewalQueryUseCase(recordRepo)
	chargeUseCase := usecase.NewRenewalChargeUseCase(recordRepo, adapters, sink, refresh)

	queryHandler := handlers.NewRenewalQueryHandler(queryUseCase)
	chargeHandler := handlers.NewRenewalChargeHandler(chargeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRenewalRoutes(v1, queryHandler, chargeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
