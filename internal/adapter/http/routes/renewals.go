package routes

import (
	"renewal_automation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRenewals = "/renewals"

func addRenewalRoutes(rg *gin.RouterGroup, queryHandler *handlers.RenewalQueryHandler, chargeHandler *handlers.RenewalChargeHandler) {
	renewals := rg.Group(PathRenewals)
	{
		renewals.GET("", queryHandler.ListRenewals)
		renewals.GET("/:billing_id", queryHandler.GetRenewal)

		renewals.POST("/charge-all", chargeHandler.ChargeAllRenewals)
		renewals.POST("/:billing_id/charge", chargeHandler.ChargeRenewal)
	}
}
