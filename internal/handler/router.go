package handler

import "github.com/gin-gonic/gin"

type Handlers struct {
	Settings     *SettingsHandler
	PCO          *PCOHandler
	Snapshot     *SnapshotHandler
	Transmission *TransmissionHandler
}

// Register mounts the API under the given group, normally /api/v1.
func (h Handlers) Register(v1 *gin.RouterGroup) {
	v1.GET("/settings", h.Settings.HandleGetSettings)
	v1.PUT("/settings", h.Settings.HandlePutSettings)
	v1.PUT("/settings/service-type", h.Settings.HandlePutServiceType)

	pcoGroup := v1.Group("/pco")
	{
		pcoGroup.POST("/check", h.PCO.HandleCheckConnection)
		pcoGroup.GET("/service-types", h.PCO.HandleListServiceTypes)
		pcoGroup.GET("/service-types/:stid/plans", h.PCO.HandleListPlans)
		pcoGroup.GET("/service-types/:stid/plans/:pid/times", h.PCO.HandleListPlanTimes)
	}

	v1.POST("/snapshot-plans", h.Snapshot.HandleBuildPlan)
	v1.GET("/snapshot-plans/:id", h.Snapshot.HandleGetPlan)
	v1.POST("/snapshot-plans/:id/transmissions", h.Snapshot.HandleCreateTransmission)

	v1.GET("/transmissions/:opid", h.Transmission.HandleGetTransmission)
	v1.DELETE("/transmissions/:opid", h.Transmission.HandleAbandon)
	v1.POST("/transmissions/:opid/send", h.Transmission.HandleSend)
}
