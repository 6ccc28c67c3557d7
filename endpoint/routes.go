package endpoint

import (
	"fmt"
	"net/http"

	"github.com/ariebrainware/inet-clinic/metrics"
	"github.com/ariebrainware/inet-clinic/middleware"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RouterOptions carries what SetupRouter wires into the engine. Nil
// RequestLogger and Metrics switch the matching middleware off, and the rate
// limiter is only installed with a Redis client and a positive limit.
type RouterOptions struct {
	AppName       string
	DB            *gorm.DB
	RequestLogger *util.RequestLogger
	Metrics       *metrics.Metrics
	CORSOrigins   []string
	RateLimit     middleware.RateLimitConfig
}

// SetupRouter returns a gin engine with the middleware chain and every clinic route.
func SetupRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	if opts.RequestLogger != nil {
		router.Use(middleware.EndpointCallLogger(opts.RequestLogger))
	}
	router.Use(middleware.CORSMiddleware(opts.CORSOrigins))
	if opts.RateLimit.Client != nil && opts.RateLimit.Limit > 0 {
		router.Use(middleware.RateLimiter(opts.RateLimit))
	}
	router.Use(middleware.DatabaseMiddleware(opts.DB))

	router.GET("/", Welcome(opts.AppName))
	router.GET("/healthz", Health)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	RegisterRoutes(router)
	return router
}

// RegisterRoutes mounts the clinic CRUD routes on r.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/treatment", ListTreatments)
	r.GET("/treatment-details/:treatmentID", ListTreatmentDetails)
	r.GET("/treatment-detail-edit/:id", GetTreatmentDetail)
	r.GET("/treatment-edit/:id", GetTreatment)
	r.GET("/patient-edit/:id", GetPatient)
	r.GET("/doctor-edit/:id", GetDoctor)

	r.POST("/treatment", CreateTreatment)
	r.POST("/treatment-detail", CreateTreatmentDetail)
	r.POST("/patient", CreatePatient)
	r.POST("/doctor", CreateDoctor)

	r.PUT("/treatment/:id", UpdateTreatment)
	r.PUT("/treatment_detail/:id", UpdateTreatmentDetail)
	r.PUT("/doctor/:id", UpdateDoctor)
	r.PUT("/patient/:id", UpdatePatient)

	r.DELETE("/doctor/:id", DeleteDoctor)
	r.DELETE("/patient/:id", DeletePatient)
	r.DELETE("/treatment/:id", DeleteTreatment)
	r.DELETE("/treatment-detail/:id", DeleteTreatmentDetail)
}

// Welcome godoc
// @Summary      Welcome message
// @Tags         Meta
// @Produce      json
// @Success      200 {object} util.MessageResponse
// @Router       / [get]
func Welcome(appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		util.CallSuccessOK(c, util.MessageResponse{Message: fmt.Sprintf("Welcome to %s!", appName)})
	}
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         Meta
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} util.ErrorResponse
// @Router       /healthz [get]
func Health(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, util.ErrorResponse{Error: "database not configured"})
		return
	}
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, util.ErrorResponse{Error: err.Error()})
		return
	}
	util.CallSuccessOK(c, gin.H{"status": "ok"})
}
