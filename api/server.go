package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/pulmoguard/surveillance-api/alert"
	"github.com/pulmoguard/surveillance-api/external/inference"
	"github.com/pulmoguard/surveillance-api/logmodule"
	"github.com/pulmoguard/surveillance-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.SurveillanceCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	inferenceClient inference.Inference

	// Alerting
	alertEngine *alert.Engine
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	jwtKey *rsa.PrivateKey,
	inferenceClient inference.Inference) *Server {
	return &Server{
		store:           store.NewSurveillanceStore(ormDB, mongoStore),
		mongoStore:      mongoStore,
		jwtPrivateKey:   jwtKey,
		inferenceClient: inferenceClient,
		alertEngine:     alert.NewEngine(nil),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/hospitals", s.hospitalRegister)

	// api route other than the ones above will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeHospitalMiddleware())

	uploadRoute := apiRoute.Group("/uploads")
	{
		uploadRoute.POST("", s.uploadImages)
		uploadRoute.GET("/:uploadID/analyses", s.listAnalyses)
	}

	apiRoute.POST("/resources", s.reportResources)

	dashboardRoute := r.Group("/api/v1")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		dashboardRoute.GET("/global-stats", s.globalStats)
		dashboardRoute.GET("/regional-data", s.regionalData)
		dashboardRoute.GET("/hospitals", s.hospitalList)
		dashboardRoute.GET("/hospital/:hospitalID/stats", s.hospitalStats)

		dashboardRoute.GET("/predictions/region/:regionID", s.regionPrediction)
		dashboardRoute.GET("/predictions/hospital/:hospitalID", s.hospitalPrediction)

		dashboardRoute.GET("/alerts", s.activeAlerts)
		dashboardRoute.GET("/alerts/summary", s.alertSummary)
		dashboardRoute.GET("/alerts/growth", s.growthAlerts)
		dashboardRoute.GET("/alerts/capacity", s.capacityAlerts)

		dashboardRoute.GET("/analytics/growth-metrics", s.growthMetrics)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/regional-summaries", s.upsertRegionalSummary)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	inferenceStatus := "ok"
	if err := s.inferenceClient.Health(); nil != err {
		inferenceStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"inference":      inferenceStatus,
			"system_version": "PulmoGuard 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
