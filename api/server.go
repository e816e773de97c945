package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/foodwatch/foodwatch-api/dashboard"
	"github.com/foodwatch/foodwatch-api/external/analysis"
	"github.com/foodwatch/foodwatch-api/live"
	"github.com/foodwatch/foodwatch-api/logmodule"
	"github.com/foodwatch/foodwatch-api/store"
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
	store store.FoodSafetyCore

	// View models
	dashboard *dashboard.Service

	// Live updates
	hub      *live.Hub
	upgrader websocket.Upgrader

	// Canceled on shutdown, ends every live session
	sessions      context.Context
	closeSessions context.CancelFunc

	// External services
	trigger *analysis.Trigger

	corsOrigins []string
}

// NewServer new instance of server
func NewServer(
	core store.FoodSafetyCore,
	svc *dashboard.Service,
	hub *live.Hub,
	trigger *analysis.Trigger,
	corsOrigins []string) *Server {
	s := &Server{
		store:       core,
		dashboard:   svc,
		hub:         hub,
		trigger:     trigger,
		corsOrigins: corsOrigins,
	}

	s.sessions, s.closeSessions = context.WithCancel(context.Background())

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	return s
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if len(s.corsOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.corsOrigins
	}
	return config
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.corsOrigins) == 0 {
		return true
	}

	for _, o := range s.corsOrigins {
		if o == origin || o == "*" {
			return true
		}
	}
	return false
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
	apiRoute.Use(cors.New(s.corsConfig()))
	{
		apiRoute.GET("/dashboard", s.overview)
		apiRoute.GET("/alerts", s.alerts)
		apiRoute.GET("/trends", s.trends)
		apiRoute.GET("/locations", s.locations)
		apiRoute.GET("/map", s.markers)
		apiRoute.GET("/live", s.live)
	}

	caseRoute := apiRoute.Group("/cases")
	{
		caseRoute.GET("", s.cases)
		caseRoute.GET("/export", s.exportCases)
	}

	analyzeRoute := apiRoute.Group("/analyze")
	{
		analyzeRoute.POST("", s.analyze)
		analyzeRoute.GET("/progress", s.analyzeProgress)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/", s.index)

	return r
}

// Shutdown to shutdown the server. Live sessions are hijacked connections
// the http server does not track, so they are closed here.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closeSessions()

	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	captureException(c, err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func captureException(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
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
