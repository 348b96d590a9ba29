package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	"github.com/foodops/weekplan/pkg/domain/repositories"
	"github.com/foodops/weekplan/pkg/infrastructure/monitoring"
)

// Server exposes the scheduling engine and stored schedules over HTTP
type Server struct {
	router    *gin.Engine
	service   *scheduling.Service
	products  repositories.ProductRepository
	schedules repositories.ScheduleRepository
	monitor   *monitoring.Collector
	log       zerolog.Logger
}

// NewServer creates a new API server instance
func NewServer(
	service *scheduling.Service,
	products repositories.ProductRepository,
	schedules repositories.ScheduleRepository,
	monitor *monitoring.Collector,
	logger zerolog.Logger,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:    router,
		service:   service,
		products:  products,
		schedules: schedules,
		monitor:   monitor,
		log:       logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.monitor.Registry(), promhttp.HandlerOpts{}),
	))

	api := s.router.Group("/api")
	{
		api.GET("/products", s.handleListProducts)
		api.GET("/weeks", s.handleListWeeks)
		api.POST("/schedules", s.handleCreateSchedule)
		api.GET("/schedules/:week", s.handleGetSchedule)
		api.DELETE("/schedules/:week", s.handleDeleteSchedule)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}
