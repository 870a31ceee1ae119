package server

import (
	"time"

	"medbid-backend/internal/config"
	"medbid-backend/internal/handlers"
	"medbid-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires the router, the handlers and their dependencies.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
	cfg    *config.Config
}

// New builds the server with request logging, panic recovery, CORS and
// gzip compression, and registers all routes.
func New(cfg *config.Config, st *store.Store, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(gzip.Gzip(gzip.BestSpeed))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	s := &Server{router: router, logger: logger, cfg: cfg}
	s.registerRoutes(handlers.New(st, cfg, logger))
	return s
}

func (s *Server) registerRoutes(h *handlers.Handler) {
	s.router.GET("/", h.Root)

	patient := s.router.Group("/patient")
	{
		patient.POST("/signup", h.PatientSignup)
		patient.POST("/login", h.PatientLogin)
		patient.GET("/by-email/:email", h.GetPatientByEmail)
		patient.POST("/create-bid", h.CreateBid)
	}

	bids := s.router.Group("/bids")
	{
		bids.GET("/", h.ListBids)
		bids.GET("/by-email/:email", h.ListBidsByEmail)
		bids.PATCH("/:id/approve", h.ApproveBid)
		bids.PATCH("/:id/reject", h.RejectBid)
	}

	hospitals := s.router.Group("/hospitals")
	{
		hospitals.GET("/", h.ListHospitals)
		hospitals.GET("/:id", h.GetHospital)
		hospitals.POST("/", h.CreateHospital)
	}

	superadmin := s.router.Group("/superadmin")
	{
		superadmin.POST("/login", h.SuperadminLogin)
	}
}

// Run starts serving on the configured port.
func (s *Server) Run() error {
	s.logger.Info("starting server", zap.String("port", s.cfg.ListenPort))
	return s.router.Run(":" + s.cfg.ListenPort)
}

// Router exposes the gin engine for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
