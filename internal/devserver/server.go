// Package devserver is the in-memory mock backend the product's client
// talks to during development. It implements the REST surface the SDK
// consumes: cookie sessions, the registration endpoint, and CRUD for diets,
// meals, nutrition-info records and appointments, all returning the uniform
// paged envelope. Nothing is persisted across a restart.
package devserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/VERITAS-IO/dietech-client/internal/config"
)

// devSecret signs session cookies when no SESSION_SECRET is configured.
// Config.Validate refuses this fallback outside development.
const devSecret = "dietech-dev-only"

type Server struct {
	echo *echo.Echo
	log  zerolog.Logger
	mem  *memory
	sess *sessions
	addr string
}

// New builds the dev server with its full middleware chain and routes.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	secret := cfg.SessionSecret
	if secret == "" {
		secret = devSecret
	}

	s := &Server{
		echo: echo.New(),
		log:  logger,
		mem:  newMemory(),
		sess: newSessions(secret, cfg.SessionTTL()),
		addr: ":" + cfg.DevServerPort,
	}
	s.mem.seed()

	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(Recovery(logger))
	e.Use(RequestID())
	e.Use(Logger(logger))
	e.Use(Latency(cfg.MockLatency()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/login", s.login)
	e.POST("/auth/register", s.register)
	e.POST("/auth/logout", s.logout)

	authed := e.Group("", s.sess.Require())

	authed.GET("/clients", s.listClients)
	authed.GET("/clients/:id", s.getClient)
	authed.POST("/clients", s.registerClient)

	authed.GET("/api/v1/diets", s.listDiets)
	authed.GET("/api/v1/diets/:id", s.getDiet)
	authed.POST("/api/v1/diets", s.createDiet)
	authed.PUT("/api/v1/diets/:id", s.updateDiet)
	authed.DELETE("/api/v1/diets/:id", s.deleteDiet)

	authed.GET("/api/v1/meals", s.listMeals)
	authed.GET("/api/v1/meals/:id", s.getMeal)
	authed.POST("/api/v1/meals", s.createMeal)
	authed.PUT("/api/v1/meals/:id", s.updateMeal)
	authed.DELETE("/api/v1/meals/:id", s.deleteMeal)

	authed.GET("/nutrition-info", s.listNutrition)
	authed.GET("/nutrition-info/:id", s.getNutrition)
	authed.POST("/nutrition-info", s.createNutrition)
	authed.PUT("/nutrition-info/:id", s.updateNutrition)
	authed.DELETE("/nutrition-info/:id", s.deleteNutrition)

	authed.GET("/appointments", s.listAppointments)
	authed.GET("/appointments/:id", s.getAppointment)
	authed.POST("/appointments", s.createAppointment)
	authed.PUT("/appointments/:id", s.updateAppointment)
	authed.DELETE("/appointments/:id", s.deleteAppointment)
	authed.POST("/appointments/:id/notes", s.addAppointmentNote)

	return s
}

// Handler exposes the underlying handler for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.addr).Msg("dev server listening")
	return s.echo.Start(s.addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
