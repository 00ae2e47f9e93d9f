package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/minutemeet/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	healthHandler     *HealthHandler
	meetingHandler    *MeetingHandler
	actionItemHandler *ActionItemHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, healthHandler *HealthHandler, meetingHandler *MeetingHandler, actionItemHandler *ActionItemHandler) *Router {
	return &Router{
		cfg:               cfg,
		healthHandler:     healthHandler,
		meetingHandler:    meetingHandler,
		actionItemHandler: actionItemHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.welcome)
	e.GET("/health", rt.healthHandler.Check)

	api := e.Group("/api")

	rt.setupMeetingRoutes(api)
	rt.setupActionItemRoutes(api)
}

// setupMeetingRoutes configures meeting processing and retrieval routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("/process", rt.meetingHandler.Process)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.GetByID)
}

// setupActionItemRoutes configures action item CRUD routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	items := g.Group("/action-items")

	items.GET("", rt.actionItemHandler.List)
	items.POST("", rt.actionItemHandler.Create)
	items.PUT("/:id", rt.actionItemHandler.Update)
	items.DELETE("/:id", rt.actionItemHandler.Delete)
}

// welcome returns basic service information
func (rt *Router) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "MinuteMeet API",
		"version": "1.0.0",
		"health":  "/health",
	})
}
