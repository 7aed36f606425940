package handlers

import (
	"net/http"

	"github.com/anik404/go-blog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles administrative maintenance requests
type AdminHandler struct {
	reconcileService *services.ReconcileService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(reconcileService *services.ReconcileService) *AdminHandler {
	return &AdminHandler{reconcileService: reconcileService}
}

// RegisterAdminRoutes registers admin-only routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/reconcile", h.Reconcile)
}

// Reconcile runs a consistency sweep over all reference sets
func (h *AdminHandler) Reconcile(c echo.Context) error {
	report, err := h.reconcileService.Run(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}
