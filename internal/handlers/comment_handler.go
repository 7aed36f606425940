package handlers

import (
	"net/http"

	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments", h.Create)
	g.GET("/comments", h.GetAll)
	g.GET("/comments/:postId", h.GetByPost)
	g.PUT("/comments/:id", h.Update)
	g.DELETE("/comments/:id", h.Delete)
}

// Create creates a new comment on an existing post
func (h *CommentHandler) Create(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetAll retrieves all comments
func (h *CommentHandler) GetAll(c echo.Context) error {
	comments, err := h.commentService.GetAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// GetByPost retrieves all comments made on a specific post
func (h *CommentHandler) GetByPost(c echo.Context) error {
	comments, err := h.commentService.GetByPostID(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Update applies partial fields to an existing comment
func (h *CommentHandler) Update(c echo.Context) error {
	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete removes a comment and returns the deleted document
func (h *CommentHandler) Delete(c echo.Context) error {
	comment, err := h.commentService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}
