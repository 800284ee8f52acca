package handler

import (
	"log/slog"
	"net/http"

	"mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/response"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler serves the comments of an address
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// List handles GET /addresses/:id/comments
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentUC.List(c.Request().Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}

	return response.List(c, comments)
}

// Add handles POST /addresses/:id/comments
func (h *CommentHandler) Add(c echo.Context) error {
	var input usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid comment body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	comment, err := h.commentUC.Add(c.Request().Context(), middleware.GetIdentity(c), c.Param("id"), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, comment)
}
