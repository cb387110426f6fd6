package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quantumstudy/study-api/internal/core/domain"
	"github.com/quantumstudy/study-api/internal/core/ports"
)

// UserHandler handles admin requests on user records.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UpdateTag handles POST /api/admin/update-user-tag.
// Method and credential checks run in middleware before this handler.
//
// @Summary      Set a user's tag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminCookie
// @Param        body  body      updateTagRequest  true  "User id and tag (owner, developer, manager, premium, user)"
// @Success      200   {object}  updateTagResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      405   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/admin/update-user-tag [post]
func (h *UserHandler) UpdateTag(c echo.Context) error {
	var req updateTagRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := h.service.UpdateTag(c.Request().Context(), ports.UpdateTagInput{
		UserID: req.UserID,
		Tag:    *req.Tag,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateTagResponse{Message: "Tag updated", User: user})
}
