package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quantumstudy/study-api/internal/core/ports"
)

// ServerInfoHandler serves public branding and contact metadata.
type ServerInfoHandler struct {
	service ports.ServerInfoService
}

func NewServerInfoHandler(service ports.ServerInfoService) *ServerInfoHandler {
	return &ServerInfoHandler{service: service}
}

// Get handles GET /api/auth/serverInfo.
//
// @Summary      Branding and contact metadata
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.ServerInfo
// @Failure      500  {object}  messageResponse
// @Router       /api/auth/serverInfo [get]
func (h *ServerInfoHandler) Get(c echo.Context) error {
	info, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// Contact handles GET /api/contact.
//
// @Summary      Resolved contact links
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.ContactLinks
// @Failure      500  {object}  messageResponse
// @Router       /api/contact [get]
func (h *ServerInfoHandler) Contact(c echo.Context) error {
	links, err := h.service.ContactLinks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, links)
}
