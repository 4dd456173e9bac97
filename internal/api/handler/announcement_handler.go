package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/api/metrics"
	"github.com/sellora/storefront-admin/internal/core/ports"
)

// AnnouncementHandler handles the singleton broadcast announcement.
type AnnouncementHandler struct {
	announcements ports.AnnouncementService
}

func NewAnnouncementHandler(announcements ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

type publishAnnouncementRequest struct {
	Message  string `json:"message" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

// Active handles GET /api/announcements, the public read of the active
// announcement. The body is null when nothing is published.
//
// @Summary      Active announcement
// @Tags         announcements
// @Produce      json
// @Success      200  {object}  domain.Announcement
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) Active(c echo.Context) error {
	ann, err := h.announcements.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ann)
}

// Publish handles POST /api/announcements. The new announcement supersedes
// any previously active one.
//
// @Summary      Publish an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        body  body      publishAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/announcements [post]
func (h *AnnouncementHandler) Publish(c echo.Context) error {
	var req publishAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ann, err := h.announcements.Publish(c.Request().Context(), req.Message, isActive)
	if err != nil {
		return err
	}

	metrics.AnnouncementsPublishedTotal.Inc()
	return c.JSON(http.StatusCreated, ann)
}
