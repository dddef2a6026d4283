package handler

import (
	"net/http"

	"eventdesk/internal/delivery/api/response"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
}

// EventHandler holds dependencies for event-related handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
	}
}

// CreateEventRequest holds the text fields of the create-event form.
type CreateEventRequest struct {
	EventName string `form:"eventName"`
	UserID    string `form:"userId"`
}

// CreateEventResponse is returned once the event is recorded.
type CreateEventResponse struct {
	Success      bool   `json:"success"`
	EventID      string `json:"eventId"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// UserEventsRequest names the owner whose events are listed.
type UserEventsRequest struct {
	UserID string `param:"userId" validate:"required"`
}

// EventRequest names a single event.
type EventRequest struct {
	EventID string `param:"eventId" validate:"required"`
}

// EventsResponse lists events, newest first.
type EventsResponse struct {
	Events []*entity.Event `json:"events"`
}

// EventResponse wraps a single event.
type EventResponse struct {
	Event *entity.Event `json:"event"`
}

// CreateEvent handles the create-event form and its thumbnail upload.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	if err := parseMultipart(c); err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid event form")
	}

	thumbnail, closer, err := formFile(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closer.Close()

	event, err := h.eventUC.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		EventName: req.EventName,
		UserID:    req.UserID,
		Thumbnail: thumbnail,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, CreateEventResponse{
		Success:      true,
		EventID:      event.ID,
		ThumbnailURL: event.ThumbnailURL,
	})
}

// ListEvents returns the owner's events.
func (h *EventHandler) ListEvents(c echo.Context) error {
	var req UserEventsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, EventsResponse{Events: events})
}

// GetEvent returns a single event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), req.EventID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, EventResponse{Event: event})
}

// ShareQRCode returns a PNG QR code linking to the event.
func (h *EventHandler) ShareQRCode(c echo.Context) error {
	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.eventUC.ShareQRCode(c.Request().Context(), req.EventID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// bindAndValidate binds path and query parameters, then checks the `validate` tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request parameters")
	}

	return c.Validate(req)
}
