package handlers

import (
	"net/http"

	"gatherly/models"
	"gatherly/services/event"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler exposes the event-management endpoints of the admin panel.
type EventHandler struct {
	EventSvc event.EventService
	Logger   *zap.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc event.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		EventSvc: svc,
		Logger:   logger,
	}
}

// actorID reads the authenticated admin from the context set by the auth
// middleware.
func actorID(c *gin.Context) string {
	if id, exists := c.Get("adminID"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// eventResponse adds the display price to an event for the list views.
type eventResponse struct {
	models.Event
	DisplayPrice string `json:"displayPrice,omitempty"`
}

func toEventResponse(evt models.Event) eventResponse {
	resp := eventResponse{Event: evt}
	if evt.PriceMinor != 0 || evt.Currency != "" {
		resp.DisplayPrice = utils.FormatAmount(evt.PriceMinor, evt.Currency)
	}
	return resp
}

func toEventResponses(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, evt := range events {
		out = append(out, toEventResponse(evt))
	}
	return out
}

// CreateEventHandler creates an event; a recurrence rule in the payload
// expands into the full series.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	var input models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	parent, children, err := h.EventSvc.CreateEvent(c, actorID(c), input)
	if err != nil {
		if evtErr, ok := err.(*event.EventError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": evtErr.Message})
			return
		}
		h.Logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"event":     toEventResponse(*parent),
		"instances": toEventResponses(children),
	})
}

// PreviewRecurrenceHandler expands a draft rule for the operator form.
func (h *EventHandler) PreviewRecurrenceHandler(c *gin.Context) {
	var rule models.RecurrenceRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	instants, err := h.EventSvc.PreviewRecurrence(c, rule)
	if err != nil {
		if evtErr, ok := err.(*event.EventError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": evtErr.Message})
			return
		}
		h.Logger.Error("Failed to preview recurrence", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to preview recurrence"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(instants),
		"instants": instants,
	})
}

// GetEventHandler returns one event by ID.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	evt, err := h.EventSvc.GetEvent(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*evt))
}

// ListCommunityEventsHandler returns a community's calendar in date order.
func (h *EventHandler) ListCommunityEventsHandler(c *gin.Context) {
	events, err := h.EventSvc.ListCommunityEvents(c, c.Param("communityID"))
	if err != nil {
		if evtErr, ok := err.(*event.EventError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": evtErr.Message})
			return
		}
		h.Logger.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

// GetSeriesHandler returns the parent and all of its instances in series order.
func (h *EventHandler) GetSeriesHandler(c *gin.Context) {
	events, err := h.EventSvc.GetSeries(c, c.Param("id"))
	if err != nil {
		h.Logger.Error("Failed to fetch series", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch series"})
		return
	}
	c.JSON(http.StatusOK, toEventResponses(events))
}

// UpdateEventHandler replaces the editable fields of an event.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	var input models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.EventSvc.UpdateEvent(c, actorID(c), input)
	if err != nil {
		if evtErr, ok := err.(*event.EventError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": evtErr.Message})
			return
		}
		h.Logger.Error("Failed to update event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*updated))
}

// DeleteSeriesHandler removes an event together with its generated instances.
func (h *EventHandler) DeleteSeriesHandler(c *gin.Context) {
	deleted, err := h.EventSvc.DeleteSeries(c, actorID(c), c.Param("id"))
	if err != nil {
		if evtErr, ok := err.(*event.EventError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": evtErr.Message})
			return
		}
		h.Logger.Error("Failed to delete series", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete series"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
