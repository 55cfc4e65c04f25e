package handlers

import (
	"net/http"

	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/middleware"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := middleware.CurrentUserID(c)
		if !ok {
			respondError(c, apperr.Unauthorized("unauthorized"))
			return
		}

		var in services.CreateEventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.Validation(apperr.FieldError{Field: "body", Message: "Invalid request body"}))
			return
		}

		event, err := e.CreateEvent(c.Request.Context(), in, userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{"event": event}, "Event created successfully"))
	}
}

func ListEvents(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query services.ListEventsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondError(c, apperr.Validation(apperr.FieldError{Field: "query", Message: "Invalid query parameters"}))
			return
		}

		page, err := e.ListEvents(c.Request.Context(), query)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(page, "Events retrieved successfully"))
	}
}

func GetEventStats(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := middleware.CurrentUserID(c)
		if !ok {
			respondError(c, apperr.Unauthorized("unauthorized"))
			return
		}

		stats, err := e.GetEventStats(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, "Event statistics retrieved successfully"))
	}
}

func GetEventByID(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := e.GetEventByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"event": event}, ""))
	}
}

func DeleteEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := middleware.CurrentUserID(c)
		if !ok {
			respondError(c, apperr.Unauthorized("unauthorized"))
			return
		}

		if err := e.DeleteEvent(c.Request.Context(), c.Param("id"), userId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}
