package handlers

import (
	"net/http"

	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/middleware"
	"github.com/gatherly/server/internal/models"
	"github.com/gatherly/server/internal/services"
	"github.com/gin-gonic/gin"
)

func Signup(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.Validation(apperr.FieldError{Field: "body", Message: "Invalid request body"}))
			return
		}

		user, token, err := a.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "User created successfully"))
	}
}

func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, apperr.Validation(apperr.FieldError{Field: "body", Message: "Invalid request body"}))
			return
		}

		user, token, err := a.Login(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "Login successful"))
	}
}

func Profile(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := middleware.CurrentUserID(c)
		if !ok {
			respondError(c, apperr.Unauthorized("unauthorized"))
			return
		}

		user, err := a.Profile(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"user": user}, ""))
	}
}
