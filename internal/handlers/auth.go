package handlers

import (
	"errors"
	"net/http"

	"growbit/internal/logger"
	"growbit/internal/models"
	"growbit/internal/service"

	"github.com/gin-gonic/gin"
)

func handleRegister(c *gin.Context) {
	svc := getService(c)

	var req models.RegisterRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.RegisterResponse{
			Error:  true,
			Reason: "invalid request body",
		})
		return
	}

	err := svc.Register(req)
	if err == nil {
		c.JSON(http.StatusOK, models.RegisterResponse{Error: false})
		return
	}

	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, models.RegisterResponse{
			Error:  true,
			Reason: ve.Reason,
		})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, models.RegisterResponse{
			Error:  true,
			Reason: "username is already taken",
		})
	default:
		logger.Error("Registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.RegisterResponse{
			Error:  true,
			Reason: "failed to create account",
		})
	}
}

func handleLogin(c *gin.Context) {
	svc := getService(c)

	var req models.LoginRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.LoginResponse{
			Error:  true,
			Reason: "invalid request body",
		})
		return
	}

	signed, userID, err := svc.Login(req)
	if err == nil {
		c.JSON(http.StatusOK, models.LoginResponse{
			Error:  false,
			Token:  signed,
			UserID: userID.String(),
		})
		return
	}

	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, models.LoginResponse{
			Error:  true,
			Reason: ve.Reason,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusBadRequest, models.LoginResponse{
			Error:  true,
			Reason: "user not found",
		})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.LoginResponse{
			Error:  true,
			Reason: "invalid password",
		})
	default:
		logger.Error("Login failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.LoginResponse{
			Error:  true,
			Reason: "failed to log in",
		})
	}
}
