package handlers

import (
	"errors"
	"net/http"

	"github.com/nkiryanov/postboard/internal/apperrors"
	"github.com/nkiryanov/postboard/internal/handlers/render"
	"github.com/nkiryanov/postboard/internal/logger"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func handleRegister(s authService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[credentialsRequest](w, r)
		if err != nil {
			l.Warn("Registration rejected", "error", err)
			return
		}

		user, err := s.Register(r.Context(), data.Username, data.Password)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrCredentialsRequired):
			l.Warn("Registration rejected", "error", err)
			render.ServiceError(w, "Username and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			l.Warn("User already exists", "username", data.Username)
			render.ServiceError(w, "User already exists", http.StatusConflict)
			return
		default:
			l.Error("Failed to register user", "username", data.Username, "error", err)
			render.InternalError(w)
			return
		}

		l.Info("User registered", "username", user.Username)
		render.JSONWithStatus(w, render.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
	})
}

func handleLogin(s authService, l logger.Logger) http.Handler {
	type response struct {
		Token string `json:"token"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[credentialsRequest](w, r)
		if err != nil {
			l.Warn("Login rejected", "error", err)
			return
		}

		token, err := s.Login(r.Context(), data.Username, data.Password)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrCredentialsRequired):
			l.Warn("Login rejected", "error", err)
			render.ServiceError(w, "Username and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			l.Warn("Invalid credentials", "username", data.Username)
			render.ServiceError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		default:
			l.Error("Failed to login user", "username", data.Username, "error", err)
			render.InternalError(w)
			return
		}

		l.Info("User logged in", "username", data.Username)
		s.SetTokenToResponse(w, token)
		render.JSON(w, response{Token: token.Value})
	})
}
