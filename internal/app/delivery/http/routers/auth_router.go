package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register", authController.RegisterPatient)
	router.With(middlewares.LoginRateLimiter().Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
	router.With(middlewares.Authenticate).Put("/password", authController.UpdatePassword)
}
