// Package router đăng ký các route thuộc domain auth: System, User.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "precise_platform/internal/api/auth/handler"
	basehdl "precise_platform/internal/api/base/handler"
	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký tất cả route auth (system, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerUserRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	router.Get("/users/find-one", userHandler.HandleFindByEmail)
	router.Get("/users/:id", userHandler.HandleFindById)
	router.Post("/users", userHandler.HandleCreate)
	router.Put("/users/:id", userHandler.HandleUpdate)
	return nil
}
