package seedsvc

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký route admin kích hoạt seed lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	seedHandler, err := NewSeedHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed handler: %w", err)
	}

	v1.Post("/admin/seed/demo", seedHandler.HandleSeedDemo)
	v1.Delete("/admin/seed/demo", seedHandler.HandleResetDemo)
	return nil
}
