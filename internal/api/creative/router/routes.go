// Package router đăng ký các route thuộc domain creative.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	creativehdl "precise_platform/internal/api/creative/handler"
	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký các route creative lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	creativeHandler, err := creativehdl.NewCreativeHandler()
	if err != nil {
		return fmt.Errorf("failed to create creative handler: %w", err)
	}

	v1.Get("/campaigns/:campaignId/creatives", creativeHandler.HandleFindByCampaign)
	v1.Get("/creatives/:id/fatigue-alerts", creativeHandler.HandleFindAlerts)
	return nil
}
