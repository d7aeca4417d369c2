// Package router đăng ký các route thuộc domain campaign.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	campaignhdl "precise_platform/internal/api/campaign/handler"
	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký các route campaign lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	campaignHandler, err := campaignhdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("failed to create campaign handler: %w", err)
	}

	v1.Get("/buyers/:buyerId/campaigns", campaignHandler.HandleFindByBuyer)
	v1.Get("/campaigns/:id", campaignHandler.HandleFindById)
	v1.Get("/campaigns/:id/history", campaignHandler.HandleFindHistory)
	v1.Get("/campaigns/:id/dsp-performance", campaignHandler.HandleFindDSPPerformance)
	v1.Get("/campaigns/:id/health", campaignHandler.HandleFindHealth)
	return nil
}
