// Package router đăng ký các route thuộc domain insight.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	insighthdl "precise_platform/internal/api/insight/handler"
	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký các route insight lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	insightHandler, err := insighthdl.NewInsightHandler()
	if err != nil {
		return fmt.Errorf("failed to create insight handler: %w", err)
	}

	v1.Get("/campaigns/:campaignId/cac-prediction", insightHandler.HandleFindPrediction)
	v1.Get("/users/:userId/recommendations", insightHandler.HandleFindRecommendations)
	return nil
}
