// Package router đăng ký các route thuộc domain marketplace.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	marketplacehdl "precise_platform/internal/api/marketplace/handler"
	apirouter "precise_platform/internal/api/router"
)

// Register đăng ký các route marketplace lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	marketplaceHandler, err := marketplacehdl.NewMarketplaceHandler()
	if err != nil {
		return fmt.Errorf("failed to create marketplace handler: %w", err)
	}

	v1.Get("/owners/:ownerId/data-assets", marketplaceHandler.HandleFindAssetsByOwner)
	v1.Get("/owners/:ownerId/earnings", marketplaceHandler.HandleFindEarnings)
	v1.Get("/campaigns/:campaignId/attributions", marketplaceHandler.HandleFindAttributions)
	return nil
}
