// Package marketplacehdl - handler của domain marketplace.
package marketplacehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "precise_platform/internal/api/base/handler"
	marketplacesvc "precise_platform/internal/api/marketplace/service"
)

// MarketplaceHandler xử lý các request đọc data asset, attribution và earning
type MarketplaceHandler struct {
	dataAssetService   *marketplacesvc.DataAssetService
	attributionService *marketplacesvc.AttributionService
	earningService     *marketplacesvc.EarningService
}

// NewMarketplaceHandler tạo instance mới của MarketplaceHandler
func NewMarketplaceHandler() (*MarketplaceHandler, error) {
	dataAssetService, err := marketplacesvc.NewDataAssetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create data asset service: %v", err)
	}
	attributionService, err := marketplacesvc.NewAttributionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create attribution service: %v", err)
	}
	earningService, err := marketplacesvc.NewEarningService()
	if err != nil {
		return nil, fmt.Errorf("failed to create earning service: %v", err)
	}

	return &MarketplaceHandler{
		dataAssetService:   dataAssetService,
		attributionService: attributionService,
		earningService:     earningService,
	}, nil
}

// HandleFindAssetsByOwner trả về một trang data asset của owner
func (h *MarketplaceHandler) HandleFindAssetsByOwner(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		ownerID, err := basehdl.ParseObjectIDParam(c, "ownerId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var query basehdl.PaginationQuery
		if err := basehdl.ParseRequestQuery(c, &query); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := query.Normalize()

		assets, err := h.dataAssetService.FindByOwner(c.Context(), ownerID, page, limit)
		basehdl.HandleResponse(c, assets, err)
		return nil
	})
}

// HandleFindAttributions trả về các bản ghi attribution của một campaign
func (h *MarketplaceHandler) HandleFindAttributions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		campaignID, err := basehdl.ParseObjectIDParam(c, "campaignId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		attributions, err := h.attributionService.FindByCampaign(c.Context(), campaignID)
		basehdl.HandleResponse(c, attributions, err)
		return nil
	})
}

// HandleFindEarnings trả về các earning của một owner
func (h *MarketplaceHandler) HandleFindEarnings(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		ownerID, err := basehdl.ParseObjectIDParam(c, "ownerId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		earnings, err := h.earningService.FindByOwner(c.Context(), ownerID)
		basehdl.HandleResponse(c, earnings, err)
		return nil
	})
}
