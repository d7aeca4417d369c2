// Package campaignhdl - handler của domain campaign.
package campaignhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "precise_platform/internal/api/base/handler"
	campaignsvc "precise_platform/internal/api/campaign/service"
	"precise_platform/internal/common"
)

// CampaignHandler xử lý các request đọc dữ liệu campaign
type CampaignHandler struct {
	campaignService *campaignsvc.CampaignService
	historyService  *campaignsvc.CampaignHistoryService
	dspService      *campaignsvc.DSPPerformanceService
	healthService   *campaignsvc.CampaignHealthService
}

// NewCampaignHandler tạo instance mới của CampaignHandler
func NewCampaignHandler() (*CampaignHandler, error) {
	campaignService, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign service: %v", err)
	}
	historyService, err := campaignsvc.NewCampaignHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign history service: %v", err)
	}
	dspService, err := campaignsvc.NewDSPPerformanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dsp performance service: %v", err)
	}
	healthService, err := campaignsvc.NewCampaignHealthService()
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign health service: %v", err)
	}

	return &CampaignHandler{
		campaignService: campaignService,
		historyService:  historyService,
		dspService:      dspService,
		healthService:   healthService,
	}, nil
}

// HandleFindByBuyer trả về một trang campaign của buyer
func (h *CampaignHandler) HandleFindByBuyer(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		buyerID, err := basehdl.ParseObjectIDParam(c, "buyerId")
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

		campaigns, err := h.campaignService.FindByBuyer(c.Context(), buyerID, page, limit)
		basehdl.HandleResponse(c, campaigns, err)
		return nil
	})
}

// HandleFindById trả về một campaign theo ID
func (h *CampaignHandler) HandleFindById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		campaign, err := h.campaignService.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, campaign, err)
		return nil
	})
}

// HandleFindHistory trả về một trang history của campaign, sắp theo date tăng dần.
// Trả về 404 khi campaign không tồn tại thay vì một trang rỗng.
func (h *CampaignHandler) HandleFindHistory(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.campaignService.DocumentExists(c.Context(), bson.M{"_id": id})
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if !exists {
			basehdl.HandleResponse(c, nil, common.ErrNotFound)
			return nil
		}

		var query basehdl.PaginationQuery
		if err := basehdl.ParseRequestQuery(c, &query); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := query.Normalize()

		history, err := h.historyService.FindByCampaign(c.Context(), id, page, limit)
		basehdl.HandleResponse(c, history, err)
		return nil
	})
}

// HandleFindDSPPerformance trả về hiệu suất theo kênh DSP của campaign
func (h *CampaignHandler) HandleFindDSPPerformance(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		performance, err := h.dspService.FindByCampaign(c.Context(), id)
		basehdl.HandleResponse(c, performance, err)
		return nil
	})
}

// HandleFindHealth trả về bản ghi health mới nhất của campaign
func (h *CampaignHandler) HandleFindHealth(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		health, err := h.healthService.FindLatestByCampaign(c.Context(), id)
		basehdl.HandleResponse(c, health, err)
		return nil
	})
}
