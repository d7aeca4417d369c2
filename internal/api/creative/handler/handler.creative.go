// Package creativehdl - handler của domain creative.
package creativehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "precise_platform/internal/api/base/handler"
	creativesvc "precise_platform/internal/api/creative/service"
)

// CreativeHandler xử lý các request đọc dữ liệu creative
type CreativeHandler struct {
	creativeService     *creativesvc.CreativeService
	fatigueAlertService *creativesvc.FatigueAlertService
}

// NewCreativeHandler tạo instance mới của CreativeHandler
func NewCreativeHandler() (*CreativeHandler, error) {
	creativeService, err := creativesvc.NewCreativeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create creative service: %v", err)
	}
	fatigueAlertService, err := creativesvc.NewFatigueAlertService()
	if err != nil {
		return nil, fmt.Errorf("failed to create fatigue alert service: %v", err)
	}

	return &CreativeHandler{
		creativeService:     creativeService,
		fatigueAlertService: fatigueAlertService,
	}, nil
}

// HandleFindByCampaign trả về các creative của một campaign
func (h *CreativeHandler) HandleFindByCampaign(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		campaignID, err := basehdl.ParseObjectIDParam(c, "campaignId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		creatives, err := h.creativeService.FindByCampaign(c.Context(), campaignID)
		basehdl.HandleResponse(c, creatives, err)
		return nil
	})
}

// HandleFindAlerts trả về các fatigue alert của một creative
func (h *CreativeHandler) HandleFindAlerts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		creativeID, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		alerts, err := h.fatigueAlertService.FindByCreative(c.Context(), creativeID)
		basehdl.HandleResponse(c, alerts, err)
		return nil
	})
}
