// Package insighthdl - handler của domain insight.
package insighthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "precise_platform/internal/api/base/handler"
	insightsvc "precise_platform/internal/api/insight/service"
)

// InsightHandler xử lý các request đọc dự báo và khuyến nghị
type InsightHandler struct {
	predictionService     *insightsvc.CACPredictionService
	recommendationService *insightsvc.RecommendationService
}

// NewInsightHandler tạo instance mới của InsightHandler
func NewInsightHandler() (*InsightHandler, error) {
	predictionService, err := insightsvc.NewCACPredictionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cac prediction service: %v", err)
	}
	recommendationService, err := insightsvc.NewRecommendationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation service: %v", err)
	}

	return &InsightHandler{
		predictionService:     predictionService,
		recommendationService: recommendationService,
	}, nil
}

// HandleFindPrediction trả về bản ghi dự báo CAC mới nhất của campaign
func (h *InsightHandler) HandleFindPrediction(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		campaignID, err := basehdl.ParseObjectIDParam(c, "campaignId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		prediction, err := h.predictionService.FindLatestByCampaign(c.Context(), campaignID)
		basehdl.HandleResponse(c, prediction, err)
		return nil
	})
}

// HandleFindRecommendations trả về các khuyến nghị của một người dùng
func (h *InsightHandler) HandleFindRecommendations(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userID, err := basehdl.ParseObjectIDParam(c, "userId")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		recommendations, err := h.recommendationService.FindByUser(c.Context(), userID)
		basehdl.HandleResponse(c, recommendations, err)
		return nil
	})
}
