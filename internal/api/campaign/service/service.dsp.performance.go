package campaignsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "precise_platform/internal/api/campaign/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// DSPPerformanceService là cấu trúc chứa các phương thức liên quan đến hiệu suất DSP
type DSPPerformanceService struct {
	*basesvc.BaseServiceMongoImpl[models.DSPPerformance]
}

// NewDSPPerformanceService tạo mới DSPPerformanceService
func NewDSPPerformanceService() (*DSPPerformanceService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.DSPPerformance)
	if !exist {
		return nil, fmt.Errorf("failed to get dsp_performance collection: %v", common.ErrNotFound)
	}

	return &DSPPerformanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DSPPerformance](collection),
	}, nil
}

// FindByCampaign trả về các bản ghi hiệu suất DSP của một campaign
func (s *DSPPerformanceService) FindByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.DSPPerformance, error) {
	return s.Find(ctx, bson.M{"campaignId": campaignID}, nil)
}
