package campaignsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "precise_platform/internal/api/base/models"
	basesvc "precise_platform/internal/api/base/service"
	models "precise_platform/internal/api/campaign/models"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// CampaignHistoryService là cấu trúc chứa các phương thức liên quan đến lịch sử campaign
type CampaignHistoryService struct {
	*basesvc.BaseServiceMongoImpl[models.CampaignHistory]
}

// NewCampaignHistoryService tạo mới CampaignHistoryService
func NewCampaignHistoryService() (*CampaignHistoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.CampaignHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get campaign_history collection: %v", common.ErrNotFound)
	}

	return &CampaignHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CampaignHistory](collection),
	}, nil
}

// FindByCampaign trả về một trang history của campaign, sắp xếp tăng dần theo date
func (s *CampaignHistoryService) FindByCampaign(ctx context.Context, campaignID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.CampaignHistory], error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return s.FindWithPagination(ctx, bson.M{"campaignId": campaignID}, page, limit, opts)
}
