package campaignsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "precise_platform/internal/api/campaign/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// CampaignHealthService là cấu trúc chứa các phương thức liên quan đến health của campaign
type CampaignHealthService struct {
	*basesvc.BaseServiceMongoImpl[models.CampaignHealth]
}

// NewCampaignHealthService tạo mới CampaignHealthService
func NewCampaignHealthService() (*CampaignHealthService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.CampaignHealth)
	if !exist {
		return nil, fmt.Errorf("failed to get campaign_health collection: %v", common.ErrNotFound)
	}

	return &CampaignHealthService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CampaignHealth](collection),
	}, nil
}

// FindLatestByCampaign trả về bản ghi health mới nhất của một campaign
func (s *CampaignHealthService) FindLatestByCampaign(ctx context.Context, campaignID primitive.ObjectID) (models.CampaignHealth, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.FindOne(ctx, bson.M{"campaignId": campaignID}, opts)
}
