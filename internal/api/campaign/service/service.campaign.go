// Package campaignsvc - các service thuộc domain campaign.
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

// CampaignService là cấu trúc chứa các phương thức liên quan đến campaign
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[models.Campaign]
}

// NewCampaignService tạo mới CampaignService
func NewCampaignService() (*CampaignService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get campaigns collection: %v", common.ErrNotFound)
	}

	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Campaign](collection),
	}, nil
}

// FindByBuyer trả về một trang campaign của buyer, mới nhất trước
func (s *CampaignService) FindByBuyer(ctx context.Context, buyerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Campaign], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"buyerId": buyerID}, page, limit, opts)
}
