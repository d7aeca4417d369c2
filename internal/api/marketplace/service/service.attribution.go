package marketplacesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "precise_platform/internal/api/marketplace/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// AttributionService là cấu trúc chứa các phương thức liên quan đến attribution
type AttributionService struct {
	*basesvc.BaseServiceMongoImpl[models.Attribution]
}

// NewAttributionService tạo mới AttributionService
func NewAttributionService() (*AttributionService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Attributions)
	if !exist {
		return nil, fmt.Errorf("failed to get attributions collection: %v", common.ErrNotFound)
	}

	return &AttributionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Attribution](collection),
	}, nil
}

// FindByCampaign trả về các bản ghi attribution của một campaign
func (s *AttributionService) FindByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.Attribution, error) {
	return s.Find(ctx, bson.M{"campaignId": campaignID}, nil)
}
