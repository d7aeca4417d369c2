// Package creativesvc - các service thuộc domain creative.
package creativesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "precise_platform/internal/api/creative/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// CreativeService là cấu trúc chứa các phương thức liên quan đến creative
type CreativeService struct {
	*basesvc.BaseServiceMongoImpl[models.Creative]
}

// NewCreativeService tạo mới CreativeService
func NewCreativeService() (*CreativeService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Creatives)
	if !exist {
		return nil, fmt.Errorf("failed to get creatives collection: %v", common.ErrNotFound)
	}

	return &CreativeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Creative](collection),
	}, nil
}

// FindByCampaign trả về các creative của một campaign
func (s *CreativeService) FindByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.Creative, error) {
	return s.Find(ctx, bson.M{"campaignId": campaignID}, nil)
}
