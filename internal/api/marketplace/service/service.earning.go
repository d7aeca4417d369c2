package marketplacesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "precise_platform/internal/api/marketplace/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// EarningService là cấu trúc chứa các phương thức liên quan đến earning
type EarningService struct {
	*basesvc.BaseServiceMongoImpl[models.Earning]
}

// NewEarningService tạo mới EarningService
func NewEarningService() (*EarningService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Earnings)
	if !exist {
		return nil, fmt.Errorf("failed to get earnings collection: %v", common.ErrNotFound)
	}

	return &EarningService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Earning](collection),
	}, nil
}

// FindByOwner trả về các earning của một owner, mới nhất trước
func (s *EarningService) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Earning, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.Find(ctx, bson.M{"ownerId": ownerID}, opts)
}
