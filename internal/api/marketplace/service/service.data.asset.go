// Package marketplacesvc - các service thuộc domain marketplace.
package marketplacesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "precise_platform/internal/api/base/models"
	basesvc "precise_platform/internal/api/base/service"
	models "precise_platform/internal/api/marketplace/models"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// DataAssetService là cấu trúc chứa các phương thức liên quan đến data asset
type DataAssetService struct {
	*basesvc.BaseServiceMongoImpl[models.DataAsset]
}

// NewDataAssetService tạo mới DataAssetService
func NewDataAssetService() (*DataAssetService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.DataAssets)
	if !exist {
		return nil, fmt.Errorf("failed to get data_assets collection: %v", common.ErrNotFound)
	}

	return &DataAssetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DataAsset](collection),
	}, nil
}

// FindByOwner trả về một trang data asset của owner
func (s *DataAssetService) FindByOwner(ctx context.Context, ownerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.DataAsset], error) {
	return s.FindWithPagination(ctx, bson.M{"ownerId": ownerID}, page, limit, nil)
}
