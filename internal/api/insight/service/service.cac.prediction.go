// Package insightsvc - các service thuộc domain insight.
package insightsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "precise_platform/internal/api/insight/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// CACPredictionService là cấu trúc chứa các phương thức liên quan đến dự báo CAC
type CACPredictionService struct {
	*basesvc.BaseServiceMongoImpl[models.CACPrediction]
}

// NewCACPredictionService tạo mới CACPredictionService
func NewCACPredictionService() (*CACPredictionService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.CACPredictions)
	if !exist {
		return nil, fmt.Errorf("failed to get cac_predictions collection: %v", common.ErrNotFound)
	}

	return &CACPredictionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CACPrediction](collection),
	}, nil
}

// FindLatestByCampaign trả về bản ghi dự báo mới nhất của một campaign
func (s *CACPredictionService) FindLatestByCampaign(ctx context.Context, campaignID primitive.ObjectID) (models.CACPrediction, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.FindOne(ctx, bson.M{"campaignId": campaignID}, opts)
}
