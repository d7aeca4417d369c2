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

// RecommendationService là cấu trúc chứa các phương thức liên quan đến recommendation
type RecommendationService struct {
	*basesvc.BaseServiceMongoImpl[models.Recommendation]
}

// NewRecommendationService tạo mới RecommendationService
func NewRecommendationService() (*RecommendationService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Recommendations)
	if !exist {
		return nil, fmt.Errorf("failed to get recommendations collection: %v", common.ErrNotFound)
	}

	return &RecommendationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Recommendation](collection),
	}, nil
}

// FindByUser trả về các recommendation của một người dùng, mới nhất trước
func (s *RecommendationService) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Recommendation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"userId": userID}, opts)
}
