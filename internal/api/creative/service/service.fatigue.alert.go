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

// FatigueAlertService là cấu trúc chứa các phương thức liên quan đến fatigue alert
type FatigueAlertService struct {
	*basesvc.BaseServiceMongoImpl[models.CreativeFatigueAlert]
}

// NewFatigueAlertService tạo mới FatigueAlertService
func NewFatigueAlertService() (*FatigueAlertService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.CreativeFatigueAlerts)
	if !exist {
		return nil, fmt.Errorf("failed to get creative_fatigue_alerts collection: %v", common.ErrNotFound)
	}

	return &FatigueAlertService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CreativeFatigueAlert](collection),
	}, nil
}

// FindByCreative trả về các alert của một creative
func (s *FatigueAlertService) FindByCreative(ctx context.Context, creativeID primitive.ObjectID) ([]models.CreativeFatigueAlert, error) {
	return s.Find(ctx, bson.M{"creativeId": creativeID}, nil)
}
