// Package seedsvc - service khởi tạo bộ dữ liệu demo cho marketplace hai chiều.
package seedsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "precise_platform/internal/api/auth/models"
	authsvc "precise_platform/internal/api/auth/service"
	campaignmodels "precise_platform/internal/api/campaign/models"
	campaignsvc "precise_platform/internal/api/campaign/service"
	creativemodels "precise_platform/internal/api/creative/models"
	creativesvc "precise_platform/internal/api/creative/service"
	insightmodels "precise_platform/internal/api/insight/models"
	insightsvc "precise_platform/internal/api/insight/service"
	marketplacemodels "precise_platform/internal/api/marketplace/models"
	marketplacesvc "precise_platform/internal/api/marketplace/service"
)

// Store là interface thu hẹp mà seeder cần từ tầng lưu trữ.
// Tách interface này để có thể unit test từng bước seed với store giả
// trong bộ nhớ, không cần MongoDB thật.
type Store interface {
	FindOrCreateUser(ctx context.Context, attrs authmodels.User) (authmodels.User, error)
	InsertCampaign(ctx context.Context, data campaignmodels.Campaign) (campaignmodels.Campaign, error)
	InsertCampaignHistories(ctx context.Context, data []campaignmodels.CampaignHistory) ([]campaignmodels.CampaignHistory, error)
	InsertCreative(ctx context.Context, data creativemodels.Creative) (creativemodels.Creative, error)
	InsertFatigueAlert(ctx context.Context, data creativemodels.CreativeFatigueAlert) (creativemodels.CreativeFatigueAlert, error)
	InsertCACPrediction(ctx context.Context, data insightmodels.CACPrediction) (insightmodels.CACPrediction, error)
	InsertDSPPerformance(ctx context.Context, data campaignmodels.DSPPerformance) (campaignmodels.DSPPerformance, error)
	InsertDataAsset(ctx context.Context, data marketplacemodels.DataAsset) (marketplacemodels.DataAsset, error)
	InsertAttribution(ctx context.Context, data marketplacemodels.Attribution) (marketplacemodels.Attribution, error)
	InsertEarning(ctx context.Context, data marketplacemodels.Earning) (marketplacemodels.Earning, error)
	InsertCampaignHealth(ctx context.Context, data campaignmodels.CampaignHealth) (campaignmodels.CampaignHealth, error)
	InsertRecommendation(ctx context.Context, data insightmodels.Recommendation) (insightmodels.Recommendation, error)

	// PurgeDemoData xóa toàn bộ dữ liệu đã seed (mọi collection, kể cả users).
	// Trả về tổng số bản ghi đã xóa.
	PurgeDemoData(ctx context.Context) (int64, error)
}

// MongoStore triển khai Store trên các domain service MongoDB
type MongoStore struct {
	userService           *authsvc.UserService
	campaignService       *campaignsvc.CampaignService
	historyService        *campaignsvc.CampaignHistoryService
	dspService            *campaignsvc.DSPPerformanceService
	healthService         *campaignsvc.CampaignHealthService
	creativeService       *creativesvc.CreativeService
	fatigueAlertService   *creativesvc.FatigueAlertService
	predictionService     *insightsvc.CACPredictionService
	recommendationService *insightsvc.RecommendationService
	dataAssetService      *marketplacesvc.DataAssetService
	attributionService    *marketplacesvc.AttributionService
	earningService        *marketplacesvc.EarningService
}

// NewMongoStore khởi tạo MongoStore từ registry collections toàn cục.
// Gọi sau khi các collection đã được đăng ký vào registry.
func NewMongoStore() (*MongoStore, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	campaignService, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, err
	}
	historyService, err := campaignsvc.NewCampaignHistoryService()
	if err != nil {
		return nil, err
	}
	dspService, err := campaignsvc.NewDSPPerformanceService()
	if err != nil {
		return nil, err
	}
	healthService, err := campaignsvc.NewCampaignHealthService()
	if err != nil {
		return nil, err
	}
	creativeService, err := creativesvc.NewCreativeService()
	if err != nil {
		return nil, err
	}
	fatigueAlertService, err := creativesvc.NewFatigueAlertService()
	if err != nil {
		return nil, err
	}
	predictionService, err := insightsvc.NewCACPredictionService()
	if err != nil {
		return nil, err
	}
	recommendationService, err := insightsvc.NewRecommendationService()
	if err != nil {
		return nil, err
	}
	dataAssetService, err := marketplacesvc.NewDataAssetService()
	if err != nil {
		return nil, err
	}
	attributionService, err := marketplacesvc.NewAttributionService()
	if err != nil {
		return nil, err
	}
	earningService, err := marketplacesvc.NewEarningService()
	if err != nil {
		return nil, err
	}

	return &MongoStore{
		userService:           userService,
		campaignService:       campaignService,
		historyService:        historyService,
		dspService:            dspService,
		healthService:         healthService,
		creativeService:       creativeService,
		fatigueAlertService:   fatigueAlertService,
		predictionService:     predictionService,
		recommendationService: recommendationService,
		dataAssetService:      dataAssetService,
		attributionService:    attributionService,
		earningService:        earningService,
	}, nil
}

func (m *MongoStore) FindOrCreateUser(ctx context.Context, attrs authmodels.User) (authmodels.User, error) {
	return m.userService.FindOrCreateByEmail(ctx, attrs)
}

func (m *MongoStore) InsertCampaign(ctx context.Context, data campaignmodels.Campaign) (campaignmodels.Campaign, error) {
	return m.campaignService.InsertOne(ctx, data)
}

// InsertCampaignHistories ghi cả chuỗi snapshot trong một lần gọi InsertMany
// thay vì từng bản ghi một.
func (m *MongoStore) InsertCampaignHistories(ctx context.Context, data []campaignmodels.CampaignHistory) ([]campaignmodels.CampaignHistory, error) {
	return m.historyService.InsertMany(ctx, data)
}

func (m *MongoStore) InsertCreative(ctx context.Context, data creativemodels.Creative) (creativemodels.Creative, error) {
	return m.creativeService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertFatigueAlert(ctx context.Context, data creativemodels.CreativeFatigueAlert) (creativemodels.CreativeFatigueAlert, error) {
	return m.fatigueAlertService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertCACPrediction(ctx context.Context, data insightmodels.CACPrediction) (insightmodels.CACPrediction, error) {
	return m.predictionService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertDSPPerformance(ctx context.Context, data campaignmodels.DSPPerformance) (campaignmodels.DSPPerformance, error) {
	return m.dspService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertDataAsset(ctx context.Context, data marketplacemodels.DataAsset) (marketplacemodels.DataAsset, error) {
	return m.dataAssetService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertAttribution(ctx context.Context, data marketplacemodels.Attribution) (marketplacemodels.Attribution, error) {
	return m.attributionService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertEarning(ctx context.Context, data marketplacemodels.Earning) (marketplacemodels.Earning, error) {
	return m.earningService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertCampaignHealth(ctx context.Context, data campaignmodels.CampaignHealth) (campaignmodels.CampaignHealth, error) {
	return m.healthService.InsertOne(ctx, data)
}

func (m *MongoStore) InsertRecommendation(ctx context.Context, data insightmodels.Recommendation) (insightmodels.Recommendation, error) {
	return m.recommendationService.InsertOne(ctx, data)
}

// PurgeDemoData xóa sạch dữ liệu demo trên tất cả các collection.
// Chỉ dùng cho môi trường demo/development qua endpoint admin reset.
func (m *MongoStore) PurgeDemoData(ctx context.Context) (int64, error) {
	var total int64
	deleters := []func(context.Context, interface{}) (int64, error){
		m.recommendationService.DeleteMany,
		m.healthService.DeleteMany,
		m.earningService.DeleteMany,
		m.attributionService.DeleteMany,
		m.dataAssetService.DeleteMany,
		m.dspService.DeleteMany,
		m.predictionService.DeleteMany,
		m.fatigueAlertService.DeleteMany,
		m.creativeService.DeleteMany,
		m.historyService.DeleteMany,
		m.campaignService.DeleteMany,
		m.userService.DeleteMany,
	}
	for _, deleteAll := range deleters {
		count, err := deleteAll(ctx, bson.M{})
		if err != nil {
			return total, err
		}
		total += count
	}
	return total, nil
}
