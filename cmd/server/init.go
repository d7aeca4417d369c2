package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"precise_platform/config"
	authmodels "precise_platform/internal/api/auth/models"
	campaignmodels "precise_platform/internal/api/campaign/models"
	creativemodels "precise_platform/internal/api/creative/models"
	insightmodels "precise_platform/internal/api/insight/models"
	marketplacemodels "precise_platform/internal/api/marketplace/models"
	"precise_platform/internal/database"
	"precise_platform/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Users = "users"
	global.ColNames.Campaigns = "campaigns"
	global.ColNames.CampaignHistory = "campaign_history"
	global.ColNames.Creatives = "creatives"
	global.ColNames.CreativeFatigueAlerts = "creative_fatigue_alerts"
	global.ColNames.CACPredictions = "cac_predictions"
	global.ColNames.DSPPerformance = "dsp_performance"
	global.ColNames.CampaignHealth = "campaign_health"
	global.ColNames.DataAssets = "data_assets"
	global.ColNames.Attributions = "attributions"
	global.ColNames.Earnings = "earnings"
	global.ColNames.Recommendations = "recommendations"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo struct tag của model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Campaigns), campaignmodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CampaignHistory), campaignmodels.CampaignHistory{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Creatives), creativemodels.Creative{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CreativeFatigueAlerts), creativemodels.CreativeFatigueAlert{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CACPredictions), insightmodels.CACPrediction{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.DSPPerformance), campaignmodels.DSPPerformance{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.CampaignHealth), campaignmodels.CampaignHealth{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.DataAssets), marketplacemodels.DataAsset{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Attributions), marketplacemodels.Attribution{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Earnings), marketplacemodels.Earning{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Recommendations), insightmodels.Recommendation{})
}
