package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"precise_platform/config"
	"precise_platform/internal/global"
)

func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.ColNames.Users,
		global.ColNames.Campaigns,
		global.ColNames.CampaignHistory,
		global.ColNames.Creatives,
		global.ColNames.CreativeFatigueAlerts,
		global.ColNames.CACPredictions,
		global.ColNames.DSPPerformance,
		global.ColNames.CampaignHealth,
		global.ColNames.DataAssets,
		global.ColNames.Attributions,
		global.ColNames.Earnings,
		global.ColNames.Recommendations,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
