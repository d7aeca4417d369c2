package main

import (
	"context"

	"precise_platform/internal/api/seedsvc"
	"precise_platform/internal/global"
	"precise_platform/internal/logger"
)

// InitDemoData chạy demo dataset seeder khi SEED_DEMO_DATA được bật.
// Seeder idempotent theo email người dùng nhưng các entity khác sẽ bị nhân đôi
// nếu chạy lại, nên chỉ bật flag này cho môi trường demo/development.
func InitDemoData() {
	if !global.ServerConfig.SeedDemoData {
		return
	}

	log := logger.GetAppLogger()
	log.Info("SEED_DEMO_DATA enabled, running demo dataset seeder...")

	store, err := seedsvc.NewMongoStore()
	if err != nil {
		log.Fatalf("Failed to create seed store: %v", err)
	}

	seedService := seedsvc.NewSeedService(store, nil, nil)
	result, err := seedService.Run(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo dataset: %v", err)
	}

	log.WithFields(map[string]interface{}{
		"buyer":    result.Users.BuyerID,
		"owner":    result.Users.OwnerID,
		"campaign": result.Campaign,
	}).Info("Demo dataset seeded successfully")
}
