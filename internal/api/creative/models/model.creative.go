// Package models - các model thuộc domain creative.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ngưỡng fatigue score để phát sinh cảnh báo creative
const (
	FatigueWarningThreshold  = 50 // Từ ngưỡng này trở lên tạo alert severity warning
	FatigueCriticalThreshold = 80 // Từ ngưỡng này trở lên alert nâng lên critical
)

// Creative định nghĩa mô hình creative asset của một campaign.
// FatigueScore (0-100) thể hiện mức độ suy giảm engagement theo thời gian,
// được cung cấp sẵn chứ không tính toán lại tại đây.
type Creative struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID   primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	BuyerID      primitive.ObjectID `json:"buyerId" bson:"buyerId"`
	Name         string             `json:"name" bson:"name"`
	Type         string             `json:"type" bson:"type"`
	Format       string             `json:"format" bson:"format"`
	Impressions  int64              `json:"impressions" bson:"impressions"`
	Clicks       int64              `json:"clicks" bson:"clicks"`
	Conversions  int64              `json:"conversions" bson:"conversions"`
	Spend        float64            `json:"spend" bson:"spend"`
	CTR          float64            `json:"ctr" bson:"ctr"`
	CVR          float64            `json:"cvr" bson:"cvr"`
	CPA          float64            `json:"cpa" bson:"cpa"`
	FatigueScore int                `json:"fatigueScore" bson:"fatigueScore"`
	DaysActive   int                `json:"daysActive" bson:"daysActive"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
