package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attribution ghi nhận phần giá trị của campaign được quy cho một data asset.
// Các percentage trên cùng một campaign không bắt buộc cộng lại bằng 100.
type Attribution struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID   primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	DataSourceID primitive.ObjectID `json:"dataSourceId" bson:"dataSourceId" index:"single:1"`
	CACReduction float64            `json:"cacReduction" bson:"cacReduction"`
	Percentage   float64            `json:"percentage" bson:"percentage"`
	Value        float64            `json:"value" bson:"value"`
	Timestamp    int64              `json:"timestamp" bson:"timestamp"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
