// Package models - các model thuộc domain campaign.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của campaign
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign định nghĩa mô hình chiến dịch quảng cáo
// Campaign flagship là điểm join chính, các entity downstream (history, creatives,
// predictions, attributions, health) đều tham chiếu về nó qua CampaignID
type Campaign struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BuyerID     primitive.ObjectID `json:"buyerId" bson:"buyerId" index:"single:1"`
	Name        string             `json:"name" bson:"name" index:"single:1"`
	Status      string             `json:"status" bson:"status" index:"single:1"`
	CurrentCAC  float64            `json:"currentCAC" bson:"currentCAC"`
	PreviousCAC float64            `json:"previousCAC" bson:"previousCAC"`
	TargetCAC   float64            `json:"targetCAC" bson:"targetCAC"`
	LTV         float64            `json:"ltv" bson:"ltv"`
	Spend       float64            `json:"spend" bson:"spend"`
	Revenue     float64            `json:"revenue" bson:"revenue"`
	ROAS        float64            `json:"roas" bson:"roas"`
	DSPs        []string           `json:"dsps" bson:"dsps"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
