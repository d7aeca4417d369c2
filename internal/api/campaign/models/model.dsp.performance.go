package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái scaling của một DSP trong campaign
const (
	DSPStatusScaling    = "scaling"
	DSPStatusOptimizing = "optimizing"
	DSPStatusSaturated  = "saturated"
)

// DSPPerformance lưu snapshot hiệu suất của một kênh phân phối (DSP) trong campaign
type DSPPerformance struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID  primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	DSP         string             `json:"dsp" bson:"dsp"`
	Spend       float64            `json:"spend" bson:"spend"`
	CurrentECPM float64            `json:"currentECPM" bson:"currentECPM"`
	ECPMTrend   float64            `json:"ecpmTrend" bson:"ecpmTrend"`
	ROAS        float64            `json:"roas" bson:"roas"`
	Status      string             `json:"status" bson:"status"`
	Timestamp   int64              `json:"timestamp" bson:"timestamp"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
