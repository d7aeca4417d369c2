// Package models - các model thuộc domain insight (dự báo và khuyến nghị).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hướng tác động của một factor trong dự báo
const (
	FactorDirectionPositive = "positive"
	FactorDirectionNegative = "negative"
)

// PredictionFactor là một yếu tố đóng góp vào dự báo CAC của một tuần.
// Direction phải khớp với dấu của Impact.
type PredictionFactor struct {
	Name      string  `json:"name" bson:"name"`
	Impact    float64 `json:"impact" bson:"impact"`
	Direction string  `json:"direction" bson:"direction"`
}

// WeeklyPrediction là một điểm dự báo theo tuần với khoảng tin cậy.
// Bất biến: ConfidenceLow <= PredictedCAC <= ConfidenceHigh.
type WeeklyPrediction struct {
	Week           int                `json:"week" bson:"week"`
	PredictedCAC   float64            `json:"predictedCAC" bson:"predictedCAC"`
	ConfidenceLow  float64            `json:"confidenceLow" bson:"confidenceLow"`
	ConfidenceHigh float64            `json:"confidenceHigh" bson:"confidenceHigh"`
	Factors        []PredictionFactor `json:"factors" bson:"factors"`
}

// CACPrediction lưu một bản ghi dự báo CAC nhiều tuần cho campaign
type CACPrediction struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID    primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	BuyerID       primitive.ObjectID `json:"buyerId" bson:"buyerId"`
	Timestamp     int64              `json:"timestamp" bson:"timestamp"`
	Predictions   []WeeklyPrediction `json:"predictions" bson:"predictions"`
	CurrentCAC    float64            `json:"currentCAC" bson:"currentCAC"`
	ModelAccuracy float64            `json:"modelAccuracy" bson:"modelAccuracy"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
