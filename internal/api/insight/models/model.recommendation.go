package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại impact ước tính của một recommendation
const (
	ImpactTypeCostSavings     = "cost_savings"
	ImpactTypeRevenueIncrease = "revenue_increase"
)

// EstimatedImpact mô tả tác động ước tính khi thực hiện recommendation
type EstimatedImpact struct {
	Type  string  `json:"type" bson:"type"`
	Value float64 `json:"value" bson:"value"`
}

// Recommendation là một khuyến nghị hành động gửi tới người dùng
type Recommendation struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	Type            string             `json:"type" bson:"type"`
	Priority        string             `json:"priority" bson:"priority"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	EstimatedImpact EstimatedImpact    `json:"estimatedImpact" bson:"estimatedImpact"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
