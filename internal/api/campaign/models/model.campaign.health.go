package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthMetrics chứa các chỉ số xu hướng của campaign, đơn vị phần trăm
type HealthMetrics struct {
	CTRTrend          float64 `json:"ctrTrend" bson:"ctrTrend"`
	CVRTrend          float64 `json:"cvrTrend" bson:"cvrTrend"`
	CACTrend          float64 `json:"cacTrend" bson:"cacTrend"`
	ROASTrend         float64 `json:"roasTrend" bson:"roasTrend"`
	BudgetUtilization float64 `json:"budgetUtilization" bson:"budgetUtilization"`
	CreativeFreshness float64 `json:"creativeFreshness" bson:"creativeFreshness"`
}

// HealthAlert là một cảnh báo nằm trong bản ghi health của campaign
type HealthAlert struct {
	Type     string `json:"type" bson:"type"`
	Severity string `json:"severity" bson:"severity"`
	Message  string `json:"message" bson:"message"`
}

// CampaignHealth lưu điểm sức khỏe tổng hợp của campaign cùng các cảnh báo kèm theo
type CampaignHealth struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID  primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	BuyerID     primitive.ObjectID `json:"buyerId" bson:"buyerId"`
	HealthScore int                `json:"healthScore" bson:"healthScore"`
	Metrics     HealthMetrics      `json:"metrics" bson:"metrics"`
	Alerts      []HealthAlert      `json:"alerts" bson:"alerts"`
	Timestamp   int64              `json:"timestamp" bson:"timestamp"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
