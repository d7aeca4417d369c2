package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mức độ nghiêm trọng của fatigue alert
const (
	FatigueSeverityWarning  = "warning"
	FatigueSeverityCritical = "critical"
)

// CreativeFatigueAlert là cảnh báo được tạo khi fatigue score của creative
// vượt ngưỡng cấu hình. CTRDrop/CVRDrop là phần trăm suy giảm so với baseline.
type CreativeFatigueAlert struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CreativeID        primitive.ObjectID `json:"creativeId" bson:"creativeId" index:"single:1"`
	CampaignID        primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	BuyerID           primitive.ObjectID `json:"buyerId" bson:"buyerId"`
	Severity          string             `json:"severity" bson:"severity"`
	CTRDrop           float64            `json:"ctrDrop" bson:"ctrDrop"`
	CVRDrop           float64            `json:"cvrDrop" bson:"cvrDrop"`
	RecommendedAction string             `json:"recommendedAction" bson:"recommendedAction"`
	Impact            string             `json:"impact" bson:"impact"`
	Status            string             `json:"status" bson:"status"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
