// Package models - các model thuộc domain marketplace (data assets, attribution, earnings).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataAsset định nghĩa mô hình tài sản dữ liệu thuộc sở hữu của một data owner.
// RevenuePerK/IndustryAvgPerK tính trên mỗi nghìn bản ghi, UpdateFrequency tính bằng giờ.
type DataAsset struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID         primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	Name            string             `json:"name" bson:"name"`
	Type            string             `json:"type" bson:"type"`
	QualityScore    int                `json:"qualityScore" bson:"qualityScore"`
	RecordCount     int64              `json:"recordCount" bson:"recordCount"`
	UpdateFrequency int                `json:"updateFrequency" bson:"updateFrequency"`
	RevenuePerK     float64            `json:"revenuePerK" bson:"revenuePerK"`
	IndustryAvgPerK float64            `json:"industryAvgPerK" bson:"industryAvgPerK"`
	UsageRate       float64            `json:"usageRate" bson:"usageRate"`
	MonthlyRevenue  float64            `json:"monthlyRevenue" bson:"monthlyRevenue"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
