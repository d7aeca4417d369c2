package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignHistory lưu một snapshot lịch sử của campaign tại một thời điểm.
// Chuỗi history được sắp xếp tăng dần theo Date, điểm cuối cùng (daysAgo = 0)
// phải khớp với currentCAC/spend hiện tại của campaign để chart liền mạch.
type CampaignHistory struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CampaignID  primitive.ObjectID `json:"campaignId" bson:"campaignId" index:"single:1"`
	Date        int64              `json:"date" bson:"date" index:"single:1"`
	CAC         float64            `json:"cac" bson:"cac"`
	Spend       float64            `json:"spend" bson:"spend"`
	Conversions int64              `json:"conversions" bson:"conversions"`
	Revenue     float64            `json:"revenue" bson:"revenue"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
