package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái chi trả của một earning
const (
	EarningStatusPending     = "pending"
	EarningStatusDistributed = "distributed"
)

// Earning là bản ghi chi trả cho data owner, mỗi asset một bản ghi.
// Campaign lưu theo tên hiển thị thay vì ID, earnings vẫn giữ nguyên
// giá trị lịch sử kể cả khi campaign bị đổi tên.
type Earning struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId" index:"single:1"`
	AssetID     primitive.ObjectID `json:"assetId" bson:"assetId" index:"single:1"`
	Amount      float64            `json:"amount" bson:"amount"`
	Campaign    string             `json:"campaign" bson:"campaign"`
	Impressions int64              `json:"impressions" bson:"impressions"`
	Timestamp   int64              `json:"timestamp" bson:"timestamp"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
