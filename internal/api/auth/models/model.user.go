// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role người dùng trong marketplace hai chiều
const (
	RoleMediaBuyer = "MEDIA_BUYER" // Người mua media, sở hữu campaigns
	RoleDataOwner  = "DATA_OWNER"  // Chủ sở hữu data assets, nhận earnings
)

// User định nghĩa mô hình người dùng
// Email là khóa tra cứu duy nhất, dùng cho find-or-create khi seed dữ liệu
type User struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email               string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Name                string             `json:"name" bson:"name"`
	Role                string             `json:"role" bson:"role" index:"single:1"`
	Company             string             `json:"company" bson:"company"`
	OnboardingCompleted bool               `json:"onboardingCompleted" bson:"onboardingCompleted"`
	CreatedAt           int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64              `json:"updatedAt" bson:"updatedAt"`
}
