// Package authdto - các cấu trúc input/output của domain auth.
package authdto

// UserFindByEmailInput là input tra cứu người dùng theo email
type UserFindByEmailInput struct {
	Email string `query:"email" json:"email" validate:"required,email"`
}

// UserUpdateInput là input cập nhật hồ sơ người dùng.
// Các field đều tùy chọn; bson omitempty để field bỏ trống không ghi đè
// giá trị hiện có khi update.
type UserUpdateInput struct {
	Name                string `json:"name" bson:"name,omitempty"`
	Company             string `json:"company" bson:"company,omitempty"`
	OnboardingCompleted *bool  `json:"onboardingCompleted" bson:"onboardingCompleted,omitempty"`
}

// UserCreateInput là input tạo mới người dùng
type UserCreateInput struct {
	Email               string `json:"email" validate:"required,email"`
	Name                string `json:"name" validate:"required"`
	Role                string `json:"role" validate:"required,user_role"`
	Company             string `json:"company"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}
