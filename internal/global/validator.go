package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("object_id", validateObjectID)
	_ = Validate.RegisterValidation("user_role", validateUserRole)
}

// validateObjectID kiểm tra string có phải là một MongoDB ObjectID hex hợp lệ
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // để required tag quyết định việc bắt buộc
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateUserRole kiểm tra role hợp lệ của người dùng trên platform
func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "MEDIA_BUYER", "DATA_OWNER":
		return true
	}
	return false
}
