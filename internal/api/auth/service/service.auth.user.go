// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	models "precise_platform/internal/api/auth/models"
	basesvc "precise_platform/internal/api/base/service"
	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// FindOneByEmail tìm người dùng theo email chính xác
func (s *UserService) FindOneByEmail(ctx context.Context, email string) (models.User, error) {
	return s.FindOne(ctx, bson.M{"email": email}, nil)
}

// FindOrCreateByEmail tra cứu người dùng theo email, nếu chưa có thì tạo mới với
// các thuộc tính được cung cấp. Idempotent theo email qua các lần gọi lặp lại.
// Lưu ý: lookup-then-insert không nằm trong transaction nên không an toàn khi
// chạy đồng thời, chỉ dùng cho luồng admin đơn lẻ.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, attrs models.User) (models.User, error) {
	existing, err := s.FindOneByEmail(ctx, attrs.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.User{}, err
	}

	return s.InsertOne(ctx, attrs)
}
