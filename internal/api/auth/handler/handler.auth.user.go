// Package authhdl - handler của domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "precise_platform/internal/api/auth/dto"
	models "precise_platform/internal/api/auth/models"
	authsvc "precise_platform/internal/api/auth/service"
	basehdl "precise_platform/internal/api/base/handler"
)

// UserHandler xử lý các request quản lý người dùng
type UserHandler struct {
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		userService: userService,
	}, nil
}

// HandleFindByEmail tra cứu người dùng theo email
func (h *UserHandler) HandleFindByEmail(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserFindByEmailInput
		if err := basehdl.ParseRequestQuery(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneByEmail(c.Context(), input.Email)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleFindById lấy thông tin người dùng theo ID
func (h *UserHandler) HandleFindById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleCreate tạo mới người dùng (find-or-create theo email)
func (h *UserHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOrCreateByEmail(c.Context(), models.User{
			Email:               input.Email,
			Name:                input.Name,
			Role:                input.Role,
			Company:             input.Company,
			OnboardingCompleted: input.OnboardingCompleted,
		})
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdate cập nhật thông tin hồ sơ người dùng (tên, công ty, trạng thái
// onboarding). Email và role không đổi được qua endpoint này.
func (h *UserHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateById(c.Context(), id, input)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}
