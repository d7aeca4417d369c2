package seedsvc

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	basehdl "precise_platform/internal/api/base/handler"
)

// SeedHandler xử lý request admin kích hoạt seed bộ dữ liệu demo
type SeedHandler struct {
	seedService *SeedService
}

// NewSeedHandler tạo instance mới của SeedHandler trên MongoStore
func NewSeedHandler() (*SeedHandler, error) {
	store, err := NewMongoStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create seed store: %v", err)
	}
	return &SeedHandler{
		seedService: NewSeedService(store, nil, nil),
	}, nil
}

// HandleSeedDemo chạy toàn bộ trình tự seed và trả về summary.
// Không có tham số, thao tác admin kích hoạt thủ công một lần.
func (h *SeedHandler) HandleSeedDemo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.seedService.Run(c.Context())
		if err != nil {
			logrus.WithError(err).Error("Seed bộ dữ liệu demo thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleResetDemo xóa toàn bộ dữ liệu demo, cho phép seed lại từ đầu
func (h *SeedHandler) HandleResetDemo(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.seedService.Reset(c.Context())
		if err != nil {
			logrus.WithError(err).Error("Xóa dữ liệu demo thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
