package basehdl

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"precise_platform/internal/common"
	"precise_platform/internal/global"
)

// SystemHandler xử lý các request hệ thống (health check)
type SystemHandler struct {
	startedAt time.Time
}

// NewSystemHandler tạo instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{
		startedAt: time.Now(),
	}, nil
}

// HandleHealth kiểm tra trạng thái server và kết nối MongoDB
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	dbStatus := "ok"
	if err := global.MongoDB_Session.Ping(c.Context(), readpref.Primary()); err != nil {
		dbStatus = "unreachable"
	}

	if dbStatus != "ok" {
		HandleResponse(c, nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Không thể kết nối MongoDB",
			common.StatusServiceUnavailable,
			nil,
		))
		return nil
	}

	HandleResponse(c, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"uptime":   time.Since(h.startedAt).String(),
	}, nil)
	return nil
}
