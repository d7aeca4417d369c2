package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"precise_platform/config"
	"precise_platform/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users                string // Tên collection cho người dùng (media buyer / data owner)
	Campaigns            string // Tên collection cho chiến dịch quảng cáo
	CampaignHistory      string // Tên collection cho lịch sử chỉ số chiến dịch theo thời gian
	Creatives            string // Tên collection cho creative assets
	CreativeFatigueAlerts string // Tên collection cho cảnh báo creative fatigue
	CACPredictions       string // Tên collection cho dự báo CAC theo tuần
	DSPPerformance       string // Tên collection cho hiệu suất theo kênh DSP
	CampaignHealth       string // Tên collection cho điểm sức khỏe chiến dịch
	DataAssets           string // Tên collection cho data assets của data owner
	Attributions         string // Tên collection cho bản ghi attribution (asset -> campaign)
	Earnings             string // Tên collection cho payout của data owner
	Recommendations      string // Tên collection cho khuyến nghị tối ưu
}

// Các biến toàn cục
var Validate *validator.Validate           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration     // Cấu hình của server
var ColNames CollectionName = CollectionName{} // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
