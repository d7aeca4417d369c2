package seedsvc

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "precise_platform/internal/api/auth/models"
	campaignmodels "precise_platform/internal/api/campaign/models"
	creativemodels "precise_platform/internal/api/creative/models"
	insightmodels "precise_platform/internal/api/insight/models"
	marketplacemodels "precise_platform/internal/api/marketplace/models"
	"precise_platform/internal/common"
)

const dayMillis = int64(24 * 60 * 60 * 1000)

// SeedService điều phối việc seed bộ dữ liệu demo theo trình tự tuần tự.
// Mỗi bước ghi có thể tham chiếu ID do các bước trước sinh ra, các bước sau
// không bao giờ quay lại sửa bản ghi đã ghi. Không có retry hay rollback,
// nếu một bước lỗi thì các bản ghi trước đó vẫn nằm lại trong store.
type SeedService struct {
	store Store
	now   func() time.Time
	rng   *rand.Rand

	// rand.Rand không an toàn khi dùng đồng thời, mutex tuần tự hóa các lần Run
	mu sync.Mutex
}

// NewSeedService tạo mới SeedService.
// now và rng có thể nil, khi đó dùng đồng hồ hệ thống và nguồn ngẫu nhiên
// seed theo thời gian. Test truyền now cố định và rng seed sẵn để khẳng định
// output chính xác.
func NewSeedService(store Store, now func() time.Time, rng *rand.Rand) *SeedService {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SeedService{
		store: store,
		now:   now,
		rng:   rng,
	}
}

// SeedUserIDs chứa ID của hai người dùng demo sau khi resolve
type SeedUserIDs struct {
	BuyerID string `json:"buyerId"`
	OwnerID string `json:"ownerId"`
}

// SeedResult là kết quả trả về khi seed hoàn tất toàn bộ trình tự
type SeedResult struct {
	Success  bool        `json:"success"`
	Users    SeedUserIDs `json:"users"`
	Campaign string      `json:"campaign"`
	Message  string      `json:"message"`
}

// ResolveUser tra cứu hoặc tạo mới một người dùng demo theo email.
// Idempotent qua các lần chạy lặp lại, đây là ranh giới idempotency duy nhất
// của cả trình tự seed.
func (s *SeedService) ResolveUser(ctx context.Context, attrs authmodels.User) (authmodels.User, error) {
	return s.store.FindOrCreateUser(ctx, attrs)
}

// CreateFlagshipCampaign tạo campaign flagship với số liệu literal đầy đủ
func (s *SeedService) CreateFlagshipCampaign(ctx context.Context, buyerID primitive.ObjectID, runStartedAt int64) (campaignmodels.Campaign, error) {
	data := flagshipCampaign
	data.BuyerID = buyerID
	data.CreatedAt = runStartedAt
	data.UpdatedAt = runStartedAt
	return s.store.InsertCampaign(ctx, data)
}

// CreateAuxiliaryCampaigns tạo các campaign phụ trong portfolio của buyer.
// Các chỉ số CAC/ROAS/revenue và createdAt được sinh ngẫu nhiên trong khoảng
// hợp lý, không có entity downstream nào được tạo cho các campaign này.
func (s *SeedService) CreateAuxiliaryCampaigns(ctx context.Context, buyerID primitive.ObjectID, runStartedAt int64) ([]campaignmodels.Campaign, error) {
	created := make([]campaignmodels.Campaign, 0, len(auxCampaigns))
	for _, tpl := range auxCampaigns {
		campaign := campaignmodels.Campaign{
			BuyerID:     buyerID,
			Name:        tpl.Name,
			Status:      tpl.Status,
			CurrentCAC:  s.rng.Float64()*5 + 5,
			PreviousCAC: s.rng.Float64()*5 + 8,
			TargetCAC:   6.0,
			LTV:         120,
			Spend:       tpl.Spend,
			Revenue:     tpl.Spend * (s.rng.Float64()*10 + 20),
			ROAS:        s.rng.Float64()*10 + 20,
			DSPs:        []string{"DV360", "The Trade Desk"},
			CreatedAt:   runStartedAt - int64(s.rng.Float64()*90*float64(dayMillis)),
			UpdatedAt:   runStartedAt,
		}
		inserted, err := s.store.InsertCampaign(ctx, campaign)
		if err != nil {
			return nil, err
		}
		created = append(created, inserted)
	}
	return created, nil
}

// WriteHistory ghi chuỗi snapshot lịch sử của campaign flagship.
// Mỗi điểm cách nhau theo daysAgo tính từ runStartedAt, điểm cuối (daysAgo = 0)
// khớp với currentCAC hiện tại của campaign.
func (s *SeedService) WriteHistory(ctx context.Context, campaignID primitive.ObjectID, runStartedAt int64) error {
	histories := make([]campaignmodels.CampaignHistory, 0, len(flagshipHistory))
	for _, point := range flagshipHistory {
		histories = append(histories, campaignmodels.CampaignHistory{
			CampaignID:  campaignID,
			Date:        runStartedAt - int64(point.DaysAgo)*dayMillis,
			CAC:         point.CAC,
			Spend:       point.Spend,
			Conversions: point.Conversions,
			Revenue:     point.Revenue,
			CreatedAt:   runStartedAt,
			UpdatedAt:   runStartedAt,
		})
	}
	if _, err := s.store.InsertCampaignHistories(ctx, histories); err != nil {
		return err
	}
	return nil
}

// CreateCreatives tạo các creative của campaign flagship, backdate createdAt
// theo số ngày đã chạy. Sau mỗi creative, kiểm tra ngưỡng fatigue để phát
// sinh alert nếu cần.
func (s *SeedService) CreateCreatives(ctx context.Context, campaignID, buyerID primitive.ObjectID, runStartedAt int64) ([]creativemodels.Creative, error) {
	created := make([]creativemodels.Creative, 0, len(flagshipCreatives))
	for _, tpl := range flagshipCreatives {
		creative := creativemodels.Creative{
			CampaignID:   campaignID,
			BuyerID:      buyerID,
			Name:         tpl.Name,
			Type:         tpl.Type,
			Format:       tpl.Format,
			Impressions:  tpl.Impressions,
			Clicks:       tpl.Clicks,
			Conversions:  tpl.Conversions,
			Spend:        tpl.Spend,
			CTR:          tpl.CTR,
			CVR:          tpl.CVR,
			CPA:          tpl.CPA,
			FatigueScore: tpl.FatigueScore,
			DaysActive:   tpl.DaysActive,
			Status:       "active",
			CreatedAt:    runStartedAt - int64(tpl.DaysActive)*dayMillis,
			UpdatedAt:    runStartedAt,
		}
		inserted, err := s.store.InsertCreative(ctx, creative)
		if err != nil {
			return nil, err
		}
		created = append(created, inserted)

		if err := s.MaybeCreateFatigueAlert(ctx, inserted, runStartedAt); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// MaybeCreateFatigueAlert phát sinh alert khi fatigue score của creative đạt
// ngưỡng cảnh báo. Severity nâng lên critical khi đạt ngưỡng critical.
func (s *SeedService) MaybeCreateFatigueAlert(ctx context.Context, creative creativemodels.Creative, runStartedAt int64) error {
	if creative.FatigueScore < creativemodels.FatigueWarningThreshold {
		return nil
	}

	severity := creativemodels.FatigueSeverityWarning
	if creative.FatigueScore >= creativemodels.FatigueCriticalThreshold {
		severity = creativemodels.FatigueSeverityCritical
	}

	alert := creativemodels.CreativeFatigueAlert{
		CreativeID:        creative.ID,
		CampaignID:        creative.CampaignID,
		BuyerID:           creative.BuyerID,
		Severity:          severity,
		CTRDrop:           demoFatigueAlert.CTRDrop,
		CVRDrop:           demoFatigueAlert.CVRDrop,
		RecommendedAction: demoFatigueAlert.RecommendedAction,
		Impact:            demoFatigueAlert.Impact,
		Status:            "active",
		CreatedAt:         runStartedAt - int64(demoFatigueAlert.DaysAgo)*dayMillis,
		UpdatedAt:         runStartedAt,
	}
	_, err := s.store.InsertFatigueAlert(ctx, alert)
	return err
}

// WriteForecast ghi bản ghi dự báo CAC nhiều tuần cho campaign flagship.
// Trước khi ghi, kiểm tra khoảng tin cậy và dấu của các factor, dữ liệu
// literal sai lệch sẽ bị từ chối thay vì ghi ra store.
func (s *SeedService) WriteForecast(ctx context.Context, campaignID, buyerID primitive.ObjectID, runStartedAt int64) error {
	if err := validatePredictions(flagshipPredictions); err != nil {
		return err
	}

	prediction := insightmodels.CACPrediction{
		CampaignID:    campaignID,
		BuyerID:       buyerID,
		Timestamp:     runStartedAt,
		Predictions:   flagshipPredictions,
		CurrentCAC:    flagshipPredictionCurrentCAC,
		ModelAccuracy: flagshipModelAccuracy,
		CreatedAt:     runStartedAt,
		UpdatedAt:     runStartedAt,
	}
	_, err := s.store.InsertCACPrediction(ctx, prediction)
	return err
}

// validatePredictions kiểm tra các bất biến của chuỗi dự báo:
// confidenceLow <= predictedCAC <= confidenceHigh cho mọi tuần, và direction
// của mỗi factor khớp với dấu của impact.
func validatePredictions(predictions []insightmodels.WeeklyPrediction) error {
	for _, p := range predictions {
		if p.ConfidenceLow > p.PredictedCAC || p.PredictedCAC > p.ConfidenceHigh {
			return common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Khoảng tin cậy tuần %d không hợp lệ: [%.2f, %.2f] không chứa %.2f",
					p.Week, p.ConfidenceLow, p.ConfidenceHigh, p.PredictedCAC),
				common.StatusBadRequest, nil)
		}
		for _, f := range p.Factors {
			expected := insightmodels.FactorDirectionPositive
			if f.Impact < 0 {
				expected = insightmodels.FactorDirectionNegative
			}
			if f.Direction != expected {
				return common.NewError(common.ErrCodeValidationInput,
					fmt.Sprintf("Factor %q tuần %d có direction %q không khớp với impact %.2f",
						f.Name, p.Week, f.Direction, f.Impact),
					common.StatusBadRequest, nil)
			}
		}
	}
	return nil
}

// WriteChannelPerformance ghi snapshot hiệu suất từng kênh DSP của campaign.
// ECPMTrend là trường duy nhất trong cả trình tự được sinh ngẫu nhiên tại
// thời điểm ghi, trong khoảng [-5, +5) phần trăm.
func (s *SeedService) WriteChannelPerformance(ctx context.Context, campaignID primitive.ObjectID, runStartedAt int64) error {
	for _, channel := range flagshipChannels {
		perf := campaignmodels.DSPPerformance{
			CampaignID:  campaignID,
			DSP:         channel.DSP,
			Spend:       channel.Spend,
			CurrentECPM: channel.ECPM,
			ECPMTrend:   s.rng.Float64()*10 - 5,
			ROAS:        channel.ROAS,
			Status:      channel.Status,
			Timestamp:   runStartedAt,
			CreatedAt:   runStartedAt,
			UpdatedAt:   runStartedAt,
		}
		if _, err := s.store.InsertDSPPerformance(ctx, perf); err != nil {
			return err
		}
	}
	return nil
}

// CreateDataAssets tạo các data asset của owner, backdate createdAt để
// giả lập độ trưởng thành của asset. Trả về danh sách asset theo đúng thứ tự
// template để các bước attribution/earnings map theo index.
func (s *SeedService) CreateDataAssets(ctx context.Context, ownerID primitive.ObjectID, runStartedAt int64) ([]marketplacemodels.DataAsset, error) {
	created := make([]marketplacemodels.DataAsset, 0, len(demoDataAssets))
	for _, tpl := range demoDataAssets {
		asset := marketplacemodels.DataAsset{
			OwnerID:         ownerID,
			Name:            tpl.Name,
			Type:            tpl.Type,
			QualityScore:    tpl.QualityScore,
			RecordCount:     tpl.RecordCount,
			UpdateFrequency: tpl.UpdateFrequency,
			RevenuePerK:     tpl.RevenuePerK,
			IndustryAvgPerK: tpl.IndustryAvgPerK,
			UsageRate:       tpl.UsageRate,
			MonthlyRevenue:  tpl.MonthlyRevenue,
			Status:          "active",
			CreatedAt:       runStartedAt - int64(tpl.CreatedAtDaysAgo)*dayMillis,
			UpdatedAt:       runStartedAt,
		}
		inserted, err := s.store.InsertDataAsset(ctx, asset)
		if err != nil {
			return nil, err
		}
		created = append(created, inserted)
	}
	return created, nil
}

// WriteAttributions ghi bản ghi attribution liên kết từng data asset với
// campaign flagship. Các percentage không được chuẩn hóa để cộng lại bằng 100.
func (s *SeedService) WriteAttributions(ctx context.Context, campaignID primitive.ObjectID, assets []marketplacemodels.DataAsset, runStartedAt int64) error {
	if len(assets) != len(demoAttributions) {
		return common.ErrInvalidInput
	}
	for i, share := range demoAttributions {
		attribution := marketplacemodels.Attribution{
			CampaignID:   campaignID,
			DataSourceID: assets[i].ID,
			CACReduction: share.CACReduction,
			Percentage:   share.Percentage,
			Value:        share.Value,
			Timestamp:    runStartedAt,
			CreatedAt:    runStartedAt,
			UpdatedAt:    runStartedAt,
		}
		if _, err := s.store.InsertAttribution(ctx, attribution); err != nil {
			return err
		}
	}
	return nil
}

// WriteEarnings ghi bản ghi payout cho owner, mỗi asset một bản ghi.
// Campaign được tham chiếu theo tên hiển thị thay vì ID.
func (s *SeedService) WriteEarnings(ctx context.Context, ownerID primitive.ObjectID, assets []marketplacemodels.DataAsset, runStartedAt int64) error {
	if len(assets) != len(demoEarnings) {
		return common.ErrInvalidInput
	}
	for i, share := range demoEarnings {
		earning := marketplacemodels.Earning{
			OwnerID:     ownerID,
			AssetID:     assets[i].ID,
			Amount:      share.Amount,
			Campaign:    flagshipCampaignName,
			Impressions: share.Impressions,
			Timestamp:   runStartedAt,
			Status:      marketplacemodels.EarningStatusPending,
			CreatedAt:   runStartedAt,
			UpdatedAt:   runStartedAt,
		}
		if _, err := s.store.InsertEarning(ctx, earning); err != nil {
			return err
		}
	}
	return nil
}

// WriteCampaignHealth ghi bản ghi điểm sức khỏe tổng hợp của campaign flagship
func (s *SeedService) WriteCampaignHealth(ctx context.Context, campaignID, buyerID primitive.ObjectID, runStartedAt int64) error {
	health := campaignmodels.CampaignHealth{
		CampaignID:  campaignID,
		BuyerID:     buyerID,
		HealthScore: flagshipHealth.HealthScore,
		Metrics:     flagshipHealth.Metrics,
		Alerts:      flagshipHealth.Alerts,
		Timestamp:   runStartedAt,
		CreatedAt:   runStartedAt,
		UpdatedAt:   runStartedAt,
	}
	_, err := s.store.InsertCampaignHealth(ctx, health)
	return err
}

// WriteRecommendations ghi một recommendation cho mỗi người dùng demo
func (s *SeedService) WriteRecommendations(ctx context.Context, buyerID, ownerID primitive.ObjectID, runStartedAt int64) error {
	for _, rec := range []struct {
		userID primitive.ObjectID
		tpl    recommendationTemplate
	}{
		{userID: buyerID, tpl: buyerRecommendation},
		{userID: ownerID, tpl: ownerRecommendation},
	} {
		recommendation := insightmodels.Recommendation{
			UserID:          rec.userID,
			Type:            rec.tpl.Type,
			Priority:        rec.tpl.Priority,
			Title:           rec.tpl.Title,
			Description:     rec.tpl.Description,
			EstimatedImpact: rec.tpl.Impact,
			Status:          "new",
			CreatedAt:       runStartedAt,
			UpdatedAt:       runStartedAt,
		}
		if _, err := s.store.InsertRecommendation(ctx, recommendation); err != nil {
			return err
		}
	}
	return nil
}

// Run thực thi toàn bộ trình tự seed theo thứ tự phụ thuộc.
// Mọi timestamp tương đối đều tính từ một mốc runStartedAt duy nhất được
// chụp tại đầu hàm, để cả bộ dữ liệu nhất quán về mặt thời gian.
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runStartedAt := s.now().UnixMilli()
	logrus.Info("Bắt đầu seed bộ dữ liệu demo Professional Sports Team")

	buyerAttrs := demoBuyer
	buyerAttrs.CreatedAt = runStartedAt
	buyerAttrs.UpdatedAt = runStartedAt
	buyer, err := s.ResolveUser(ctx, buyerAttrs)
	if err != nil {
		return nil, err
	}
	ownerAttrs := demoOwner
	ownerAttrs.CreatedAt = runStartedAt
	ownerAttrs.UpdatedAt = runStartedAt
	owner, err := s.ResolveUser(ctx, ownerAttrs)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"buyer": buyer.ID.Hex(),
		"owner": owner.ID.Hex(),
	}).Info("Đã resolve người dùng demo")

	campaign, err := s.CreateFlagshipCampaign(ctx, buyer.ID, runStartedAt)
	if err != nil {
		return nil, err
	}
	logrus.WithField("campaign", campaign.ID.Hex()).Info("Đã tạo campaign flagship")

	if err := s.WriteHistory(ctx, campaign.ID, runStartedAt); err != nil {
		return nil, err
	}
	if _, err := s.CreateCreatives(ctx, campaign.ID, buyer.ID, runStartedAt); err != nil {
		return nil, err
	}
	if err := s.WriteForecast(ctx, campaign.ID, buyer.ID, runStartedAt); err != nil {
		return nil, err
	}
	if err := s.WriteChannelPerformance(ctx, campaign.ID, runStartedAt); err != nil {
		return nil, err
	}

	assets, err := s.CreateDataAssets(ctx, owner.ID, runStartedAt)
	if err != nil {
		return nil, err
	}
	if err := s.WriteAttributions(ctx, campaign.ID, assets, runStartedAt); err != nil {
		return nil, err
	}
	if err := s.WriteEarnings(ctx, owner.ID, assets, runStartedAt); err != nil {
		return nil, err
	}

	if _, err := s.CreateAuxiliaryCampaigns(ctx, buyer.ID, runStartedAt); err != nil {
		return nil, err
	}
	if err := s.WriteCampaignHealth(ctx, campaign.ID, buyer.ID, runStartedAt); err != nil {
		return nil, err
	}
	if err := s.WriteRecommendations(ctx, buyer.ID, owner.ID, runStartedAt); err != nil {
		return nil, err
	}

	logrus.Info("Seed bộ dữ liệu demo hoàn tất")

	return &SeedResult{
		Success: true,
		Users: SeedUserIDs{
			BuyerID: buyer.ID.Hex(),
			OwnerID: owner.ID.Hex(),
		},
		Campaign: campaign.ID.Hex(),
		Message:  "Professional Sports Team campaign data migrated successfully",
	}, nil
}

// ResetResult là kết quả trả về khi xóa dữ liệu demo
type ResetResult struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message"`
}

// Reset xóa toàn bộ dữ liệu demo đã seed, dùng cho endpoint admin reset.
// Sau khi reset, một lần Run mới sẽ tạo lại bộ dữ liệu từ đầu.
func (s *SeedService) Reset(ctx context.Context) (*ResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.store.PurgeDemoData(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithField("deleted", deleted).Info("Đã xóa dữ liệu demo")
	return &ResetResult{
		Success:      true,
		DeletedCount: deleted,
		Message:      "Demo dataset cleared",
	}, nil
}
