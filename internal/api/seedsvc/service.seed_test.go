package seedsvc

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "precise_platform/internal/api/auth/models"
	campaignmodels "precise_platform/internal/api/campaign/models"
	creativemodels "precise_platform/internal/api/creative/models"
	insightmodels "precise_platform/internal/api/insight/models"
	marketplacemodels "precise_platform/internal/api/marketplace/models"
)

// fakeStore là store giả trong bộ nhớ để test các bước seed không cần MongoDB
type fakeStore struct {
	users           []authmodels.User
	campaigns       []campaignmodels.Campaign
	history         []campaignmodels.CampaignHistory
	creatives       []creativemodels.Creative
	alerts          []creativemodels.CreativeFatigueAlert
	predictions     []insightmodels.CACPrediction
	dspPerformance  []campaignmodels.DSPPerformance
	assets          []marketplacemodels.DataAsset
	attributions    []marketplacemodels.Attribution
	earnings        []marketplacemodels.Earning
	health          []campaignmodels.CampaignHealth
	recommendations []insightmodels.Recommendation

	userInserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) FindOrCreateUser(ctx context.Context, attrs authmodels.User) (authmodels.User, error) {
	for _, u := range f.users {
		if u.Email == attrs.Email {
			return u, nil
		}
	}
	attrs.ID = primitive.NewObjectID()
	f.users = append(f.users, attrs)
	f.userInserts++
	return attrs, nil
}

func (f *fakeStore) InsertCampaign(ctx context.Context, data campaignmodels.Campaign) (campaignmodels.Campaign, error) {
	data.ID = primitive.NewObjectID()
	f.campaigns = append(f.campaigns, data)
	return data, nil
}

func (f *fakeStore) InsertCampaignHistories(ctx context.Context, data []campaignmodels.CampaignHistory) ([]campaignmodels.CampaignHistory, error) {
	inserted := make([]campaignmodels.CampaignHistory, 0, len(data))
	for _, h := range data {
		h.ID = primitive.NewObjectID()
		f.history = append(f.history, h)
		inserted = append(inserted, h)
	}
	return inserted, nil
}

func (f *fakeStore) InsertCreative(ctx context.Context, data creativemodels.Creative) (creativemodels.Creative, error) {
	data.ID = primitive.NewObjectID()
	f.creatives = append(f.creatives, data)
	return data, nil
}

func (f *fakeStore) InsertFatigueAlert(ctx context.Context, data creativemodels.CreativeFatigueAlert) (creativemodels.CreativeFatigueAlert, error) {
	data.ID = primitive.NewObjectID()
	f.alerts = append(f.alerts, data)
	return data, nil
}

func (f *fakeStore) InsertCACPrediction(ctx context.Context, data insightmodels.CACPrediction) (insightmodels.CACPrediction, error) {
	data.ID = primitive.NewObjectID()
	f.predictions = append(f.predictions, data)
	return data, nil
}

func (f *fakeStore) InsertDSPPerformance(ctx context.Context, data campaignmodels.DSPPerformance) (campaignmodels.DSPPerformance, error) {
	data.ID = primitive.NewObjectID()
	f.dspPerformance = append(f.dspPerformance, data)
	return data, nil
}

func (f *fakeStore) InsertDataAsset(ctx context.Context, data marketplacemodels.DataAsset) (marketplacemodels.DataAsset, error) {
	data.ID = primitive.NewObjectID()
	f.assets = append(f.assets, data)
	return data, nil
}

func (f *fakeStore) InsertAttribution(ctx context.Context, data marketplacemodels.Attribution) (marketplacemodels.Attribution, error) {
	data.ID = primitive.NewObjectID()
	f.attributions = append(f.attributions, data)
	return data, nil
}

func (f *fakeStore) InsertEarning(ctx context.Context, data marketplacemodels.Earning) (marketplacemodels.Earning, error) {
	data.ID = primitive.NewObjectID()
	f.earnings = append(f.earnings, data)
	return data, nil
}

func (f *fakeStore) InsertCampaignHealth(ctx context.Context, data campaignmodels.CampaignHealth) (campaignmodels.CampaignHealth, error) {
	data.ID = primitive.NewObjectID()
	f.health = append(f.health, data)
	return data, nil
}

func (f *fakeStore) InsertRecommendation(ctx context.Context, data insightmodels.Recommendation) (insightmodels.Recommendation, error) {
	data.ID = primitive.NewObjectID()
	f.recommendations = append(f.recommendations, data)
	return data, nil
}

func (f *fakeStore) PurgeDemoData(ctx context.Context) (int64, error) {
	total := int64(len(f.users) + len(f.campaigns) + len(f.history) + len(f.creatives) +
		len(f.alerts) + len(f.predictions) + len(f.dspPerformance) + len(f.assets) +
		len(f.attributions) + len(f.earnings) + len(f.health) + len(f.recommendations))

	f.users = nil
	f.campaigns = nil
	f.history = nil
	f.creatives = nil
	f.alerts = nil
	f.predictions = nil
	f.dspPerformance = nil
	f.assets = nil
	f.attributions = nil
	f.earnings = nil
	f.health = nil
	f.recommendations = nil
	return total, nil
}

// Mốc thời gian cố định cho test: 2025-01-01T00:00:00Z
const fixedNowMillis = int64(1735689600000)

func fixedNow() time.Time {
	return time.UnixMilli(fixedNowMillis)
}

func newTestService(store Store) *SeedService {
	return NewSeedService(store, fixedNow, rand.New(rand.NewSource(42)))
}

func TestResolveUserIdempotent(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	first, err := service.ResolveUser(ctx, demoBuyer)
	require.NoError(t, err)
	second, err := service.ResolveUser(ctx, demoBuyer)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.userInserts)
	assert.Equal(t, "luigi@demo.com", first.Email)
	assert.Equal(t, authmodels.RoleMediaBuyer, first.Role)
}

func TestRunEndToEndCounts(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	result, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Professional Sports Team campaign data migrated successfully", result.Message)

	assert.Len(t, store.users, 2)
	assert.Len(t, store.campaigns, 5) // 1 flagship + 4 campaign phụ
	assert.Len(t, store.history, 7)
	assert.Len(t, store.creatives, 2)
	assert.Len(t, store.alerts, 1)
	assert.Len(t, store.predictions, 1)
	assert.Len(t, store.dspPerformance, 4)
	assert.Len(t, store.assets, 3)
	assert.Len(t, store.attributions, 3)
	assert.Len(t, store.earnings, 3)
	assert.Len(t, store.health, 1)
	assert.Len(t, store.recommendations, 2)

	require.Len(t, store.predictions[0].Predictions, 4)

	// Summary trả về đúng ID của campaign flagship
	flagship := store.campaigns[0]
	assert.Equal(t, flagshipCampaignName, flagship.Name)
	assert.Equal(t, flagship.ID.Hex(), result.Campaign)
	assert.Equal(t, store.users[0].ID.Hex(), result.Users.BuyerID)
	assert.Equal(t, store.users[1].ID.Hex(), result.Users.OwnerID)
}

func TestRunTwiceOnlyUsersAreIdempotent(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	_, err := service.Run(ctx)
	require.NoError(t, err)
	_, err = service.Run(ctx)
	require.NoError(t, err)

	// Ranh giới idempotency chỉ nằm ở bước resolve người dùng
	assert.Len(t, store.users, 2)
	assert.Len(t, store.campaigns, 10)
	assert.Len(t, store.history, 14)
	assert.Len(t, store.assets, 6)
}

func TestHistoryContinuity(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	flagship := store.campaigns[0]
	require.Len(t, store.history, 7)

	// Chuỗi history tăng ngặt theo date, điểm cuối khớp currentCAC của campaign
	for i := 1; i < len(store.history); i++ {
		assert.Greater(t, store.history[i].Date, store.history[i-1].Date)
	}
	last := store.history[len(store.history)-1]
	assert.Equal(t, fixedNowMillis, last.Date)
	assert.Equal(t, flagship.CurrentCAC, last.CAC)

	for _, h := range store.history {
		assert.Equal(t, flagship.ID, h.CampaignID)
	}
}

func TestConfidenceBandsAndFactorSigns(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	prediction := store.predictions[0]
	for _, p := range prediction.Predictions {
		assert.LessOrEqual(t, p.ConfidenceLow, p.PredictedCAC, "tuần %d", p.Week)
		assert.LessOrEqual(t, p.PredictedCAC, p.ConfidenceHigh, "tuần %d", p.Week)
		for _, f := range p.Factors {
			if f.Impact > 0 {
				assert.Equal(t, insightmodels.FactorDirectionPositive, f.Direction, "factor %s", f.Name)
			} else {
				assert.Equal(t, insightmodels.FactorDirectionNegative, f.Direction, "factor %s", f.Name)
			}
		}
	}
	assert.Equal(t, 5.36, prediction.CurrentCAC)
	assert.Equal(t, 87.5, prediction.ModelAccuracy)
}

func TestValidatePredictionsRejectsBadData(t *testing.T) {
	badBand := []insightmodels.WeeklyPrediction{
		{Week: 1, PredictedCAC: 9.0, ConfidenceLow: 6.0, ConfidenceHigh: 8.0},
	}
	assert.Error(t, validatePredictions(badBand))

	badSign := []insightmodels.WeeklyPrediction{
		{
			Week: 1, PredictedCAC: 7.0, ConfidenceLow: 6.0, ConfidenceHigh: 8.0,
			Factors: []insightmodels.PredictionFactor{
				{Name: "Creative Fatigue", Impact: -15, Direction: insightmodels.FactorDirectionPositive},
			},
		},
	}
	assert.Error(t, validatePredictions(badSign))

	assert.NoError(t, validatePredictions(flagshipPredictions))
}

func TestFatigueAlertGating(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	// Creative fatigue 62 vượt ngưỡng warning, creative fatigue 28 thì không
	require.Len(t, store.alerts, 1)
	alert := store.alerts[0]
	assert.Equal(t, store.creatives[0].ID, alert.CreativeID)
	assert.Equal(t, 62, store.creatives[0].FatigueScore)
	assert.Equal(t, creativemodels.FatigueSeverityWarning, alert.Severity)
	assert.Equal(t, fixedNowMillis-2*dayMillis, alert.CreatedAt)
}

func TestFatigueAlertCriticalSeverity(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	creative := creativemodels.Creative{
		ID:           primitive.NewObjectID(),
		CampaignID:   primitive.NewObjectID(),
		BuyerID:      primitive.NewObjectID(),
		FatigueScore: creativemodels.FatigueCriticalThreshold,
	}
	require.NoError(t, service.MaybeCreateFatigueAlert(ctx, creative, fixedNowMillis))

	require.Len(t, store.alerts, 1)
	assert.Equal(t, creativemodels.FatigueSeverityCritical, store.alerts[0].Severity)

	// Dưới ngưỡng warning thì không tạo alert
	calm := creative
	calm.FatigueScore = creativemodels.FatigueWarningThreshold - 1
	require.NoError(t, service.MaybeCreateFatigueAlert(ctx, calm, fixedNowMillis))
	assert.Len(t, store.alerts, 1)
}

func TestReferentialClosure(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	buyer := store.users[0]
	owner := store.users[1]
	flagship := store.campaigns[0]

	assetIDs := map[primitive.ObjectID]bool{}
	for _, a := range store.assets {
		assert.Equal(t, owner.ID, a.OwnerID)
		assetIDs[a.ID] = true
	}

	for _, c := range store.campaigns {
		assert.Equal(t, buyer.ID, c.BuyerID)
	}
	for _, cr := range store.creatives {
		assert.Equal(t, flagship.ID, cr.CampaignID)
		assert.Equal(t, buyer.ID, cr.BuyerID)
	}
	for _, a := range store.alerts {
		assert.Equal(t, flagship.ID, a.CampaignID)
	}
	for _, p := range store.dspPerformance {
		assert.Equal(t, flagship.ID, p.CampaignID)
	}
	for _, attr := range store.attributions {
		assert.Equal(t, flagship.ID, attr.CampaignID)
		assert.True(t, assetIDs[attr.DataSourceID], "attribution tham chiếu asset không tồn tại")
	}
	for _, e := range store.earnings {
		assert.Equal(t, owner.ID, e.OwnerID)
		assert.True(t, assetIDs[e.AssetID], "earning tham chiếu asset không tồn tại")
	}
	for _, h := range store.health {
		assert.Equal(t, flagship.ID, h.CampaignID)
		assert.Equal(t, buyer.ID, h.BuyerID)
	}
	assert.Equal(t, buyer.ID, store.recommendations[0].UserID)
	assert.Equal(t, owner.ID, store.recommendations[1].UserID)
}

func TestAuxiliaryCampaignRandomRanges(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	buyer, err := service.ResolveUser(ctx, demoBuyer)
	require.NoError(t, err)

	created, err := service.CreateAuxiliaryCampaigns(ctx, buyer.ID, fixedNowMillis)
	require.NoError(t, err)
	require.Len(t, created, 4)

	for _, c := range created {
		assert.GreaterOrEqual(t, c.CurrentCAC, 5.0)
		assert.Less(t, c.CurrentCAC, 10.0)
		assert.GreaterOrEqual(t, c.PreviousCAC, 8.0)
		assert.Less(t, c.PreviousCAC, 13.0)
		assert.GreaterOrEqual(t, c.ROAS, 20.0)
		assert.Less(t, c.ROAS, 30.0)
		assert.GreaterOrEqual(t, c.Revenue, c.Spend*20)
		assert.Less(t, c.Revenue, c.Spend*30)
		assert.Equal(t, 6.0, c.TargetCAC)
		assert.Equal(t, 120.0, c.LTV)

		// createdAt nằm trong 90 ngày gần nhất
		assert.LessOrEqual(t, c.CreatedAt, fixedNowMillis)
		assert.Greater(t, c.CreatedAt, fixedNowMillis-90*dayMillis)
	}

	assert.Equal(t, "Spring Training Promo", created[0].Name)
	assert.Equal(t, campaignmodels.CampaignStatusCompleted, created[3].Status)
}

func TestChannelPerformanceECPMTrendRange(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	campaignID := primitive.NewObjectID()
	require.NoError(t, service.WriteChannelPerformance(ctx, campaignID, fixedNowMillis))

	require.Len(t, store.dspPerformance, 4)
	for _, p := range store.dspPerformance {
		assert.GreaterOrEqual(t, p.ECPMTrend, -5.0)
		assert.Less(t, p.ECPMTrend, 5.0)
		assert.Equal(t, fixedNowMillis, p.Timestamp)
	}
	assert.Equal(t, "DV360", store.dspPerformance[0].DSP)
	assert.Equal(t, campaignmodels.DSPStatusSaturated, store.dspPerformance[3].Status)
}

func TestEarningsReferenceCampaignByName(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	for _, e := range store.earnings {
		assert.Equal(t, flagshipCampaignName, e.Campaign)
		assert.Equal(t, marketplacemodels.EarningStatusPending, e.Status)
		assert.Equal(t, fixedNowMillis, e.Timestamp)
	}
	assert.Equal(t, 560.0, store.earnings[0].Amount)
	assert.Equal(t, int64(234000), store.earnings[0].Impressions)
}

func TestDataAssetsBackdatedCreation(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	ownerID := primitive.NewObjectID()
	assets, err := service.CreateDataAssets(ctx, ownerID, fixedNowMillis)
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, fixedNowMillis-180*dayMillis, assets[0].CreatedAt)
	assert.Equal(t, fixedNowMillis-120*dayMillis, assets[1].CreatedAt)
	assert.Equal(t, fixedNowMillis-90*dayMillis, assets[2].CreatedAt)

	assert.Equal(t, "Identity Resolution - Sports Fans", assets[0].Name)
	assert.Equal(t, int64(2500000), assets[0].RecordCount)
	assert.Equal(t, 92, assets[0].QualityScore)
}

func TestRunStampsTimestampsFromRunStart(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	// Mọi bản ghi không backdate đều có createdAt/updatedAt đúng bằng mốc
	// bắt đầu run, dù các bước ghi diễn ra tuần tự
	for _, u := range store.users {
		assert.Equal(t, fixedNowMillis, u.CreatedAt)
		assert.Equal(t, fixedNowMillis, u.UpdatedAt)
	}

	flagship := store.campaigns[0]
	assert.Equal(t, fixedNowMillis, flagship.CreatedAt)
	assert.Equal(t, fixedNowMillis, flagship.UpdatedAt)
	for _, c := range store.campaigns[1:] {
		assert.Equal(t, fixedNowMillis, c.UpdatedAt)
	}

	for _, h := range store.history {
		assert.Equal(t, fixedNowMillis, h.CreatedAt)
		assert.Equal(t, fixedNowMillis, h.UpdatedAt)
	}

	// Creative và asset giữ createdAt backdate, updatedAt vẫn theo mốc run
	for i, cr := range store.creatives {
		assert.Equal(t, fixedNowMillis-int64(flagshipCreatives[i].DaysActive)*dayMillis, cr.CreatedAt)
		assert.Equal(t, fixedNowMillis, cr.UpdatedAt)
	}
	for _, a := range store.assets {
		assert.Less(t, a.CreatedAt, fixedNowMillis)
		assert.Equal(t, fixedNowMillis, a.UpdatedAt)
	}

	assert.Equal(t, fixedNowMillis, store.alerts[0].UpdatedAt)
	assert.Equal(t, fixedNowMillis, store.predictions[0].CreatedAt)
	assert.Equal(t, fixedNowMillis, store.predictions[0].UpdatedAt)
	for _, p := range store.dspPerformance {
		assert.Equal(t, fixedNowMillis, p.CreatedAt)
	}
	for _, attr := range store.attributions {
		assert.Equal(t, fixedNowMillis, attr.CreatedAt)
	}
	for _, e := range store.earnings {
		assert.Equal(t, fixedNowMillis, e.CreatedAt)
	}
	assert.Equal(t, fixedNowMillis, store.health[0].CreatedAt)
	for _, rec := range store.recommendations {
		assert.Equal(t, fixedNowMillis, rec.CreatedAt)
		assert.Equal(t, fixedNowMillis, rec.UpdatedAt)
	}
}

func TestConcurrentRunsAreSerialized(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	// Hai run song song phải được tuần tự hóa, nguồn ngẫu nhiên dùng chung
	// không an toàn khi truy cập đồng thời
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Run(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.users, 2)
	assert.Len(t, store.campaigns, 10)
	assert.Len(t, store.history, 14)
	assert.Len(t, store.recommendations, 4)
}

func TestResetPurgesSeededData(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)
	ctx := context.Background()

	_, err := service.Run(ctx)
	require.NoError(t, err)

	result, err := service.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	// 2 users + 5 campaigns + 7 history + 2 creatives + 1 alert + 1 prediction
	// + 4 dsp + 3 assets + 3 attributions + 3 earnings + 1 health + 2 recommendations
	assert.Equal(t, int64(34), result.DeletedCount)

	assert.Empty(t, store.campaigns)
	assert.Empty(t, store.users)
	assert.Empty(t, store.earnings)

	// Sau reset, seed lại cho đúng bộ dữ liệu ban đầu
	_, err = service.Run(ctx)
	require.NoError(t, err)
	assert.Len(t, store.users, 2)
	assert.Len(t, store.campaigns, 5)
}

func TestCampaignHealthContents(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store)

	_, err := service.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.health, 1)
	health := store.health[0]
	assert.Equal(t, 82, health.HealthScore)
	assert.Equal(t, -46.0, health.Metrics.CACTrend)
	require.Len(t, health.Alerts, 2)
	assert.Equal(t, "creative_fatigue", health.Alerts[0].Type)
	assert.Equal(t, "info", health.Alerts[1].Severity)
}
