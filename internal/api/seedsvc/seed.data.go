package seedsvc

import (
	authmodels "precise_platform/internal/api/auth/models"
	campaignmodels "precise_platform/internal/api/campaign/models"
	insightmodels "precise_platform/internal/api/insight/models"
)

// Bộ dữ liệu demo "Professional Sports Team": hai người dùng, một campaign
// flagship với đầy đủ liên kết downstream, và các campaign phụ ngẫu nhiên hóa.
// Toàn bộ số liệu kinh doanh là literal đã thống nhất trước, seeder chỉ ghi lại
// trung thực chứ không tính toán.

const flagshipCampaignName = "Professional Sports Team 2025"

var demoBuyer = authmodels.User{
	Email:               "luigi@demo.com",
	Name:                "Luigi",
	Role:                authmodels.RoleMediaBuyer,
	Company:             "Professional Sports Team",
	OnboardingCompleted: true,
}

var demoOwner = authmodels.User{
	Email:               "mario@demo.com",
	Name:                "Mario",
	Role:                authmodels.RoleDataOwner,
	Company:             "Audience Acuity",
	OnboardingCompleted: true,
}

var flagshipCampaign = campaignmodels.Campaign{
	Name:        flagshipCampaignName,
	Status:      campaignmodels.CampaignStatusActive,
	CurrentCAC:  5.36,
	PreviousCAC: 10.27,
	TargetCAC:   5.0,
	LTV:         150,
	Spend:       112120,
	Revenue:     3130000,
	ROAS:        28,
	DSPs:        []string{"DV360", "Amazon DSP", "The Trade Desk", "Yahoo DSP"},
}

// historyPoint là một tuple lịch sử, daysAgo giảm dần về 0.
// Điểm cuối (daysAgo = 0) khớp với currentCAC của campaign flagship.
type historyPoint struct {
	DaysAgo     int
	CAC         float64
	Spend       float64
	Conversions int64
	Revenue     float64
}

var flagshipHistory = []historyPoint{
	{DaysAgo: 30, CAC: 10.27, Spend: 10000, Conversions: 973, Revenue: 272440},
	{DaysAgo: 25, CAC: 9.50, Spend: 15000, Conversions: 1579, Revenue: 442120},
	{DaysAgo: 20, CAC: 8.80, Spend: 20000, Conversions: 2273, Revenue: 636440},
	{DaysAgo: 15, CAC: 7.90, Spend: 25000, Conversions: 3165, Revenue: 886200},
	{DaysAgo: 10, CAC: 7.20, Spend: 30000, Conversions: 4167, Revenue: 1166760},
	{DaysAgo: 5, CAC: 6.50, Spend: 35000, Conversions: 5385, Revenue: 1507800},
	{DaysAgo: 0, CAC: 5.36, Spend: 40000, Conversions: 7463, Revenue: 2089640},
}

// creativeTemplate là số liệu literal của một creative, CreatedAt được backdate
// theo DaysActive để thể hiện thời gian chạy thực tế.
type creativeTemplate struct {
	Name         string
	Type         string
	Format       string
	Impressions  int64
	Clicks       int64
	Conversions  int64
	Spend        float64
	CTR          float64
	CVR          float64
	CPA          float64
	FatigueScore int
	DaysActive   int
}

var flagshipCreatives = []creativeTemplate{
	{
		Name:         "Creative 1 - Hero Video",
		Type:         "video",
		Format:       "1920x1080",
		Impressions:  22360770,
		Clicks:       129692,
		Conversions:  11180,
		Spend:        80499,
		CTR:          0.58,
		CVR:          8.62,
		CPA:          7.2,
		FatigueScore: 62,
		DaysActive:   45,
	},
	{
		Name:         "Creative 2 - Season Highlights",
		Type:         "video",
		Format:       "1920x1080",
		Impressions:  7282685,
		Clicks:       19663,
		Conversions:  4370,
		Spend:        29131,
		CTR:          0.27,
		CVR:          22.22,
		CPA:          6.7,
		FatigueScore: 28,
		DaysActive:   20,
	},
}

// fatigueAlertTemplate là nội dung cảnh báo cho creative vượt ngưỡng fatigue,
// CreatedAt backdate 2 ngày.
type fatigueAlertTemplate struct {
	CTRDrop           float64
	CVRDrop           float64
	RecommendedAction string
	Impact            string
	DaysAgo           int
}

var demoFatigueAlert = fatigueAlertTemplate{
	CTRDrop:           35,
	CVRDrop:           28,
	RecommendedAction: "Creative refresh recommended - performance declining",
	Impact:            "$12.3K potential wasted spend if not addressed",
	DaysAgo:           2,
}

var flagshipPredictions = []insightmodels.WeeklyPrediction{
	{
		Week:           1,
		PredictedCAC:   6.90,
		ConfidenceLow:  6.80,
		ConfidenceHigh: 8.87,
		Factors: []insightmodels.PredictionFactor{
			{Name: "Creative Fatigue", Impact: -15, Direction: insightmodels.FactorDirectionNegative},
			{Name: "Seasonal Demand", Impact: 8, Direction: insightmodels.FactorDirectionPositive},
		},
	},
	{
		Week:           2,
		PredictedCAC:   6.24,
		ConfidenceLow:  6.15,
		ConfidenceHigh: 6.85,
		Factors: []insightmodels.PredictionFactor{
			{Name: "Creative Refresh", Impact: 10, Direction: insightmodels.FactorDirectionPositive},
			{Name: "Publisher Mix Optimization", Impact: 5, Direction: insightmodels.FactorDirectionPositive},
		},
	},
	{
		Week:           3,
		PredictedCAC:   5.57,
		ConfidenceLow:  5.45,
		ConfidenceHigh: 5.77,
		Factors: []insightmodels.PredictionFactor{
			{Name: "Data Enhancement", Impact: 12, Direction: insightmodels.FactorDirectionPositive},
			{Name: "Audience Optimization", Impact: 8, Direction: insightmodels.FactorDirectionPositive},
		},
	},
	{
		Week:           4,
		PredictedCAC:   5.36,
		ConfidenceLow:  5.31,
		ConfidenceHigh: 5.65,
		Factors: []insightmodels.PredictionFactor{
			{Name: "Full Optimization", Impact: 15, Direction: insightmodels.FactorDirectionPositive},
			{Name: "Market Saturation", Impact: -5, Direction: insightmodels.FactorDirectionNegative},
		},
	},
}

const (
	flagshipPredictionCurrentCAC = 5.36
	flagshipModelAccuracy        = 87.5
)

// dspChannel là snapshot hiệu suất của một kênh phân phối.
// ECPMTrend không nằm ở đây vì được sinh ngẫu nhiên tại thời điểm ghi.
type dspChannel struct {
	DSP    string
	Spend  float64
	ECPM   float64
	ROAS   float64
	Status string
}

var flagshipChannels = []dspChannel{
	{DSP: "DV360", Spend: 44848, ECPM: 12.5, ROAS: 32, Status: campaignmodels.DSPStatusScaling},
	{DSP: "Amazon DSP", Spend: 28030, ECPM: 10.2, ROAS: 25, Status: campaignmodels.DSPStatusOptimizing},
	{DSP: "The Trade Desk", Spend: 22424, ECPM: 14.8, ROAS: 35, Status: campaignmodels.DSPStatusScaling},
	{DSP: "Yahoo DSP", Spend: 16818, ECPM: 8.9, ROAS: 22, Status: campaignmodels.DSPStatusSaturated},
}

// dataAssetTemplate là số liệu literal của một data asset, CreatedAtDaysAgo
// backdate thời điểm tạo để giả lập độ trưởng thành của asset.
type dataAssetTemplate struct {
	Name             string
	Type             string
	QualityScore     int
	RecordCount      int64
	UpdateFrequency  int
	RevenuePerK      float64
	IndustryAvgPerK  float64
	UsageRate        float64
	MonthlyRevenue   float64
	CreatedAtDaysAgo int
}

var demoDataAssets = []dataAssetTemplate{
	{
		Name:             "Identity Resolution - Sports Fans",
		Type:             "Identity Graph",
		QualityScore:     92,
		RecordCount:      2500000,
		UpdateFrequency:  24,
		RevenuePerK:      2.39,
		IndustryAvgPerK:  2.10,
		UsageRate:        78,
		MonthlyRevenue:   560,
		CreatedAtDaysAgo: 180,
	},
	{
		Name:             "Live Sports Fan Affinity",
		Type:             "Behavioral Segment",
		QualityScore:     88,
		RecordCount:      1800000,
		UpdateFrequency:  168,
		RevenuePerK:      7.95,
		IndustryAvgPerK:  6.50,
		UsageRate:        85,
		MonthlyRevenue:   890,
		CreatedAtDaysAgo: 120,
	},
	{
		Name:             "Location Context - Stadium Visitors",
		Type:             "Location Intelligence",
		QualityScore:     79,
		RecordCount:      750000,
		UpdateFrequency:  72,
		RevenuePerK:      3.57,
		IndustryAvgPerK:  3.20,
		UsageRate:        65,
		MonthlyRevenue:   150,
		CreatedAtDaysAgo: 90,
	},
}

// attributionShare và earningShare được map theo index với demoDataAssets,
// mỗi asset một cặp bản ghi attribution + earning.
type attributionShare struct {
	Percentage   float64
	Value        float64
	CACReduction float64
}

var demoAttributions = []attributionShare{
	{Percentage: 3, Value: 340, CACReduction: 0.34},
	{Percentage: 11, Value: 1270, CACReduction: 1.13},
	{Percentage: 2, Value: 150, CACReduction: 0.15},
}

type earningShare struct {
	Amount      float64
	Impressions int64
}

var demoEarnings = []earningShare{
	{Amount: 560, Impressions: 234000},
	{Amount: 890, Impressions: 112000},
	{Amount: 150, Impressions: 42000},
}

// auxCampaignTemplate là campaign phụ trong portfolio của buyer.
// CAC/ROAS/revenue/createdAt được sinh ngẫu nhiên khi ghi, không có
// liên kết downstream nào được tạo cho các campaign này.
type auxCampaignTemplate struct {
	Name   string
	Spend  float64
	Status string
}

var auxCampaigns = []auxCampaignTemplate{
	{Name: "Spring Training Promo", Spend: 12340, Status: campaignmodels.CampaignStatusActive},
	{Name: "Season Pass Campaign", Spend: 8230, Status: campaignmodels.CampaignStatusActive},
	{Name: "Professional Sports Campaign", Spend: 4810, Status: campaignmodels.CampaignStatusPaused},
	{Name: "Holiday Ticket Bundle", Spend: 4510, Status: campaignmodels.CampaignStatusCompleted},
}

var flagshipHealth = struct {
	HealthScore int
	Metrics     campaignmodels.HealthMetrics
	Alerts      []campaignmodels.HealthAlert
}{
	HealthScore: 82,
	Metrics: campaignmodels.HealthMetrics{
		CTRTrend:          -12,
		CVRTrend:          8,
		CACTrend:          -46,
		ROASTrend:         87,
		BudgetUtilization: 75,
		CreativeFreshness: 45,
	},
	Alerts: []campaignmodels.HealthAlert{
		{Type: "creative_fatigue", Severity: "warning", Message: "Creative 1 showing 62% fatigue - refresh recommended"},
		{Type: "performance", Severity: "info", Message: "CAC improved by 46% since Precise implementation"},
	},
}

// recommendationTemplate là khuyến nghị gửi tới một người dùng sau khi seed
type recommendationTemplate struct {
	Type        string
	Priority    string
	Title       string
	Description string
	Impact      insightmodels.EstimatedImpact
}

var buyerRecommendation = recommendationTemplate{
	Type:        "campaign_optimization",
	Priority:    "high",
	Title:       "Refresh Creative 1 to Maintain Performance",
	Description: "Creative 1 is showing 62% fatigue. Refreshing could improve CTR by 35% and save $12.3K in wasted spend.",
	Impact: insightmodels.EstimatedImpact{
		Type:  insightmodels.ImpactTypeCostSavings,
		Value: 12300,
	},
}

var ownerRecommendation = recommendationTemplate{
	Type:        "data_optimization",
	Priority:    "medium",
	Title:       "Enhance Location Context Data Freshness",
	Description: "Updating location data more frequently (daily vs 3 days) could increase value by 25% and command higher CPM.",
	Impact: insightmodels.EstimatedImpact{
		Type:  insightmodels.ImpactTypeRevenueIncrease,
		Value: 37.5,
	},
}
