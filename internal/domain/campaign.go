package domain

// CampaignObjective é a classificação de objetivo de uma campanha no Meta
type CampaignObjective string

const (
	ObjectiveOutcomeSales      CampaignObjective = "OUTCOME_SALES"
	ObjectiveOutcomeLeads      CampaignObjective = "OUTCOME_LEADS"
	ObjectiveOutcomeAwareness  CampaignObjective = "OUTCOME_AWARENESS"
	ObjectiveOutcomeTraffic    CampaignObjective = "OUTCOME_TRAFFIC"
	ObjectiveOutcomeEngagement CampaignObjective = "OUTCOME_ENGAGEMENT"
	ObjectiveReach             CampaignObjective = "REACH"
)

// OptimizationGoal é a métrica que o algoritmo de entrega otimiza no conjunto de anúncios
type OptimizationGoal string

const (
	OptimizationReach            OptimizationGoal = "REACH"
	OptimizationImpressions      OptimizationGoal = "IMPRESSIONS"
	OptimizationLinkClicks       OptimizationGoal = "LINK_CLICKS"
	OptimizationLandingPageViews OptimizationGoal = "LANDING_PAGE_VIEWS"
	OptimizationValue            OptimizationGoal = "VALUE"
)

// BidStrategy é a estratégia de lances usada em campanhas e conjuntos de anúncios
type BidStrategy string

const (
	BidLowestCostWithoutCap BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidLowestCostWithBidCap BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidCostCap              BidStrategy = "COST_CAP"
)

// Status padrão aplicado a todas as entidades criadas pelo pipeline.
// A ativação é sempre uma ação manual do operador.
const StatusPaused = "PAUSED"

const BuyingTypeAuction = "AUCTION"

// AdSetParameters descreve um conjunto de anúncios a ser criado na campanha
type AdSetParameters struct {
	Name             string              `json:"name"`
	OptimizationGoal OptimizationGoal    `json:"optimization_goal"`
	BillingEvent     string              `json:"billing_event"`
	BidStrategy      BidStrategy         `json:"bid_strategy"`
	Targeting        AudienceTargeting   `json:"targeting"`
	DailyBudget      float64             `json:"daily_budget"`
	LifetimeBudget   *float64            `json:"lifetime_budget,omitempty"`
	StartTime        string              `json:"start_time,omitempty"`
	EndTime          string              `json:"end_time,omitempty"`
	Schedule         []map[string]string `json:"schedule,omitempty"`
	Placements       []Placement         `json:"placements,omitempty"`
}

// ConversionTracking carrega a configuração de rastreamento de conversões da campanha
type ConversionTracking struct {
	PixelID      string   `json:"pixel_id"`
	CustomEvents []string `json:"custom_events,omitempty"`
}

// BudgetAdjustment define os limiares de ROAS para ajuste automático de orçamento
type BudgetAdjustment struct {
	IncreaseThreshold    float64 `json:"increase_threshold"`
	DecreaseThreshold    float64 `json:"decrease_threshold"`
	AdjustmentPercentage float64 `json:"adjustment_percentage"`
}

// BudgetRules define as regras de orçamento associadas à campanha.
// As regras são armazenadas junto ao build mas não são executadas pelo pipeline.
type BudgetRules struct {
	MinROAS               float64           `json:"min_roas"`
	MaxCostPerResult      float64           `json:"max_cost_per_result"`
	DailyBudgetAdjustment *BudgetAdjustment `json:"daily_budget_adjustment,omitempty"`
}

// CampaignScheduling define a janela de veiculação pretendida para a campanha
type CampaignScheduling struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// CampaignRules agrupa regras declarativas da campanha
type CampaignRules struct {
	BudgetOptimization bool                `json:"budget_optimization"`
	Scheduling         *CampaignScheduling `json:"scheduling,omitempty"`
	BudgetRules        *BudgetRules        `json:"budget_rules,omitempty"`
}

// CampaignParameters descreve a campanha completa a ser construída
type CampaignParameters struct {
	Name                string              `json:"name"`
	Objective           CampaignObjective   `json:"objective"`
	BuyingType          string              `json:"buying_type,omitempty"`
	Status              string              `json:"status,omitempty"`
	DailyBudget         float64             `json:"daily_budget"`
	BidStrategy         BidStrategy         `json:"bid_strategy"`
	ColdAudience        *AudienceTargeting  `json:"cold_audience,omitempty"`
	WarmAudience        *AudienceTargeting  `json:"warm_audience,omitempty"`
	HotAudience         *AudienceTargeting  `json:"hot_audience,omitempty"`
	Placements          []Placement         `json:"placements,omitempty"`
	ConversionTracking  *ConversionTracking `json:"conversion_tracking,omitempty"`
	PixelID             string              `json:"pixel_id,omitempty"`
	AdSets              []AdSetParameters   `json:"ad_sets"`
	AdCreatives         []AdCreative        `json:"ad_creatives"`
	SpecialAdCategories []string            `json:"special_ad_categories,omitempty"`
	CampaignRules       *CampaignRules      `json:"campaign_rules,omitempty"`
}
