package metadomain

// CampaignCreateRequest carrega os campos da criação de campanha no Graph API
type CampaignCreateRequest struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
	DailyBudget         int64    `json:"daily_budget,omitempty"`
	LifetimeBudget      int64    `json:"lifetime_budget,omitempty"`
	BidStrategy         string   `json:"bid_strategy,omitempty"`
	BuyingType          string   `json:"buying_type,omitempty"`
	StartTime           string   `json:"start_time,omitempty"`
	StopTime            string   `json:"stop_time,omitempty"`
}

// AdSetCreateRequest carrega os campos da criação de conjunto de anúncios
type AdSetCreateRequest struct {
	Name             string          `json:"name"`
	CampaignID       string          `json:"campaign_id"`
	DailyBudget      int64           `json:"daily_budget,omitempty"`
	LifetimeBudget   int64           `json:"lifetime_budget,omitempty"`
	OptimizationGoal string          `json:"optimization_goal"`
	BillingEvent     string          `json:"billing_event"`
	BidStrategy      string          `json:"bid_strategy,omitempty"`
	BidAmount        int64           `json:"bid_amount,omitempty"`
	Targeting        *TargetingSpec  `json:"targeting"`
	PromotedObject   *PromotedObject `json:"promoted_object,omitempty"`
	StartTime        string          `json:"start_time,omitempty"`
	EndTime          string          `json:"end_time,omitempty"`
	Status           string          `json:"status"`
}

// PromotedObject identifica o pixel e evento de conversão do conjunto
type PromotedObject struct {
	PixelID         string `json:"pixel_id,omitempty"`
	CustomEventType string `json:"custom_event_type,omitempty"`
}

// CreativeSpec referencia um criativo já cadastrado na criação de anúncio
type CreativeSpec struct {
	CreativeID string `json:"creative_id"`
}

// AdCreateRequest carrega os campos da criação de anúncio
type AdCreateRequest struct {
	Name     string       `json:"name"`
	AdSetID  string       `json:"adset_id"`
	Creative CreativeSpec `json:"creative"`
	Status   string       `json:"status"`
}

// CampaignRef é a resposta da criação de campanha
type CampaignRef struct {
	ID string `json:"id"`
}

// AdSetRef é a resposta da criação de conjunto de anúncios
type AdSetRef struct {
	ID string `json:"id"`
}

// CreativeRef é a resposta da criação de criativo
type CreativeRef struct {
	ID string `json:"id"`
}

// AdRef é a resposta da criação de anúncio
type AdRef struct {
	ID string `json:"id"`
}
