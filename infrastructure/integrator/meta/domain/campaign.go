package metadomain

// As estruturas abaixo espelham o payload da Graph API. Números chegam como string.

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type Adset struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal"`
	BillingEvent     string `json:"billing_event"`
	DailyBudget      string `json:"daily_budget"`
	LifetimeBudget   string `json:"lifetime_budget"`
}

type AdCreativeRef struct {
	ID string `json:"id"`
}

type Ad struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	AdsetID  string         `json:"adset_id"`
	Creative *AdCreativeRef `json:"creative"`
}

type Creative struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	Body             string `json:"body"`
	ImageURL         string `json:"image_url"`
	VideoID          string `json:"video_id"`
	ThumbnailURL     string `json:"thumbnail_url"`
	CallToActionType string `json:"call_to_action_type"`
	LinkURL          string `json:"link_url"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// ListResponse é o envelope {data, paging} das listagens da Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}
