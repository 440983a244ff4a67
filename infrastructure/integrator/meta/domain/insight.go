package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é a linha diária de /{id}/insights
type Insight struct {
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Actions     []Action `json:"actions"`
	CPC         string   `json:"cpc"`
	CPM         string   `json:"cpm"`
	CTR         string   `json:"ctr"`
	Frequency   string   `json:"frequency"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// ConversionActionTypes são as ações contadas como conversão, em ordem de prioridade
var ConversionActionTypes = map[string]struct{}{
	"lead":                  {},
	"purchase":              {},
	"complete_registration": {},
}

// VideoViewActionType é a reprodução de 3 segundos, usada como proxy de stop rate
const VideoViewActionType = "video_view"
