package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatusSummary struct {
	OK       int `json:"ok"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}

type IssueCount struct {
	Type  IssueType `json:"type"`
	Count int       `json:"count"`
}

type DashboardSummary struct {
	AccountID      string        `json:"account_id"`
	TargetDay      time.Time     `json:"target_day"`
	StatusSummary  StatusSummary `json:"status_summary"`
	TopIssues      []IssueCount  `json:"top_issues"`
	TotalCampaigns int           `json:"total_campaigns"`
}

type CampaignOverview struct {
	Campaign *Snapshot `json:"campaign"`
	Analysis *Analysis `json:"analysis"`
}

type MetricPoint struct {
	Date        string           `json:"date"`
	Spend       *decimal.Decimal `json:"spend"`
	Conversions *int64           `json:"conversions"`
	CPA         *decimal.Decimal `json:"cpa"`
}

type CampaignDetail struct {
	Campaign       *Snapshot     `json:"campaign"`
	Analysis       *Analysis     `json:"analysis"`
	MetricsHistory []MetricPoint `json:"metrics_history"`
}
