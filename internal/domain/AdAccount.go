package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é a conta de anúncios do Meta com a credencial gravada pelo fluxo de login externo
type AdAccount struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	AccessToken string          `json:"-"`
	Status      AdAccountStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (a *AdAccount) IsActive() bool {
	return a != nil && a.Status == AdAccountStatusActive
}

// HasToken indica se o login externo já gravou uma credencial para a conta
func (a *AdAccount) HasToken() bool {
	return a != nil && a.AccessToken != ""
}
