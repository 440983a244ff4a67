package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações da sessão emitida pelo login externo.
// AccountIDs vazio libera a leitura de todas as contas.
type Claims struct {
	OperatorID string   `json:"operator_id"`
	AccountIDs []string `json:"account_ids,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) CanRead(accountExternalID string) bool {
	if c == nil {
		return false
	}
	if len(c.AccountIDs) == 0 {
		return true
	}
	return slices.Contains(c.AccountIDs, accountExternalID)
}
