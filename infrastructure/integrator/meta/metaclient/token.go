package metaclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

type meResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CheckTokenValidity verifica se o token é válido fazendo uma consulta simples ao /me.
// Token rejeitado pela API devolve (false, nil); falhas de rede devolvem erro.
func (c *MetaClient) CheckTokenValidity(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	params := url.Values{}
	params.Add("fields", "id,name")

	var me meResponse
	err := c.get(ctx, token, c.endpoint("me"), params, &me)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			logrus.WithError(err).Warn("meta: access token invalid or expired")
			return false, nil
		}
		return false, err
	}

	return me.ID != "", nil
}
