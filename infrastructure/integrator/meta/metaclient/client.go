package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxPages limita a paginação para não ficar preso em um cursor quebrado
const maxPages = 50

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks
type Client interface {
	GetCampaignsByAccountID(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error)
	GetAdsetsByCampaignID(ctx context.Context, token, campaignID string) ([]metadomain.Adset, error)
	GetAdsByAdsetID(ctx context.Context, token, adsetID string) ([]metadomain.Ad, error)
	GetInsightsByID(ctx context.Context, token, entityID string, day time.Time) (*metadomain.Insight, error)
	GetCreativeByID(ctx context.Context, token, creativeID string) (*metadomain.Creative, error)
	CheckTokenValidity(ctx context.Context, token string) (bool, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Meta.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *MetaClient) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, path)
}

// get executa um GET na Graph API e decodifica o corpo em out
func (c *MetaClient) get(ctx context.Context, token, requestURL string, params url.Values, out any) error {
	if params != nil {
		params.Set("access_token", token)
		requestURL = requestURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.NewOperationError(domain.ErrExternalService, "meta.request", "", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carrega a URL com o access_token; só a causa é propagada
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return domain.NewOperationError(domain.ErrExternalService, "meta.request", "", err)
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewOperationError(domain.ErrExternalService, "meta.decode", "", err)
	}

	return nil
}

// HandleResponse devolve o corpo das respostas 200 e converte os erros da Graph API
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewOperationError(domain.ErrExternalService, "meta.read", "", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, ParseErrorResponse(resp.StatusCode, body)
}

// ParseErrorResponse mapeia o erro da Graph API para a taxonomia do domínio
func ParseErrorResponse(status int, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		return domain.NewOperationError(domain.ErrExternalService, "meta.response", "", fmt.Errorf("status %d", status))
	}

	if errorResp.IsTokenExpired() {
		return domain.NewOperationError(domain.ErrUnauthorized, "meta.response", "", errors.New(errorResp.Summary()))
	}

	if errorResp.IsRateLimited() {
		logrus.WithFields(logrus.Fields{
			"code":       errorResp.Error.Code,
			"fbtrace_id": errorResp.Error.FBTraceID,
		}).Warn("meta: rate limit reached")
	}

	return domain.NewOperationError(domain.ErrExternalService, "meta.response", "", errors.New(errorResp.Summary()))
}

// fetchAll segue paging.next até a última página
func fetchAll[T any](ctx context.Context, c *MetaClient, token, requestURL string, params url.Values) ([]T, error) {
	items := make([]T, 0)

	for page := 0; page < maxPages; page++ {
		var response metadomain.ListResponse[T]
		if err := c.get(ctx, token, requestURL, params, &response); err != nil {
			return nil, err
		}

		items = append(items, response.Data...)

		if response.Paging.Next == "" {
			return items, nil
		}

		// A URL de próxima página já inclui os parâmetros e o token
		requestURL = response.Paging.Next
		params = nil
	}

	logrus.WithField("pages", maxPages).Warn("meta: pagination limit reached, returning partial list")
	return items, nil
}

func (c *MetaClient) pageLimit() string {
	if c.Cfg.Meta.PageLimit <= 0 {
		return "500"
	}
	return fmt.Sprintf("%d", c.Cfg.Meta.PageLimit)
}
