package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/domain"
)

const (
	campaignFields = "id,name,status,objective,daily_budget,lifetime_budget"
	adsetFields    = "id,name,status,campaign_id,optimization_goal,billing_event,daily_budget,lifetime_budget"
	adFields       = "id,name,status,adset_id,creative{id}"
	insightFields  = "spend,impressions,clicks,actions,cpc,cpm,ctr,frequency"
	creativeFields = "id,name,title,body,image_url,video_id,thumbnail_url,call_to_action_type,link_url"
)

func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", campaignFields)
	params.Add("limit", c.pageLimit())

	return fetchAll[metadomain.Campaign](ctx, c, token, c.endpoint(fmt.Sprintf("act_%s/campaigns", accountID)), params)
}

func (c *MetaClient) GetAdsetsByCampaignID(ctx context.Context, token, campaignID string) ([]metadomain.Adset, error) {
	params := url.Values{}
	params.Add("fields", adsetFields)
	params.Add("limit", c.pageLimit())

	return fetchAll[metadomain.Adset](ctx, c, token, c.endpoint(campaignID+"/adsets"), params)
}

func (c *MetaClient) GetAdsByAdsetID(ctx context.Context, token, adsetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", c.pageLimit())

	return fetchAll[metadomain.Ad](ctx, c, token, c.endpoint(adsetID+"/ads"), params)
}

// GetInsightsByID busca as métricas de um único dia. Devolve nil quando a entidade não teve entrega.
func (c *MetaClient) GetInsightsByID(ctx context.Context, token, entityID string, day time.Time) (*metadomain.Insight, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day.Format(time.DateOnly), day.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("time_range", timeRange)

	var response metadomain.ListResponse[metadomain.Insight]
	if err := c.get(ctx, token, c.endpoint(entityID+"/insights"), params, &response); err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

func (c *MetaClient) GetCreativeByID(ctx context.Context, token, creativeID string) (*metadomain.Creative, error) {
	params := url.Values{}
	params.Add("fields", creativeFields)

	var creative metadomain.Creative
	if err := c.get(ctx, token, c.endpoint(creativeID), params, &creative); err != nil {
		return nil, err
	}

	return &creative, nil
}
