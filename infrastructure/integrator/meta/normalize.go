package meta

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	metadomain "github.com/vfg2006/campaign-health-api/infrastructure/integrator/meta/domain"
)

var centsDivisor = decimal.NewFromInt(100)

// ExtractConversions devolve o valor da primeira ação de conversão encontrada, ou 0
func ExtractConversions(actions []metadomain.Action) int64 {
	for _, action := range actions {
		if _, ok := metadomain.ConversionActionTypes[action.ActionType]; !ok {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(action.Value), 64)
		if err != nil {
			return 0
		}
		return int64(value)
	}

	return 0
}

// ExtractVideoViews devolve nil quando a ação video_view não veio
func ExtractVideoViews(actions []metadomain.Action) *int64 {
	for _, action := range actions {
		if action.ActionType == metadomain.VideoViewActionType {
			return parseInt(action.Value)
		}
	}
	return nil
}

func parseString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func parseDecimal(value string) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &d
}

// parseBudget converte orçamento em centavos para a unidade da moeda
func parseBudget(value string) *decimal.Decimal {
	cents := parseDecimal(value)
	if cents == nil {
		return nil
	}

	units := cents.Div(centsDivisor)
	return &units
}

func parseInt(value string) *int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A API às vezes manda contagens como "12.0"
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return nil
		}
		i = int64(f)
	}
	return &i
}

func parseFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
