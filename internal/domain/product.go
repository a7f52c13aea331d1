package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"-"`
	Name          string          `json:"name"`
	Class         string          `json:"class"`
	ROAPct        decimal.Decimal `json:"roa_pct"`
	InCampaign    bool            `json:"in_campaign"`
	CampaignMonth string          `json:"campaign_month"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Class         *string          `json:"class"`
	ROAPct        *decimal.Decimal `json:"roa_pct"`
	InCampaign    *bool            `json:"in_campaign"`
	CampaignMonth *string          `json:"campaign_month"`
}

// InCampaignFor indica se o produto está em campanha no mês informado (YYYY-MM).
// Campanha sem mês definido vale para qualquer mês.
func (p *Product) InCampaignFor(month string) bool {
	if p == nil || !p.InCampaign {
		return false
	}
	return p.CampaignMonth == "" || p.CampaignMonth == month
}
