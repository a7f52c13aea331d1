package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ClientModel string

const (
	ClientModelTraditional  ClientModel = "TRADICIONAL"
	ClientModelAsset        ClientModel = "ASSET"
	ClientModelFeeBased     ClientModel = "FEE_BASED"
	ClientModelFeeBasedNoRV ClientModel = "FEE_BASED_SEM_RV"
)

// ClientSegment agrupa os modelos de cliente para os totais segmentados
type ClientSegment string

const (
	SegmentTraditional ClientSegment = "TRADICIONAL"
	SegmentFeeBased    ClientSegment = "FEE_BASED"
)

const (
	RepasseDefault = 35
	RepasseHigh    = 50
)

type Client struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"-"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Model       ClientModel     `json:"model"`
	Repasse     int             `json:"repasse"`
	NetTotal    decimal.Decimal `json:"net_total"`
	NetXP       decimal.Decimal `json:"net_xp"`
	NetXPGlobal decimal.Decimal `json:"net_xp_global"`
	NetMB       decimal.Decimal `json:"net_mb"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UpdateClientRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Model       *string          `json:"model"`
	Repasse     *int             `json:"repasse"`
	NetTotal    *decimal.Decimal `json:"net_total"`
	NetXP       *decimal.Decimal `json:"net_xp"`
	NetXPGlobal *decimal.Decimal `json:"net_xp_global"`
	NetMB       *decimal.Decimal `json:"net_mb"`
}

// NormalizeRepasse garante que o repasse seja sempre 35 ou 50
func NormalizeRepasse(repasse int) int {
	if repasse == RepasseHigh {
		return RepasseHigh
	}
	return RepasseDefault
}

// NormalizeClientModel padroniza o texto do modelo ("fee based" -> FEE_BASED).
// Modelo vazio vira TRADICIONAL.
func NormalizeClientModel(model string) ClientModel {
	m := strings.ToUpper(strings.TrimSpace(model))
	m = strings.NewReplacer(" ", "_", "-", "_").Replace(m)
	if m == "" {
		return ClientModelTraditional
	}
	return ClientModel(m)
}

// Segment retorna o segmento do modelo: modelos fee based de um lado, o resto do outro
func (m ClientModel) Segment() ClientSegment {
	switch m {
	case ClientModelFeeBased, ClientModelFeeBasedNoRV:
		return SegmentFeeBased
	default:
		return SegmentTraditional
	}
}

// HasNet indica se o cliente entra na base de clientes com patrimônio
func (c *Client) HasNet() bool {
	return c != nil && c.NetTotal.IsPositive()
}
