package handler

import (
	"net/http"
	"strings"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/utils"
)

// Cell é uma célula da planilha; aceita número ou texto ("1.234,56") no JSON
type Cell string

func (c *Cell) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*c = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	}

	*c = Cell(raw)
	return nil
}

// RevenueItemRow é uma linha do relatório de comissões já tabulada
type RevenueItemRow struct {
	ClientCode        string `json:"client_code"`
	Product           string `json:"product"`
	Family            string `json:"family"`
	Gross             Cell   `json:"gross"`
	NetToAdvisorValue Cell   `json:"net_to_advisor_value"`
	OfficeCommission  Cell   `json:"office_commission"`
}

type ImportRevenueItemsRequest struct {
	Month string            `json:"month"`
	Items []*RevenueItemRow `json:"items"`
}

// lineItems converte as linhas; valores malformados viram zero
func (req ImportRevenueItemsRequest) lineItems() []*domain.RevenueLineItem {
	items := make([]*domain.RevenueLineItem, 0, len(req.Items))
	for _, row := range req.Items {
		if row == nil {
			continue
		}
		items = append(items, &domain.RevenueLineItem{
			ClientCode:        strings.TrimSpace(row.ClientCode),
			Product:           strings.TrimSpace(row.Product),
			Family:            strings.TrimSpace(row.Family),
			Gross:             utils.ParseDecimal(string(row.Gross)),
			NetToAdvisorValue: utils.ParseDecimal(string(row.NetToAdvisorValue)),
			OfficeCommission:  utils.ParseDecimal(string(row.OfficeCommission)),
		})
	}
	return items
}

type RecurringCategoriesRequest struct {
	Categories []string `json:"categories"`
}

// GetDashboard monta o painel completo do mês corrente
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Dashboard(r.Context()))
	}
}

func GetDashboardMetrics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.DashboardMetrics(r.Context()))
	}
}

// ImportRevenueItems substitui as linhas do relatório histórico do mês.
// As linhas chegam já interpretadas; a leitura de planilhas fica fora da API.
func ImportRevenueItems(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRevenueItemsRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		imported, err := service.ImportRevenueItems(r.Context(), req.Month, req.lineItems())
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"month":    req.Month,
			"imported": imported,
		})
	}
}

func GetRecurringCategories(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.RecurringCategories(r.Context()))
	}
}

func GetAvailableRecurringCategories(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string][]string{
			"categories": service.AvailableRecurringCategories(r.Context()),
		})
	}
}

func SetRecurringCategories(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecurringCategoriesRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		prefs, err := service.SetRecurringCategories(r.Context(), req.Categories)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, prefs)
	}
}
