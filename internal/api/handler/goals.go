package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
)

type MonthlyGoalRequest struct {
	Month         string          `json:"month"`
	TargetRevenue decimal.Decimal `json:"target_revenue"`
}

type ClassGoalRequest struct {
	Month         string          `json:"month"`
	ProductClass  string          `json:"product_class"`
	TargetRevenue decimal.Decimal `json:"target_revenue"`
}

func GetMonthlyGoal(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		writeJSON(w, r, http.StatusOK, service.MonthlyGoal(r.Context(), month))
	}
}

func SetMonthlyGoal(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MonthlyGoalRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		goal, err := service.SetMonthlyGoal(r.Context(), req.Month, req.TargetRevenue)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, goal)
	}
}

func ListClassGoals(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		writeJSON(w, r, http.StatusOK, service.ClassGoals(r.Context(), month))
	}
}

func SetClassGoal(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassGoalRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		goal, err := service.SetClassGoal(r.Context(), req.Month, req.ProductClass, req.TargetRevenue)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, goal)
	}
}

// GetGoalSimulation retorna quanto falta aplicar por produto para bater as metas do mês
func GetGoalSimulation(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		writeJSON(w, r, http.StatusOK, service.GoalSimulation(r.Context(), month))
	}
}

func ListBonuses(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		writeJSON(w, r, http.StatusOK, service.ListBonuses(r.Context(), month))
	}
}

func CreateBonus(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bonus domain.Bonus
		if err := decodeBody(r, &bonus); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateBonus(r.Context(), &bonus)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func DeleteBonus(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteBonus(r.Context(), pathID(r)); err != nil {
			writeManagementError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
