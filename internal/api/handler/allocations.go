package handler

import (
	"net/http"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
)

// GetKanban retorna o funil de alocações com os totais por status.
// O filtro client_id é opcional.
func GetKanban(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := r.URL.Query().Get("client_id")
		writeJSON(w, r, http.StatusOK, service.RevenueSummary(r.Context(), clientID))
	}
}

func CreateAllocation(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAllocationRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		allocation, err := service.CreateAllocation(r.Context(), &req)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, allocation)
	}
}

func UpdateAllocation(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateAllocationRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		allocation, err := service.UpdateAllocation(r.Context(), pathID(r), &req)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, allocation)
	}
}

// ConfirmAllocation marca a alocação como efetivada
func ConfirmAllocation(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allocation, err := service.ConfirmAllocation(r.Context(), pathID(r))
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, allocation)
	}
}

func DeleteAllocation(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteAllocation(r.Context(), pathID(r)); err != nil {
			writeManagementError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
