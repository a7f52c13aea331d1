package handler

import (
	"net/http"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
)

func ListClients(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListClients(r.Context()))
	}
}

func CreateClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var client domain.Client
		if err := decodeBody(r, &client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateClient(r.Context(), &client)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateClientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateClient(r.Context(), pathID(r), &req)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteClient(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteClient(r.Context(), pathID(r)); err != nil {
			writeManagementError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
