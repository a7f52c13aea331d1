package handler

import (
	"net/http"

	"github.com/advisorhub/revenue-engine/internal/domain"
	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/internal/usecases/reporting"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
)

func ListProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListProducts(r.Context()))
	}
}

func CreateProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := decodeBody(r, &product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateProduct(r.Context(), &product)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateProductRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateProduct(r.Context(), pathID(r), &req)
		if err != nil {
			writeManagementError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteProduct(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteProduct(r.Context(), pathID(r)); err != nil {
			writeManagementError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
