package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/advisorhub/revenue-engine/internal/usecases/managing"
	"github.com/advisorhub/revenue-engine/pkg/apiErrors"
	"github.com/advisorhub/revenue-engine/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("corpo da requisição vazio")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// writeManagementError traduz o erro do cadastro para a resposta da API
func writeManagementError(w http.ResponseWriter, r *http.Request, err error) {
	var mgmtErr *managing.ManagementError
	if errors.As(err, &mgmtErr) {
		if mgmtErr.Code == apiErrors.ErrDatabaseOperation || mgmtErr.Code == apiErrors.ErrInternalServer {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao processar cadastro")
		}

		var details any
		if mgmtErr.EntityID != "" {
			details = map[string]string{"id": mgmtErr.EntityID}
		}
		apiErrors.WriteError(w, mgmtErr.Code, mgmtErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no cadastro")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
