package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON codifica a resposta com status 200. A codificação termina antes de
// qualquer escrita, então uma falha ainda pode responder com o erro padrão.
func writeJSON(w http.ResponseWriter, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(payload, '\n'))
}

// decodeBody decodifica o corpo sobre os valores já presentes em dst, de modo
// que campos ausentes mantêm o padrão. Corpo vazio é aceito.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
