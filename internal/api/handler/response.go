package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é o formato uniforme de toda resposta da API. Falha de dados não
// muda o status HTTP: o dashboard distingue pelo campo success.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// WriteSuccess responde 200 com o envelope de sucesso
func WriteSuccess(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// WriteFailure responde 200 com o envelope de falha. Falha de dados (fonte
// não carregada, métrica indisponível) não é erro de transporte.
func WriteFailure(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusOK, Envelope{
		Success: false,
		Message: message,
	})
}

func writeEnvelope(w http.ResponseWriter, status int, envelope Envelope) {
	envelope.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
