package contact

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"mangastore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewHTTPHandler(service *Service, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Send handles POST /contact
func (h *HTTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "Tous les champs sont requis", nil)
		return
	}

	if details := httpx.ValidateStruct(form); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Tous les champs sont requis", details)
		return
	}

	if err := h.service.Send(r.Context(), form); err != nil {
		h.log.WithError(err).Error("sending contact email failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "MAIL_ERROR", "Erreur lors de l'envoi de l'email", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]interface{}{
		"message": "Email envoyé avec succès",
	}, nil)
}
