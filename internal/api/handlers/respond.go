package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse единый формат тела ошибки для всех эндпоинтов
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		// ошибку кодирования уже не доставить клиенту: заголовки отправлены
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет тело ошибки с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest отвечает 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отвечает 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отвечает 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отвечает 500 без деталей внутренней ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondNoContent отвечает 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
