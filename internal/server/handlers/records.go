package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/medkeeper/internal/server/storage"
	"github.com/iudanet/medkeeper/internal/validation"
	"github.com/iudanet/medkeeper/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// RecordsHandler handles the medicine record endpoints
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(logger *slog.Logger, storage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: storage,
	}
}

// Register добавляет маршруты в mux
func (h *RecordsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /records", h.List)
	mux.HandleFunc("POST /records", h.Create)
	mux.HandleFunc("PATCH /records/{id}", h.Update)
	mux.HandleFunc("DELETE /records/{id}", h.Delete)
}

// List обрабатывает GET /records?userId=
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUserID(w, r)
	if !ok {
		return
	}

	records, err := h.storage.ListRecords(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "Failed to list records", err, "user_id", userID)
		return
	}

	resp := make([]api.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}

	h.logger.Debug("Records listed", "user_id", userID, "count", len(resp))
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Create обрабатывает POST /records.
// Повтор с тем же clientRef возвращает существующую запись со статусом 200.
func (h *RecordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreateRecordRequest
	if !h.decode(w, r, &req) {
		return
	}

	rec, err := recordFromCreate(&req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	if !h.authorize(w, r, rec.UserID) {
		return
	}

	created, err := h.storage.CreateRecord(r.Context(), rec)
	if err != nil {
		h.internalError(w, r, "Failed to create record", err, "user_id", rec.UserID)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
		h.logger.Info("Duplicate create resolved by client ref",
			"user_id", rec.UserID,
			"record_id", rec.ID,
			"client_ref", rec.ClientRef,
		)
	} else {
		h.logger.Info("Record created", "user_id", rec.UserID, "record_id", rec.ID)
	}

	writeJSON(w, h.logger, status, toResponse(rec))
}

// Update обрабатывает PATCH /records/{id}?userId=
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	userID, ok := h.queryUserID(w, r)
	if !ok {
		return
	}

	var req api.UpdateRecordRequest
	if !h.decode(w, r, &req) {
		return
	}

	patch, err := patchFromUpdate(&req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	var rec *storage.Record
	if patch.Empty() {
		rec, err = h.storage.GetRecord(r.Context(), userID, id)
	} else {
		rec, err = h.storage.UpdateRecord(r.Context(), userID, id, patch)
	}
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			WriteError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("record %d not found", id))
			return
		}
		h.internalError(w, r, "Failed to update record", err, "user_id", userID, "record_id", id)
		return
	}

	h.logger.Info("Record updated", "user_id", userID, "record_id", id)
	writeJSON(w, h.logger, http.StatusOK, toResponse(rec))
}

// Delete обрабатывает DELETE /records/{id}?userId=
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	userID, ok := h.queryUserID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteRecord(r.Context(), userID, id); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			WriteError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("record %d not found", id))
			return
		}
		h.internalError(w, r, "Failed to delete record", err, "user_id", userID, "record_id", id)
		return
	}

	h.logger.Info("Record deleted", "user_id", userID, "record_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// queryUserID разбирает ?userId= и проверяет его против токена
func (h *RecordsHandler) queryUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		WriteError(w, http.StatusBadRequest, ErrCodeValidation, validation.ErrUserIDRequired.Error())
		return 0, false
	}
	return userID, h.authorize(w, r, userID)
}

// authorize сравнивает userId запроса с user_id токена, если аутентификация включена
func (h *RecordsHandler) authorize(w http.ResponseWriter, r *http.Request, userID int64) bool {
	tokenUserID, ok := GetUserID(r.Context())
	if !ok || tokenUserID == userID {
		return true
	}

	h.logger.Warn("User id does not match token",
		"user_id", userID,
		"token_user_id", tokenUserID,
		"request_id", GetRequestID(r.Context()),
	)
	WriteError(w, http.StatusForbidden, ErrCodeForbidden, "userId does not match the access token")
	return false
}

func (h *RecordsHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("invalid record id %q", r.PathValue("id")))
		return 0, false
	}
	return id, true
}

func (h *RecordsHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Warn("Invalid request body", "error", err, "request_id", GetRequestID(r.Context()))
		WriteError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *RecordsHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", GetRequestID(r.Context()))
	h.logger.Error(msg, attrs...)
	WriteError(w, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}
