package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/api"
	"github.com/abababa124444-cmd/arab-chat1/internal/infra"
	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type Handler struct {
	service   ChatService
	poster    Poster
	validator Validator
}

func New(service ChatService, poster Poster, validator Validator) *Handler {
	return &Handler{
		service:   service,
		poster:    poster,
		validator: validator,
	}
}

// Register mounts the REST routes. Direct-thread routes require an identity.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", h.SearchRooms)
		r.Post("/", h.CreateRoom)
		r.Get("/{slug}", h.GetRoom)
		r.Get("/{slug}/messages", h.GetRoomMessages)
		r.Post("/{slug}/messages", h.SendRoomMessage)
		r.Get("/{slug}/poll", h.PollRoom)
	})

	r.Route("/api/direct-threads", func(r chi.Router) {
		r.Use(infra.RequireIdentity)
		r.Get("/", h.ListThreads)
		r.Post("/get-or-create", h.GetOrCreateThread)
		r.Get("/{id}/messages", h.GetThreadMessages)
		r.Post("/{id}/messages", h.SendThreadMessage)
		r.Get("/{id}/poll", h.PollThread)
	})
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "CreateRoom").Logger()

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode request")
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateRoom(&req); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	room, created, err := h.service.GetOrCreateRoom(r.Context(), req.Name)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info().Int64("room_id", room.ID).Str("slug", room.Slug).Msg("room created")
	}

	h.writeJSON(w, api.NewRoom(*room), status)
}

func (h *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "SearchRooms").Logger()

	rooms, err := h.service.SearchRooms(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewRoomsResponse(rooms), http.StatusOK)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "GetRoom").Logger()

	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewRoom(*room), http.StatusOK)
}

func (h *Handler) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "GetRoomMessages").Logger()

	_, messages, err := h.service.RecentRoomMessages(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewRoomMessagesResponse(messages), http.StatusOK)
}

func (h *Handler) SendRoomMessage(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "SendRoomMessage").Logger()

	var req api.SendRoomMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode request")
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(req.Content); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.poster.PostRoomMessage(r.Context(), chi.URLParam(r, "slug"), req.AuthorName, req.Content)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}
	metrics.MessagesAppended.WithLabelValues("room", "rest").Inc()

	h.writeJSON(w, model.NewRoomMessageFrame(*message), http.StatusCreated)
}

// PollRoom returns messages newer than the after cursor, in the same shape as live frames.
func (h *Handler) PollRoom(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "PollRoom").Logger()

	cursor, err := parseCursor(r)
	if err != nil {
		h.writeError(w, "after must be an integer", http.StatusBadRequest)
		return
	}

	messages, err := h.service.RoomMessagesSince(r.Context(), chi.URLParam(r, "slug"), cursor)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewRoomMessagesResponse(messages), http.StatusOK)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "ListThreads").Logger()

	me, _ := infra.IdentityFromContext(r.Context())

	threads, err := h.service.ListThreads(r.Context(), me.ID)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewThreadsResponse(threads), http.StatusOK)
}

func (h *Handler) GetOrCreateThread(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "GetOrCreateThread").Logger()

	me, _ := infra.IdentityFromContext(r.Context())

	var req api.GetOrCreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode request")
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateGetOrCreateThread(&req, me.ID); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.RegisterUser(r.Context(), me); err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	thread, created, err := h.service.GetOrCreateThread(r.Context(), me.ID, req.UserID)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.writeJSON(w, api.NewThread(*thread), status)
}

func (h *Handler) GetThreadMessages(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "GetThreadMessages").Logger()

	thread, ok := h.threadForCaller(w, r, logger)
	if !ok {
		return
	}

	messages, err := h.service.RecentThreadMessages(r.Context(), thread.ID)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewDirectMessagesResponse(messages), http.StatusOK)
}

func (h *Handler) SendThreadMessage(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "SendThreadMessage").Logger()

	me, _ := infra.IdentityFromContext(r.Context())

	thread, ok := h.threadForCaller(w, r, logger)
	if !ok {
		return
	}

	var req api.SendDirectMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to decode request")
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(req.Content); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.poster.PostThreadMessage(r.Context(), thread.ID, me, req.Content)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}
	metrics.MessagesAppended.WithLabelValues("dm", "rest").Inc()

	h.writeJSON(w, model.NewDirectMessageFrame(*message), http.StatusCreated)
}

func (h *Handler) PollThread(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context()).With().Str("func", "PollThread").Logger()

	cursor, err := parseCursor(r)
	if err != nil {
		h.writeError(w, "after must be an integer", http.StatusBadRequest)
		return
	}

	thread, ok := h.threadForCaller(w, r, logger)
	if !ok {
		return
	}

	messages, err := h.service.ThreadMessagesSince(r.Context(), thread.ID, cursor)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return
	}

	h.writeJSON(w, api.NewDirectMessagesResponse(messages), http.StatusOK)
}

// threadForCaller resolves the {id} thread and hides it from non-participants.
func (h *Handler) threadForCaller(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*model.DirectThread, bool) {
	me, _ := infra.IdentityFromContext(r.Context())

	threadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, model.ErrNotFound.Error(), http.StatusNotFound)
		return nil, false
	}

	thread, err := h.service.GetThreadForUser(r.Context(), threadID, me.ID)
	if err != nil {
		h.writeServiceError(w, logger, err)
		return nil, false
	}

	return thread, true
}

func parseCursor(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("after")
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrEmptyContent),
		errors.Is(err, model.ErrEmptyName),
		errors.Is(err, model.ErrSelfThread):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrDuplicateName):
		h.writeError(w, err.Error(), http.StatusConflict)
	default:
		logger.Error().Err(err).Msg("request failed")
		h.writeError(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}
