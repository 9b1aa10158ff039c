package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fprevidi/Blabbo/config"
	"github.com/fprevidi/Blabbo/internal/chat"
	"github.com/fprevidi/Blabbo/internal/chat/model"
	"github.com/fprevidi/Blabbo/internal/user"
	"github.com/fprevidi/Blabbo/pkg/errors"
	"github.com/fprevidi/Blabbo/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Handler struct {
	userUC   user.UserUsecase
	chatUC   chat.ChatUsecase
	cfg      *config.Config
	logger   logger.Logger
	validate *validator.Validate
}

func NewHandler(userUC user.UserUsecase, chatUC chat.ChatUsecase, cfg *config.Config, logger logger.Logger) *Handler {
	return &Handler{
		userUC:   userUC,
		chatUC:   chatUC,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to marshal response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func (h *Handler) respondErrorMsg(w http.ResponseWriter, code int, message string) {
	h.respondJSON(w, code, map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}

// respondError maps the error taxonomy onto HTTP status codes so handlers
// never switch on sentinel errors themselves.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeAlreadyExists:
		status = http.StatusConflict
	case errors.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case errors.CodePermissionDenied:
		status = http.StatusForbidden
	case errors.CodeFailedPrecondition:
		status = http.StatusPreconditionFailed
	case errors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	h.respondErrorMsg(w, status, msg)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// === auth ===

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username" validate:"required"`
		Name      string `json:"name"`
		PublicKey string `json:"publicKey" validate:"required,base64"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	publicKey, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "publicKey is not valid base64")
		return
	}

	out, err := h.userUC.Register(r.Context(), user.RegisterCommand{
		Username:    req.Username,
		DisplayName: req.Name,
		PublicKey:   publicKey,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, out)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userUC.GetUserProfile(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}

// === public key directory ===

func (h *Handler) handleGetPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(r, "userID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid user id")
		return
	}
	key, err := h.userUC.GetPublicKey(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, key)
}

func (h *Handler) handlePublishPublicKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := uuidParam(r, "userID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if userID != UserIDFromContext(r.Context()) {
		h.respondErrorMsg(w, http.StatusForbidden, "cannot publish a key for another user")
		return
	}

	var req struct {
		PublicKey string `json:"publicKey" validate:"required,base64"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	publicKey, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "publicKey is not valid base64")
		return
	}

	if err := h.userUC.PublishKey(r.Context(), userID, publicKey); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "public key published"})
}

// === chats ===

func (h *Handler) handleListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatUC.ListChats(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chats)
}

// handleCreateChat opens an individual chat (resolved, never duplicated) or
// creates a group, mirroring the two shapes the mobile client sends.
func (h *Handler) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID *uuid.UUID  `json:"participantId"`
		IsGroup       bool        `json:"isGroup"`
		Name          string      `json:"name"`
		Participants  []uuid.UUID `json:"participants"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	requester := UserIDFromContext(r.Context())

	if req.IsGroup {
		dto, err := h.chatUC.CreateGroup(r.Context(), chat.CreateGroupCommand{
			CreatorID:    requester,
			Name:         req.Name,
			Participants: req.Participants,
		})
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.respondJSON(w, http.StatusCreated, dto)
		return
	}

	if req.ParticipantID == nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "participantId is required")
		return
	}
	dto, err := h.chatUC.ResolveIndividual(r.Context(), requester, *req.ParticipantID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dto)
}

func (h *Handler) handleGetChat(w http.ResponseWriter, r *http.Request) {
	chatID, ok := uuidParam(r, "chatID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid chat id")
		return
	}
	dto, err := h.chatUC.GetChat(r.Context(), chatID, UserIDFromContext(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dto)
}

// === messages ===

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	chatID, ok := uuidParam(r, "chatID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	msgs, err := h.chatUC.ListMessages(r.Context(), chatID, UserIDFromContext(r.Context()), limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, msgs)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, ok := uuidParam(r, "chatID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	var req struct {
		Content         string     `json:"content" validate:"required,base64"`
		Nonce           string     `json:"nonce" validate:"required,base64"`
		SenderPublicKey string     `json:"senderPublicKey" validate:"required,base64"`
		Type            string     `json:"type" validate:"omitempty,oneof=text image video audio document"`
		FileURL         string     `json:"fileUrl"`
		FileName        string     `json:"fileName"`
		FileSize        int64      `json:"fileSize"`
		AudioDuration   int        `json:"audioDuration"`
		ReplyToID       *uuid.UUID `json:"replyTo"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "content is not valid base64")
		return
	}
	nonce, err := base64.StdEncoding.DecodeString(req.Nonce)
	if err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "nonce is not valid base64")
		return
	}
	senderKey, err := base64.StdEncoding.DecodeString(req.SenderPublicKey)
	if err != nil {
		h.respondErrorMsg(w, http.StatusBadRequest, "senderPublicKey is not valid base64")
		return
	}

	dto, err := h.chatUC.SendMessage(r.Context(), chat.SendMessageCommand{
		ChatID:          chatID,
		SenderID:        UserIDFromContext(r.Context()),
		Ciphertext:      ciphertext,
		Nonce:           nonce,
		SenderPublicKey: senderKey,
		Type:            model.MessageType(req.Type),
		FileURL:         req.FileURL,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		AudioDuration:   req.AudioDuration,
		ReplyToID:       req.ReplyToID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, dto)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	messageID, ok := uuidParam(r, "messageID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid message id")
		return
	}
	added, _, err := h.chatUC.MarkRead(r.Context(), messageID, UserIDFromContext(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"added": added})
}

func (h *Handler) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	messageID, ok := uuidParam(r, "messageID")
	if !ok {
		h.respondErrorMsg(w, http.StatusBadRequest, "invalid message id")
		return
	}
	receipts, err := h.chatUC.ListReceipts(r.Context(), messageID, UserIDFromContext(r.Context()))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, receipts)
}
