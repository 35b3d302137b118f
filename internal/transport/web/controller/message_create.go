package controller

import (
	"net/http"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type MessageCreate struct {
	Ingest *command.IngestMessage
}

type messageCreateRequest struct {
	MessageID      string `json:"message_id" validate:"required"`
	SenderID       string `json:"sender_id"`
	ReceiverID     string `json:"receiver_id"`
	Text           string `json:"message" validate:"required"`
	TradeID        string `json:"trade_id"`
	ConversationID string `json:"conversation_id"`
}

func (c MessageCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req messageCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Ingest.Execute(ctx, domain.Message{
		MessageID:      req.MessageID,
		SenderID:       req.SenderID,
		ReceiverID:     req.ReceiverID,
		Text:           req.Text,
		TradeID:        req.TradeID,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		writeCommandError(ctx, w, err, "unable to ingest message")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, result)
}
