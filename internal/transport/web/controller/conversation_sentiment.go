package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type ConversationSentimentGet struct {
	Aggregate *command.ConversationSentiment
}

func (c ConversationSentimentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversation_id"]

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("conversation_id", conversationID))

	result, err := c.Aggregate.Execute(ctx, conversationID)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to aggregate conversation sentiment")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
