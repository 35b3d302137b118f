package controller

import (
	"net/http"
	"strconv"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type MessagesSearch struct {
	Search *command.SearchMessages
}

type messagesSearchResponse struct {
	Query   string              `json:"query"`
	Results []domain.MessageHit `json:"results"`
	Total   int                 `json:"total"`
}

func (c MessagesSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	limit := 0
	if raw := params.Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, "n must be an integer")
			return
		}
		limit = parsed
	}

	query := params.Get("query")
	hits, err := c.Search.Execute(ctx, command.SearchMessagesRequest{
		Query:          query,
		Limit:          limit,
		ConversationID: params.Get("conversation_id"),
		SenderID:       params.Get("sender_id"),
	})
	if err != nil {
		writeCommandError(ctx, w, err, "unable to search messages")
		return
	}

	writeJSON(ctx, w, http.StatusOK, messagesSearchResponse{
		Query:   query,
		Results: hits,
		Total:   len(hits),
	})
}
