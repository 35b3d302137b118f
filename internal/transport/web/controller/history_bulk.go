package controller

import (
	"net/http"

	"offernlp/internal/command"
)

type HistoryBulk struct {
	Bulk *command.BulkInsertHistory
}

type historyBulkRequest struct {
	Items []command.BulkHistoryItem `json:"items" validate:"required,min=1"`
}

func (c HistoryBulk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req historyBulkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Bulk.Execute(ctx, req.Items)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to bulk insert history")
		return
	}

	writeJSON(ctx, w, bulkStatus(result), result)
}
