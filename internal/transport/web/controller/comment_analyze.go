package controller

import (
	"net/http"

	"offernlp/internal/command"
)

type CommentAnalyze struct {
	Analyze *command.AnalyzeComment
}

type commentAnalyzeRequest struct {
	Comment string `json:"comment"`
}

func (c CommentAnalyze) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentAnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := c.Analyze.Execute(ctx, req.Comment)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to analyze comment")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
