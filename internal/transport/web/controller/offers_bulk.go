package controller

import (
	"net/http"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type OffersBulk struct {
	Bulk *command.BulkIngestOffers
}

type offersBulkRequest struct {
	Offers []domain.Offer `json:"offers" validate:"required,min=1"`
}

func (c OffersBulk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req offersBulkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Bulk.Execute(ctx, req.Offers)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to bulk ingest offers")
		return
	}

	writeJSON(ctx, w, bulkStatus(result), result)
}

// bulkStatus reports 207 for partially failed batches so callers can tell
// at the HTTP level without parsing the body.
func bulkStatus(result command.BulkResult) int {
	if result.Status == command.BulkStatusPartial {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}
