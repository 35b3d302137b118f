package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"offernlp/internal/command"
	"offernlp/internal/transport/web/controller"
)

type Commands struct {
	IngestOffer           *command.IngestOffer
	BulkIngestOffers      *command.BulkIngestOffers
	BulkInsertHistory     *command.BulkInsertHistory
	RegisterConsultation  *command.RegisterConsultation
	SearchOffers          *command.SearchOffers
	RecommendOffers       *command.RecommendOffers
	IngestMessage         *command.IngestMessage
	SearchMessages        *command.SearchMessages
	ConversationSentiment *command.ConversationSentiment
	AnalyzeComment        *command.AnalyzeComment
	EvaluateSearch        *command.EvaluateSearch
}

func MakeRouter(commands Commands) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/offers", controller.OfferCreate{
		Ingest: commands.IngestOffer,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/offers/bulk", controller.OffersBulk{
		Bulk: commands.BulkIngestOffers,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/history/bulk", controller.HistoryBulk{
		Bulk: commands.BulkInsertHistory,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/consultations", controller.ConsultationRegister{
		Register: commands.RegisterConsultation,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/search", controller.Search{
		Search: commands.SearchOffers,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations", controller.Recommendations{
		Recommend: commands.RecommendOffers,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/messages", controller.MessageCreate{
		Ingest: commands.IngestMessage,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/messages/search", controller.MessagesSearch{
		Search: commands.SearchMessages,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/conversations/{conversation_id}/sentiment", controller.ConversationSentimentGet{
		Aggregate: commands.ConversationSentiment,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/comments/analyze", controller.CommentAnalyze{
		Analyze: commands.AnalyzeComment,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/evaluate", controller.Evaluate{
		Evaluate: commands.EvaluateSearch,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/healthz", controller.Health{}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
