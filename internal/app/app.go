package app

import (
	"context"
	"fmt"

	"offernlp/internal/command"
	"offernlp/internal/datasources"
	"offernlp/internal/datasources/chroma"
	"offernlp/internal/datasources/mysql"
	"offernlp/internal/datasources/nlpserver"
	"offernlp/internal/datasources/pinecone"
	"offernlp/internal/nlp"
	"offernlp/internal/transport/web/router"
	"offernlp/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repository, err := setupOfferRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up offer repository: %w", err)
	}

	models, err := setupModelRegistry(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up model registry: %w", err)
	}

	vectors, err := setupVectorStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector store: %w", err)
	}

	keywords := nlp.NewKeywordExtractor(models)
	sentiment := nlp.NewSentimentScorer(models)

	ingestOfferCmd := &command.IngestOffer{
		Keywords:  keywords,
		Sentiment: sentiment,
		Embedder:  models,
		Vectors:   vectors,
		Analyses:  repository,
		History:   repository,
	}

	searchOffersCmd := &command.SearchOffers{
		Embedder: models,
		Vectors:  vectors,
	}

	httpRouter, err := router.MakeRouter(router.Commands{
		IngestOffer:          ingestOfferCmd,
		BulkIngestOffers:     &command.BulkIngestOffers{Ingest: ingestOfferCmd},
		BulkInsertHistory:    &command.BulkInsertHistory{History: repository},
		RegisterConsultation: &command.RegisterConsultation{History: repository},
		SearchOffers:         searchOffersCmd,
		RecommendOffers: &command.RecommendOffers{
			History:  repository,
			Vectors:  vectors,
			Keywords: repository,
		},
		IngestMessage: &command.IngestMessage{
			Sentiment: sentiment,
			Embedder:  models,
			Vectors:   vectors,
		},
		SearchMessages: &command.SearchMessages{
			Embedder: models,
			Vectors:  vectors,
		},
		ConversationSentiment: &command.ConversationSentiment{Vectors: vectors},
		AnalyzeComment:        &command.AnalyzeComment{Sentiment: sentiment},
		EvaluateSearch:        &command.EvaluateSearch{Search: searchOffersCmd},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupOfferRepository(ctx context.Context) (datasources.OfferRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

// setupModelRegistry connects to the NLP model server; its constructor
// pings the server so a misconfigured URL fails startup.
func setupModelRegistry(ctx context.Context) (datasources.ModelRegistry, error) {
	switch driver := MustGetEnvAsString(ctx, "MODEL_DRIVER"); driver {
	case "null":
		return datasources.NullModelRegistry{}, nil
	case "nlpserver":
		client, err := nlpserver.NewClient(ctx, MustGetEnvAsString(ctx, "NLP_SERVER_URL"))
		if err != nil {
			return nil, fmt.Errorf("connecting to NLP model server: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown model driver [%s]", driver)
	}
}

func setupVectorStore(ctx context.Context) (datasources.VectorStore, error) {
	switch driver := MustGetEnvAsString(ctx, "VECTOR_DRIVER"); driver {
	case "null":
		return datasources.NullVectorStore{}, nil
	case "chroma":
		return chroma.NewClient(MustGetEnvAsString(ctx, "CHROMA_URL")), nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown vector driver [%s]", driver)
	}
}
