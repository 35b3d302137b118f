package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/huandu/go-sqlbuilder"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

var _ datasources.OfferRepository = (*Repository)(nil)

const (
	analysisTable = "offer_nlp_analysis"
	historyTable  = "history"
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertOfferAnalysis inserts the analysis row for an offer, or updates it
// when one already exists, keeping exactly one row per offer_id.
func (r *Repository) UpsertOfferAnalysis(ctx context.Context, analysis domain.OfferAnalysis) error {
	keywords, err := json.Marshal(analysis.Keywords)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}

	exists, err := r.HasOfferAnalysis(ctx, analysis.OfferID)
	if err != nil {
		return err
	}

	vectorIDs := strings.Join(analysis.VectorIDs, ",")

	if exists {
		ub := sqlbuilder.NewUpdateBuilder()
		ub.Update(analysisTable)
		ub.Set(
			ub.Assign("keywords", string(keywords)),
			ub.Assign("sentiment", analysis.Sentiment.Label),
			ub.Assign("confidence", analysis.Sentiment.Confidence),
			ub.Assign("polarity", analysis.Sentiment.Polarity),
			ub.Assign("subjectivity", analysis.Sentiment.Subjectivity),
			ub.Assign("vector_ids", vectorIDs),
			"processed_at = NOW()",
		)
		ub.Where(ub.Equal("offer_id", analysis.OfferID))

		query, args := ub.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("updating offer analysis: %w", err)
		}
		return nil
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto(analysisTable)
	ib.Cols("offer_id", "keywords", "sentiment", "confidence", "polarity", "subjectivity", "vector_ids")
	ib.Values(
		analysis.OfferID,
		string(keywords),
		analysis.Sentiment.Label,
		analysis.Sentiment.Confidence,
		analysis.Sentiment.Polarity,
		analysis.Sentiment.Subjectivity,
		vectorIDs,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting offer analysis: %w", err)
	}
	return nil
}

func (r *Repository) HasOfferAnalysis(ctx context.Context, offerID string) (bool, error) {
	sb := sqlbuilder.Select("offer_id")
	sb.From(analysisTable)
	sb.Where(sb.Equal("offer_id", offerID))
	sb.Limit(1)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var id string
	err := row.Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking offer analysis existence: %w", err)
	}
	return true, nil
}

func (r *Repository) FetchOffersKeywords(ctx context.Context, offerIDs []string) (map[string][]string, error) {
	if len(offerIDs) == 0 {
		return map[string][]string{}, nil
	}

	ids := make([]interface{}, 0, len(offerIDs))
	for _, id := range offerIDs {
		ids = append(ids, id)
	}

	sb := sqlbuilder.Select("offer_id", "keywords")
	sb.From(analysisTable)
	sb.Where(sb.In("offer_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running keywords query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keywords := make(map[string][]string, len(offerIDs))
	for rows.Next() {
		var offerID, encoded string
		if err := rows.Scan(&offerID, &encoded); err != nil {
			return nil, fmt.Errorf("scanning keywords row: %w", err)
		}

		var decoded []string
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			return nil, fmt.Errorf("decoding keywords for offer [%s]: %w", offerID, err)
		}
		keywords[offerID] = decoded
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating keywords rows: %w", err)
	}

	return keywords, nil
}

func (r *Repository) InsertHistory(ctx context.Context, entry domain.HistoryEntry) error {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto(historyTable)
	ib.Cols("id_offer", "id_user", "type")
	ib.Values(entry.OfferID, entry.UserID, string(entry.Type))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

func (r *Repository) ListUserOfferIDs(
	ctx context.Context,
	userID string,
	historyType domain.HistoryType,
) ([]string, error) {
	sb := sqlbuilder.Select("id_offer")
	sb.From(historyTable)
	sb.Where(
		sb.Equal("id_user", userID),
		sb.Equal("type", string(historyType)),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running history query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	offerIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		offerIDs = append(offerIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return offerIDs, nil
}

func (r *Repository) GetOfferOwner(ctx context.Context, offerID string) (string, error) {
	sb := sqlbuilder.Select("id_user")
	sb.From(historyTable)
	sb.Where(
		sb.Equal("id_offer", offerID),
		sb.Equal("type", string(domain.HistoryPublication)),
	)
	sb.Limit(1)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var userID string
	err := row.Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up offer owner: %w", err)
	}
	return userID, nil
}
