package nlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/datasources/mocks"
	"offernlp/internal/domain"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		tagged   []domain.TaggedToken
		tagErr   error
		expected []string
		wantErr  bool
	}{
		{
			name: "keeps_content_words",
			text: "Bicicleta de montaña roja",
			tagged: []domain.TaggedToken{
				{Text: "bicicleta", POS: "NOUN"},
				{Text: "de", POS: "ADP", IsStopword: true},
				{Text: "montaña", POS: "NOUN"},
				{Text: "roja", POS: "ADJ"},
			},
			expected: []string{"bicicleta", "montaña", "roja"},
		},
		{
			name: "drops_stopwords_regardless_of_pos",
			text: "una casa",
			tagged: []domain.TaggedToken{
				{Text: "una", POS: "NOUN", IsStopword: true},
				{Text: "casa", POS: "NOUN"},
			},
			expected: []string{"casa"},
		},
		{
			name: "drops_short_tokens",
			text: "tv lg grande",
			tagged: []domain.TaggedToken{
				{Text: "tv", POS: "NOUN"},
				{Text: "lg", POS: "PROPN"},
				{Text: "grande", POS: "ADJ"},
			},
			expected: []string{"grande"},
		},
		{
			name: "drops_non_content_pos",
			text: "vendo rápido",
			tagged: []domain.TaggedToken{
				{Text: "vendo", POS: "VERB"},
				{Text: "rápido", POS: "ADV"},
			},
			expected: []string{},
		},
		{
			name: "deduplicates",
			text: "casa casa casa",
			tagged: []domain.TaggedToken{
				{Text: "casa", POS: "NOUN"},
				{Text: "casa", POS: "NOUN"},
				{Text: "casa", POS: "NOUN"},
			},
			expected: []string{"casa"},
		},
		{
			name:    "tagger_error",
			text:    "algo",
			tagErr:  errors.New("model server down"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tagger := mocks.NewMockTagger(t)
			tagger.EXPECT().
				TagText(mock.Anything, mock.Anything).
				Return(tc.tagged, tc.tagErr)

			extractor := NewKeywordExtractor(tagger)
			keywords, err := extractor.Extract(context.Background(), tc.text)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, keywords)
		})
	}
}

func TestKeywordExtractor_LowercasesBeforeTagging(t *testing.T) {
	tagger := mocks.NewMockTagger(t)
	tagger.EXPECT().
		TagText(mock.Anything, "bicicleta de montaña").
		Return([]domain.TaggedToken{{Text: "bicicleta", POS: "NOUN"}}, nil)

	extractor := NewKeywordExtractor(tagger)
	keywords, err := extractor.Extract(context.Background(), "Bicicleta DE Montaña")

	require.NoError(t, err)
	assert.Equal(t, []string{"bicicleta"}, keywords)
}
