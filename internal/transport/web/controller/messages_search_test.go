package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/command"
	"offernlp/internal/datasources"
	"offernlp/internal/datasources/mocks"
)

func TestMessagesSearch_ServeHTTP(t *testing.T) {
	t.Run("result_count_and_filters_forwarded", func(t *testing.T) {
		embedder := mocks.NewMockEmbedder(t)
		embedder.EXPECT().
			EmbedText(mock.Anything, mock.Anything).
			Return([]float32{1, 0}, nil)

		vectors := mocks.NewMockVectorStore(t)
		vectors.EXPECT().
			Query(mock.Anything, datasources.CollectionMessages, mock.Anything, 5, map[string]string{
				"conversation_id": "7_9",
			}).
			Return([]datasources.VectorMatch{
				{ID: "m1", Distance: 0.5, Metadata: map[string]string{"message_id": "m1"}},
			}, nil)

		handler := MessagesSearch{
			Search: &command.SearchMessages{Embedder: embedder, Vectors: vectors},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/messages/search?query=bicicleta&n=5&conversation_id=7_9", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response messagesSearchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, 1, response.Total)
		assert.Equal(t, "m1", response.Results[0].MessageID)
	})

	t.Run("bad_result_count", func(t *testing.T) {
		handler := MessagesSearch{}

		req := httptest.NewRequest(http.MethodGet, "/v1/messages/search?query=bicicleta&n=abc", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
