package parser_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/fast800/internal/parser"
	"github.com/limbo/fast800/pkg/entity"
)

func reply(text string) string {
	body, _ := sonic.ConfigDefault.MarshalToString(parser.GeminiResponse{
		Candidates: []parser.Candidate{{Content: parser.Content{Parts: []parser.Part{{Text: text}}}}},
	})
	return body
}

func newClient(t *testing.T, h http.HandlerFunc, retries uint64) *parser.GeminiClient {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return parser.NewGeminiClient(parser.Config{
		APIKey:        "key",
		BaseURL:       srv.URL,
		MaxRetries:    retries,
		RetryInterval: time.Millisecond,
	})
}

func TestParseRecipeText(t *testing.T) {
	var got parser.GeminiRequest
	gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, sonic.ConfigDefault.Unmarshal(raw, &got))
		io.WriteString(w, reply("Sure!\n```json\n{\"name\":\"Lentil soup\",\"calories\":310,\"ingredients\":[\"200 g lentils\"],\"type\":\"Lunch\"}\n```"))
	}, 0)

	draft, err := gc.ParseRecipeText(context.Background(), "lentil soup with carrots")
	require.NoError(t, err)
	assert.Equal(t, "Lentil soup", draft.Name)
	assert.Equal(t, 310.0, draft.Calories)
	assert.Equal(t, []string{"200 g lentils"}, draft.Ingredients)
	require.Len(t, got.Contents, 1)
	assert.Contains(t, got.Contents[0].Parts[0].Text, "lentil soup with carrots")
}

func TestParseRecipeImageSendsInlineData(t *testing.T) {
	var got parser.GeminiRequest
	gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, sonic.ConfigDefault.Unmarshal(raw, &got))
		io.WriteString(w, reply(`{"name":"Salad","calories":150}`))
	}, 0)

	draft, err := gc.ParseRecipeImage(context.Background(), []byte("jpg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Salad", draft.Name)
	require.Len(t, got.Contents[0].Parts, 2)
	inline := got.Contents[0].Parts[1].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/jpeg", inline.MimeType)
	assert.Equal(t, "anBn", inline.Data)
}

func TestAnalyzeFoodLog(t *testing.T) {
	gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, reply(`{"foods":[{"name":"banana","calories":105},{"name":"coffee with milk","calories":40}]}`))
	}, 0)
	foods, err := gc.AnalyzeFoodLog(context.Background(), "banana and a latte")
	require.NoError(t, err)
	assert.Equal(t, []entity.FoodEstimate{{Name: "banana", Calories: 105}, {Name: "coffee with milk", Calories: 40}}, foods)
}

func TestParseIngredientsFillsOriginalText(t *testing.T) {
	gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, reply(`{"ingredients":[{"name":"egg","quantity":2,"unit":""},{"original_text":"50 g feta","name":"feta","quantity":50,"unit":"g"}]}`))
	}, 0)
	res, err := gc.ParseIngredients(context.Background(), []string{"2 eggs", "50 g feta"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "2 eggs", res[0].OriginalText)
	assert.Equal(t, "50 g feta", res[1].OriginalText)

	empty, err := gc.ParseIngredients(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRetries(t *testing.T) {
	testCases := []struct {
		Desc          string
		Statuses      []int
		Retries       uint64
		ExpectError   bool
		ExpectedCalls int32
	}{
		{
			Desc:          "recovers after server errors",
			Statuses:      []int{http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusOK},
			Retries:       3,
			ExpectedCalls: 3,
		},
		{
			Desc:          "gives up after max retries",
			Statuses:      []int{500, 500, 500, 500},
			Retries:       2,
			ExpectError:   true,
			ExpectedCalls: 3,
		},
		{
			Desc:          "client errors aren't retried",
			Statuses:      []int{http.StatusBadRequest, http.StatusOK},
			Retries:       3,
			ExpectError:   true,
			ExpectedCalls: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var calls atomic.Int32
			gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				status := tc.Statuses[n-1]
				if status != http.StatusOK {
					w.WriteHeader(status)
					io.WriteString(w, `{"error":"nope"}`)
					return
				}
				io.WriteString(w, reply(`{"foods":[]}`))
			}, tc.Retries)

			foods, err := gc.AnalyzeFoodLog(context.Background(), "tea")
			assert.Equal(t, tc.ExpectedCalls, calls.Load())
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, foods)
		})
	}
}

func TestMalformedResponses(t *testing.T) {
	testCases := []struct {
		Desc string
		Body string
	}{
		{Desc: "no candidates", Body: `{"candidates":[]}`},
		{Desc: "blank text", Body: reply("   ")},
		{Desc: "not json", Body: reply("I can't help with that")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var calls atomic.Int32
			gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				io.WriteString(w, tc.Body)
			}, 3)
			_, err := gc.ParseRecipeText(context.Background(), "x")
			assert.Error(t, err)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestCanceledContext(t *testing.T) {
	gc := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gc.ParseIngredients(ctx, []string{"1 onion"})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "canceled"))
}
