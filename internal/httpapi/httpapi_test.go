package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studyhub/internal/app"
	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/config"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/store"
)

type testAPI struct {
	t    *testing.T
	core *app.App
	h    http.Handler
}

func newTestAPI(t *testing.T, mutate func(*config.Config)) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreDSN = ":memory:"
	if mutate != nil {
		mutate(cfg)
	}

	st, err := store.Open(context.Background(), cfg.StoreDriver, cfg.StoreDSN, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	core := app.Wire(cfg, st, logging.NopLogger{}, nil)
	return &testAPI{t: t, core: core, h: NewRouter(core, logging.NopLogger{})}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// fakeDeepSeek answers every chat completion with reply, or with status when
// it is not 200.
func fakeDeepSeek(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"authentication_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "deepseek-chat",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, nil)
	rec := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestFlashcardsCRUD(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodGet, "/flashcards", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = api.do(http.MethodPost, "/flashcards", `{"question":"What is H2O?","answer":"Water","category":"chemistry"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Flashcard](t, rec)
	assert.Equal(t, models.CategoryChemistry, created.Category)
	assert.NotEmpty(t, created.ID)

	rec = api.do(http.MethodGet, "/flashcards?category=Chemistry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Flashcard](t, rec), 1)

	rec = api.do(http.MethodGet, "/flashcards?category=History", "")
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = api.do(http.MethodPut, "/flashcards/"+created.ID, `{"answer":"Water (dihydrogen monoxide)"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Flashcard](t, rec)
	assert.Equal(t, "What is H2O?", updated.Question)
	assert.Equal(t, "Water (dihydrogen monoxide)", updated.Answer)

	rec = api.do(http.MethodGet, "/flashcards/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated.Answer, decodeBody[models.Flashcard](t, rec).Answer)

	rec = api.do(http.MethodDelete, "/flashcards/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/flashcards/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFlashcard_BadInput(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodPost, "/flashcards", `{"question":"  ","answer":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/flashcards", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad json"}`, rec.Body.String())
}

func TestStudy(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodGet, "/study", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	api.do(http.MethodPost, "/flashcards", `{"question":"Q1","answer":"A1"}`)
	api.do(http.MethodPost, "/flashcards", `{"question":"Q2","answer":"A2"}`)

	rec = api.do(http.MethodGet, "/study", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[studyResp](t, rec)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, "Q1", got.Cards[0].Question)
}

func TestPosts(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodPost, "/posts", `{"title":"Tips","content":"Sleep well","category":"History"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decodeBody[models.Post](t, rec)
	assert.Equal(t, models.DefaultAuthor, first.Author)
	assert.NotNil(t, first.Comments)

	rec = api.do(http.MethodPost, "/posts", `{"title":"Other","content":"Read more"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(http.MethodPost, "/posts/"+first.ID+"/like", "")
	require.Equal(t, http.StatusOK, rec.Code)
	liked := decodeBody[models.Post](t, rec)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.Likes)

	rec = api.do(http.MethodGet, "/posts?sort=popular", "")
	require.Equal(t, http.StatusOK, rec.Code)
	posts := decodeBody[[]models.Post](t, rec)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)

	rec = api.do(http.MethodGet, "/posts?category=History", "")
	assert.Len(t, decodeBody[[]models.Post](t, rec), 1)

	rec = api.do(http.MethodGet, "/posts?sort=random", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodDelete, "/posts/"+first.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodPost, "/posts/"+first.ID+"/like", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryFilter_ExactMatch(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodPost, "/flashcards", `{"question":"H2O?","answer":"Water","category":"Chemistry"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = api.do(http.MethodPost, "/posts", `{"title":"Misc","content":"Anything","category":"Astrology"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, models.CategoryOther, decodeBody[models.Post](t, rec).Category)

	for _, path := range []string{
		"/flashcards?category=chemistry",
		"/flashcards?category=Bogus",
		"/study?category=Bogus",
		"/posts?category=other",
		"/posts?category=Astrology",
	} {
		rec = api.do(http.MethodGet, path, "")
		if path == "/study?category=Bogus" {
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
			continue
		}
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, "[]", rec.Body.String(), path)
	}

	rec = api.do(http.MethodGet, "/flashcards?category=Chemistry", "")
	assert.Len(t, decodeBody[[]models.Flashcard](t, rec), 1)
	rec = api.do(http.MethodGet, "/posts?category=Other", "")
	assert.Len(t, decodeBody[[]models.Post](t, rec), 1)
	rec = api.do(http.MethodGet, "/posts?category=all", "")
	assert.Len(t, decodeBody[[]models.Post](t, rec), 1)
}

func TestWrites_RequireJSONContentType(t *testing.T) {
	api := newTestAPI(t, func(c *config.Config) { c.CORSAllowedOrigins = []string{"http://localhost:5173"} })

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"Spam","content":"Buy now"}`))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	api.h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/keys/deepseek", strings.NewReader(`{"key":"sk-evil"}`))
	rec = httptest.NewRecorder()
	api.h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = api.do(http.MethodGet, "/posts", "")
	assert.JSONEq(t, "[]", rec.Body.String())
	key, err := api.core.Credentials.Get(context.Background(), common.ProviderDeepSeek)
	require.NoError(t, err)
	assert.Empty(t, key)

	req = httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"Tips","content":"Sleep well"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec = httptest.NewRecorder()
	api.h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGenerate_RefusesLocalDocument(t *testing.T) {
	srv := fakeDeepSeek(t, http.StatusOK, "QUESTION: Secret?\nANSWER: Leaked")
	api := newTestAPI(t, func(c *config.Config) { c.AIBaseURL = srv.URL + "/v1" })
	require.NoError(t, api.core.Credentials.Set(context.Background(), common.ProviderDeepSeek, "sk-test"))

	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("private notes"), 0o600))

	rec := api.do(http.MethodPost, "/flashcards/generate", `{"document":"`+path+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "s3://")

	rec = api.do(http.MethodGet, "/flashcards", "")
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestChat_MissingKeyIs428(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodPost, "/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusPreconditionRequired, rec.Code)

	body := decodeBody[errorBody](t, rec)
	require.NotNil(t, body.Provider)
	assert.Equal(t, common.ProviderDeepSeek, body.Provider.Provider)
	assert.Equal(t, "https://platform.deepseek.com/api_keys", body.Provider.Link)

	rec = api.do(http.MethodGet, "/chat", "")
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestChat_SendAndHistory(t *testing.T) {
	srv := fakeDeepSeek(t, http.StatusOK, "Mitochondria make ATP.")
	api := newTestAPI(t, func(c *config.Config) { c.AIBaseURL = srv.URL + "/v1" })

	rec := api.do(http.MethodPut, "/keys/deepseek", `{"key":"sk-test"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodPost, "/chat", `{"message":"What do mitochondria do?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	reply := decodeBody[models.ChatMessage](t, rec)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Mitochondria make ATP.", reply.Content)

	rec = api.do(http.MethodGet, "/chat", "")
	assert.Len(t, decodeBody[[]models.ChatMessage](t, rec), 2)

	rec = api.do(http.MethodPost, "/chat", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  string
		body   string
		want   int
		cards  int
	}{
		{
			name:   "topic",
			status: http.StatusOK,
			reply:  "QUESTION: What is a cell?\nANSWER: The unit of life\nQUESTION: What is DNA?\nANSWER: Genetic code",
			body:   `{"topic":"cell biology"}`,
			want:   http.StatusCreated,
			cards:  2,
		},
		{
			name:   "raw document text",
			status: http.StatusOK,
			reply:  "QUESTION: Main idea?\nANSWER: Revolution",
			body:   `{"text":"The French Revolution began in 1789."}`,
			want:   http.StatusCreated,
			cards:  1,
		},
		{
			name:   "unparseable reply",
			status: http.StatusOK,
			reply:  "I would rather not.",
			body:   `{"topic":"cells","quick":true}`,
			want:   http.StatusUnprocessableEntity,
		},
		{
			name:   "remote failure",
			status: http.StatusUnauthorized,
			body:   `{"topic":"cells"}`,
			want:   http.StatusBadGateway,
		},
		{
			name:   "non-s3 document",
			status: http.StatusOK,
			body:   `{"document":"notes.pdf"}`,
			want:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeDeepSeek(t, tt.status, tt.reply)
			api := newTestAPI(t, func(c *config.Config) { c.AIBaseURL = srv.URL + "/v1" })
			require.NoError(t, api.core.Credentials.Set(context.Background(), common.ProviderDeepSeek, "sk-test"))

			rec := api.do(http.MethodPost, "/flashcards/generate", tt.body)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			if tt.want == http.StatusCreated {
				assert.Len(t, decodeBody[[]models.Flashcard](t, rec), tt.cards)
			}
		})
	}
}

func TestVideos_EmptyTopic(t *testing.T) {
	api := newTestAPI(t, nil)
	require.NoError(t, api.core.Credentials.Set(context.Background(), common.ProviderYouTube, "yt-key"))

	rec := api.do(http.MethodGet, "/videos", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKeys(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodPut, "/keys/YouTube", `{"key":"yt-secret-key"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(http.MethodGet, "/keys", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "yt-secret-key")

	keys := decodeBody[[]keyStatus](t, rec)
	require.Len(t, keys, 2)
	assert.Equal(t, common.ProviderYouTube, keys[0].Provider)
	assert.True(t, keys[0].Configured)
	assert.False(t, keys[1].Configured)

	rec = api.do(http.MethodPut, "/keys/github", `{"key":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPut, "/keys/deepseek", `{"key":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	api := newTestAPI(t, nil)
	api.do(http.MethodPost, "/flashcards", `{"question":"Q","answer":"A"}`)
	api.do(http.MethodPost, "/posts", `{"title":"T","content":"C"}`)

	rec := api.do(http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Stats{Flashcards: 1, Posts: 1}, decodeBody[models.Stats](t, rec))
}

func TestCORS(t *testing.T) {
	api := newTestAPI(t, func(c *config.Config) { c.CORSAllowedOrigins = []string{"http://localhost:5173"} })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	api.h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	plain := newTestAPI(t, nil)
	rec = httptest.NewRecorder()
	plain.h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{common.NewValidationError("title", ""), http.StatusBadRequest},
		{&common.NotFoundError{ID: "x"}, http.StatusNotFound},
		{&common.MissingCredentialError{Provider: "youtube"}, http.StatusPreconditionRequired},
		{&common.ParseError{}, http.StatusUnprocessableEntity},
		{&common.RemoteError{Provider: "deepseek", StatusCode: 500}, http.StatusBadGateway},
		{&common.StorageError{Op: "write", Key: "flashcards"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}
