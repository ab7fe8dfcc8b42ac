package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servvia/servvia/pkg/conversation"
	"github.com/servvia/servvia/pkg/pipeline"
)

type stubAnswerer struct {
	lastUser  string
	lastQuery string
}

func (s *stubAnswerer) Answer(_ context.Context, userID, query string) pipeline.Envelope {
	s.lastUser = userID
	s.lastQuery = query
	return pipeline.Envelope{
		FinalResponseText: "try ginger tea",
		Intent:            pipeline.IntentNormal,
		CurrentCondition:  "headache",
	}
}

func newTestServer(t *testing.T) (*Server, *stubAnswerer, *conversation.Store) {
	t.Helper()
	logger := log.New(io.Discard)
	store := conversation.NewStore(conversation.NewMemoryBackend(), logger, conversation.Options{})
	answerer := &stubAnswerer{}
	return NewServer(logger, answerer, store), answerer, store
}

func TestChatEndpoint(t *testing.T) {
	srv, answerer, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"user_id":"u1","query":"I have a headache"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", answerer.lastUser)
	assert.Equal(t, "I have a headache", answerer.lastQuery)

	var env pipeline.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "try ginger tea", env.FinalResponseText)
	assert.Equal(t, pipeline.IntentNormal, env.Intent)
}

func TestChatEndpointRejectsMissingFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, body := range []string{`{}`, `{"user_id":"u1"}`, `{"query":"hi"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestClearEndpoint(t *testing.T) {
	srv, _, store := newTestServer(t)
	ctx := context.Background()

	store.SetContext(ctx, "u2", conversation.UserContext{Herbs: []string{"ginger"}})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/clear",
		strings.NewReader(`{"user_id":"u2"}`))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Context(ctx, "u2").Herbs)
}

func TestContextEndpoint(t *testing.T) {
	srv, _, store := newTestServer(t)

	store.SetContext(context.Background(), "u3", conversation.UserContext{
		Medications: []string{"warfarin"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/context?user_id=u3", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Context conversation.UserContext `json:"context"`
		Summary string                   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload.Context.Medications, "warfarin")
	assert.Contains(t, payload.Summary, "warfarin")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
