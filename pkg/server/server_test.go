package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/video-curator/pkg/models/api"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/models/store"
	"github.com/de-tools/video-curator/pkg/services/batch"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/de-tools/video-curator/pkg/store/client"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiKey = "service-key"

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, topic, subtopic string) ([]domain.Video, error) {
	args := m.Called(ctx, topic, subtopic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

type mockVideoStore struct {
	mock.Mock
}

func (m *mockVideoStore) Upsert(ctx context.Context, rows []store.CuratedVideo) (int64, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(int64), args.Error(1)
}

type staticSource struct {
	items []domain.WorkItem
	err   error
}

func (s staticSource) ListWorkItems(context.Context) ([]domain.WorkItem, error) {
	return s.items, s.err
}

type noPause struct{}

func (noPause) Pause(context.Context) {}

type fixture struct {
	server   *httptest.Server
	searcher *mockSearcher
	store    *mockVideoStore
}

// setupFixture serves the full router; the batch runner calls back into the
// same server's curate endpoint over HTTP.
func setupFixture(t *testing.T, source batch.RecordSource) *fixture {
	f := &fixture{
		searcher: new(mockSearcher),
		store:    new(mockVideoStore),
	}

	var handler http.Handler
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)

	worker, err := client.NewCuratorClient(client.CuratorConfig{
		URL:     f.server.URL + "/api/v1/curate",
		Token:   apiKey,
		Timeout: 5 * time.Second,
	}, f.server.Client())
	require.NoError(t, err)

	handler = ConfigureRouter(Config{
		APIKey: apiKey,
		Dependencies: Dependencies{
			Curator: curator.NewService(f.searcher, f.store),
			Runner:  batch.NewRunner(source, worker, noPause{}),
			Logger:  zerolog.Nop(),
		},
	})

	return f
}

func (f *fixture) post(t *testing.T, path, body string) *http.Response {
	req, err := http.NewRequest(http.MethodPost, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+apiKey)
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func unmarshalBody[T any](t *testing.T, resp *http.Response) T {
	var out T
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestWebAPI_Curate(t *testing.T) {
	f := setupFixture(t, staticSource{})
	f.searcher.On("Search", mock.Anything, "Algebra", "Linear Equations").Return([]domain.Video{}, nil)

	resp := f.post(t, "/api/v1/curate", `{"topicId":1,"topic":"Algebra","subtopic":"Linear Equations"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.CurateResponse{Message: "No videos found for the given topic and subtopic"},
		unmarshalBody[api.CurateResponse](t, resp))
}

func TestWebAPI_Batch_EndToEnd(t *testing.T) {
	items := []domain.WorkItem{
		{ID: 1, Topic: "Algebra", Subtopic: "Linear Equations"},
		{ID: 2, Topic: "", Subtopic: "Orphan"},
		{ID: 3, Topic: "Geometry", Subtopic: "Circles"},
	}
	f := setupFixture(t, staticSource{items: items})
	f.searcher.On("Search", mock.Anything, "Algebra", "Linear Equations").
		Return([]domain.Video{{VideoID: "a"}, {VideoID: "b"}}, nil)
	f.searcher.On("Search", mock.Anything, "Geometry", "Circles").
		Return(nil, &domain.UpstreamServiceError{Service: "YouTube", StatusCode: 403})
	f.store.On("Upsert", mock.Anything, mock.Anything).Return(int64(2), nil)

	resp := f.post(t, "/api/v1/batch", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Batch-Run-Id"))

	report := unmarshalBody[api.BatchReport](t, resp)
	assert.Equal(t, api.BatchReport{
		Total:     3,
		Processed: 1,
		Errors:    2,
		Details: []api.OutcomeDetail{
			{TopicID: 1, Topic: "Algebra", Subtopic: "Linear Equations", Status: "success",
				Message: "Successfully saved 2 videos for Algebra - Linear Equations"},
			{TopicID: 2, Topic: "", Subtopic: "Orphan", Status: "error",
				Message: "Topic and subtopic are required"},
			{TopicID: 3, Topic: "Geometry", Subtopic: "Circles", Status: "error",
				Message: "Failed to search videos"},
		},
	}, report)
}

func TestWebAPI_Batch_SourceFailure(t *testing.T) {
	f := setupFixture(t, staticSource{err: errors.New("relation does not exist")})

	resp := f.post(t, "/api/v1/batch", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, api.ErrorResponse{Error: "Failed to fetch syllabus data"}, unmarshalBody[api.ErrorResponse](t, resp))
	f.searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestWebAPI_RequiresBearerToken(t *testing.T) {
	f := setupFixture(t, staticSource{})

	resp, err := f.server.Client().Post(f.server.URL+"/api/v1/batch", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebAPI_HealthAndMetrics(t *testing.T) {
	f := setupFixture(t, staticSource{})

	resp, err := f.server.Client().Get(f.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.HealthResponse{Status: "ok"}, unmarshalBody[api.HealthResponse](t, resp))

	metrics, err := f.server.Client().Get(f.server.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	body, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
	assert.Contains(t, string(body), "curator_http_requests_total")
}

func TestNewWebAPI_DefaultShutdownTimeout(t *testing.T) {
	w := NewWebAPI(Config{Addr: ":0"})
	assert.Equal(t, defaultShutdownTimeout, w.shutdownTimeout)
	assert.Equal(t, ":0", w.server.Addr)
}

func TestWebAPI_CuratePanic_ReportsInternalError(t *testing.T) {
	item := domain.WorkItem{ID: 7, Topic: "Algebra", Subtopic: "Matrices"}
	f := setupFixture(t, staticSource{items: []domain.WorkItem{item}})
	f.searcher.On("Search", mock.Anything, "Algebra", "Matrices").
		Run(func(mock.Arguments) { panic("nil snippet") }).
		Return(nil, nil)

	resp := f.post(t, "/api/v1/curate", `{"topicId":7,"topic":"Algebra","subtopic":"Matrices"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, api.ErrorResponse{Error: "Internal server error"}, unmarshalBody[api.ErrorResponse](t, resp))

	batchResp := f.post(t, "/api/v1/batch", "")
	require.Equal(t, http.StatusOK, batchResp.StatusCode)
	report := unmarshalBody[api.BatchReport](t, batchResp)
	require.Len(t, report.Details, 1)
	assert.Equal(t, api.OutcomeDetail{
		TopicID:  7,
		Topic:    "Algebra",
		Subtopic: "Matrices",
		Status:   "error",
		Message:  "Internal server error",
	}, report.Details[0])
}
