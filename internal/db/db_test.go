package db

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrest "github.com/supabase-community/postgrest-go"

	"vidspark/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
}

// fakePostgREST answers every request with the given status and body and
// records what it received.
type fakePostgREST struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	query := map[string]string{}
	for k, v := range r.URL.Query() {
		query[k] = v[0]
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: query, Body: body})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Range", "0-0/1")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakePostgREST) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, status int, body string) (*Client, *fakePostgREST) {
	t.Helper()
	fake := &fakePostgREST{status: status, body: body}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	rest := postgrest.NewClient(srv.URL+"/rest/v1", "", map[string]string{"apikey": "test"})
	require.NoError(t, rest.ClientError)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(rest, logger), fake
}

func TestGetVideo(t *testing.T) {
	id := uuid.New()
	client, fake := newTestClient(t, http.StatusOK, `[{
		"id": "`+id.String()+`",
		"title": "Dragons",
		"status": "ready",
		"scenes": {"1": {"text": "b"}, "0": {"text": "a", "captions": [{"text": "a", "start": 0, "end": 1.5}]}}
	}]`)

	video, err := client.GetVideo(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, video.ID)
	assert.Equal(t, "Dragons", video.Title)
	assert.Equal(t, []int{0, 1}, video.Scenes.Indices())
	assert.Equal(t, 1.5, video.Scenes[0].Captions[0].End)

	req := fake.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/rest/v1/videos", req.Path)
	assert.Equal(t, "eq."+id.String(), req.Query["id"])
}

func TestGetVideo_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.GetVideo(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetVideo_ServerError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusInternalServerError, `{"code": "XX000", "message": "boom"}`)

	_, err := client.GetVideo(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetVideo_CanceledContext(t *testing.T) {
	client, fake := newTestClient(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetVideo(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.requests)
}

func TestSaveTimeline(t *testing.T) {
	videoID := uuid.New()
	client, fake := newTestClient(t, http.StatusCreated, `[{"video_id": "`+videoID.String()+`"}]`)

	err := client.SaveTimeline(context.Background(), models.VideoTimeline{
		VideoID:          videoID,
		FrameRate:        30,
		DurationInFrames: 210,
		Entries: []models.TimelineFrame{
			{Index: 0, StartFrame: 0, DurationInFrames: 60},
			{Index: 1, StartFrame: 60, DurationInFrames: 150},
		},
	})
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/v1/video_timelines", req.Path)

	var sent models.VideoTimeline
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, 210, sent.DurationInFrames)
	assert.Len(t, sent.Entries, 2)
}

func TestCreateJobRecord(t *testing.T) {
	client, fake := newTestClient(t, http.StatusCreated, `[{"job_id": "x", "status": "PENDING"}]`)

	jobID, err := client.CreateJobRecord(context.Background(), models.JobTypeBuildTimeline, map[string]string{"video_id": "v1"})
	require.NoError(t, err)
	_, err = uuid.Parse(jobID)
	assert.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/v1/video_job_statuses", req.Path)

	var sent models.VideoJobStatus
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, jobID, sent.JobID)
	assert.Equal(t, models.JobPending, sent.Status)
	assert.JSONEq(t, `{"video_id": "v1"}`, string(sent.InputPayload))
}

func TestCreateJobRecord_EmptyRepresentation(t *testing.T) {
	client, _ := newTestClient(t, http.StatusCreated, `[]`)

	_, err := client.CreateJobRecord(context.Background(), models.JobTypeBuildTimeline, nil)
	assert.Error(t, err)
}

func TestUpdateJobStatus(t *testing.T) {
	client, fake := newTestClient(t, http.StatusOK, `[{"job_id": "job-1", "status": "FAILED"}]`)

	err := client.UpdateJobStatus(context.Background(), "job-1", models.JobFailed, map[string]int{"scenes": 2}, "ffprobe missing")
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "eq.job-1", req.Query["job_id"])

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, models.JobFailed, sent["status"])
	assert.Equal(t, "ffprobe missing", sent["error_message"])
	assert.Equal(t, map[string]interface{}{"scenes": float64(2)}, sent["output_details"])
}

func TestUpdateJobStatus_UnknownJob(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[]`)

	err := client.UpdateJobStatus(context.Background(), "missing", models.JobCompleted, nil, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJob(t *testing.T) {
	client, fake := newTestClient(t, http.StatusOK, `[{"job_id": "job-9", "job_type": "BUILD_TIMELINE", "status": "COMPLETED", "output_details": {"duration_in_frames": 210}}]`)

	job, err := client.GetJob(context.Background(), "job-9")
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, job.Status)
	assert.JSONEq(t, `{"duration_in_frames": 210}`, string(job.OutputDetails))
	assert.Equal(t, "eq.job-9", fake.last(t).Query["job_id"])

	client, _ = newTestClient(t, http.StatusOK, `[]`)
	_, err = client.GetJob(context.Background(), "job-9")
	assert.ErrorIs(t, err, ErrNotFound)
}
