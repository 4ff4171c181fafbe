package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alfredoptarigan/cv-screener/internal/models"
	svcmocks "alfredoptarigan/cv-screener/internal/services/mocks"
)

func TestWebhookNotifier_Notify(t *testing.T) {
	received := make(chan models.CVUploadedPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		var payload models.CVUploadedPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(map[models.EventType]string{
		models.EventCVUploaded: server.URL + "/upload",
	}, 2*time.Second)

	notifier.Notify(context.Background(), models.Event{
		Type: models.EventCVUploaded,
		Payload: models.CVUploadedPayload{
			FileName:  "cv.pdf",
			FilePath:  "owner/1-cv.pdf",
			FileSize:  2048,
			UserEmail: "hr@example.com",
		},
	})

	select {
	case payload := <-received:
		assert.Equal(t, "cv.pdf", payload.FileName)
		assert.Equal(t, "owner/1-cv.pdf", payload.FilePath)
		assert.Equal(t, int64(2048), payload.FileSize)
		assert.Equal(t, "hr@example.com", payload.UserEmail)
	default:
		t.Fatal("webhook was not called")
	}
}

func TestWebhookNotifier_SkipsUnconfiguredEvents(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(map[models.EventType]string{
		models.EventCVUploaded: server.URL,
	}, time.Second)

	notifier.Notify(context.Background(), models.Event{Type: models.EventScreeningStarted})
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestWebhookNotifier_FailuresAreSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(map[models.EventType]string{
		models.EventSelectionFinished: server.URL,
	}, time.Second)

	assert.NotPanics(t, func() {
		notifier.Notify(context.Background(), models.Event{Type: models.EventSelectionFinished, Payload: models.SelectionPayload{}})
	})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	w := notifier.(*webhookNotifier)
	require.Error(t, w.post(ctx, server.URL, nil))
}

func TestMultiNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := models.Event{Type: models.EventCVUploaded}
	first := svcmocks.NewMockNotifier(ctrl)
	second := svcmocks.NewMockNotifier(ctrl)
	gomock.InOrder(
		first.EXPECT().Notify(gomock.Any(), event),
		second.EXPECT().Notify(gomock.Any(), event),
	)

	NewMultiNotifier(first, NewNopNotifier(), second).Notify(context.Background(), event)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "cv.cv_uploaded", RoutingKey(models.EventCVUploaded))
	assert.Equal(t, "cv.run_ai_screening", RoutingKey(models.EventScreeningStarted))
}
