package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-db/internal/db"
)

func TestRoutes(t *testing.T) {
	s := New(db.Config)
	s.RegisterRoutes()

	tests := []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/schema", http.StatusOK},
		{"/schema/tables/Message", http.StatusOK},
		{"/schema/tables/Nope", http.StatusNotFound},
		{"/schema/surql", http.StatusOK},
		{"/schema/sql", http.StatusOK},
		{"/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	s := New(db.Config)
	s.RegisterRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, "127.0.0.1:0") }()

	require.Eventually(t, func() bool {
		return s.E.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
