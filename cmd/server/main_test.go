package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-admin-status/internal/config"
	"github.com/sbilibin2017/gw-admin-status/internal/models"
	"github.com/sbilibin2017/gw-admin-status/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"cmd"}, "config.env"},
		{"custom", []string{"cmd", "-c", "myconfig.env"}, "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.want, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Date: 2025-09-26")
}

type fakeProvider struct {
	state models.ConnectionState
	name  string
}

func (p fakeProvider) CurrentState(context.Context) (models.ConnectionState, bool) {
	return p.state, true
}

func (p fakeProvider) CurrentDatabaseName(context.Context) (string, bool) {
	return p.name, p.name != ""
}

func TestNewRouter(t *testing.T) {
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}}

	tests := []struct {
		name         string
		provider     services.StatusProvider
		path         string
		expectedCode int
		expectedBody string
		contains     string
	}{
		{
			name:         "liveness",
			path:         "/health",
			expectedCode: http.StatusOK,
			expectedBody: `{"ok":true}`,
		},
		{
			name:         "connected database",
			provider:     fakeProvider{state: models.StateConnected, name: "test"},
			path:         "/mongo-status",
			expectedCode: http.StatusOK,
			expectedBody: `{"ok":true,"state":1,"stateText":"connected","db":"test"}`,
		},
		{
			name:         "unrecognized state",
			provider:     fakeProvider{state: models.ConnectionState(42)},
			path:         "/mongo-status",
			expectedCode: http.StatusOK,
			expectedBody: `{"ok":true,"state":42,"stateText":"unknown","db":null}`,
		},
		{
			name:         "no database configured",
			path:         "/mongo-status",
			expectedCode: http.StatusOK,
			expectedBody: `{"ok":true,"stateText":"unknown","db":null}`,
		},
		{
			name:         "metrics",
			path:         "/metrics",
			expectedCode: http.StatusOK,
			contains:     "db_connection_state",
		},
		{
			name:         "swagger document",
			path:         "/swagger/doc.json",
			expectedCode: http.StatusOK,
			contains:     "/mongo-status",
		},
		{
			name:         "unknown route",
			path:         "/nope",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(cfg, services.NewStatusService(tt.provider))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.contains != "" {
				assert.True(t, strings.Contains(w.Body.String(), tt.contains), w.Body.String())
			}
		})
	}
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	cfg := &config.Config{
		AppHost:            "127.0.0.1",
		AppPort:            "0",
		LogLevel:           "error",
		ShutdownTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
		MongoEnabled:       false,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, run(ctx, cfg))
}

func TestRun_InvalidLogLevel(t *testing.T) {
	cfg := &config.Config{LogLevel: "chatty"}
	assert.Error(t, run(context.Background(), cfg))
}

func TestRun_InvalidMongoURI(t *testing.T) {
	cfg := &config.Config{
		LogLevel:     "error",
		MongoEnabled: true,
		MongoURI:     "not-a-uri",
	}
	assert.Error(t, run(context.Background(), cfg))
}
