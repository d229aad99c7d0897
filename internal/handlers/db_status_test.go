package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

func TestDBStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDBStatuser(ctrl)

	state := func(v int) *int { return &v }
	name := func(v string) *string { return &v }

	tests := []struct {
		name         string
		status       models.DBStatusResponse
		expectedBody string
	}{
		{
			name: "connected",
			status: models.DBStatusResponse{
				OK: true, State: state(1), StateText: "connected", DB: name("test"),
			},
			expectedBody: `{"ok":true,"state":1,"stateText":"connected","db":"test"}`,
		},
		{
			name: "disconnected",
			status: models.DBStatusResponse{
				OK: true, State: state(0), StateText: "disconnected", DB: name("test"),
			},
			expectedBody: `{"ok":true,"state":0,"stateText":"disconnected","db":"test"}`,
		},
		{
			name: "unrecognized state",
			status: models.DBStatusResponse{
				OK: true, State: state(7), StateText: "unknown",
			},
			expectedBody: `{"ok":true,"state":7,"stateText":"unknown","db":null}`,
		},
		{
			name: "no connection",
			status: models.DBStatusResponse{
				OK: true, StateText: "unknown",
			},
			expectedBody: `{"ok":true,"stateText":"unknown","db":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().DBStatus(gomock.Any()).Return(tt.status)

			req := httptest.NewRequest(http.MethodGet, "/mongo-status", nil)
			w := httptest.NewRecorder()

			NewDBStatusHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
