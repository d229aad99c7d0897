package services

import (
	"context"

	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=services

// StatusProvider is a read-only view of a database connection.
type StatusProvider interface {
	// CurrentState reports the state code; ok is false when there is no
	// connection object to read.
	CurrentState(ctx context.Context) (state models.ConnectionState, ok bool)
	// CurrentDatabaseName reports the connected database name, if known.
	CurrentDatabaseName(ctx context.Context) (name string, ok bool)
}

// StatusService builds dependency status reports.
type StatusService struct {
	provider StatusProvider
}

// NewStatusService creates a StatusService. provider may be nil, in which
// case every report is unknown.
func NewStatusService(provider StatusProvider) *StatusService {
	return &StatusService{provider: provider}
}

// DBStatus reads the provider at call time. It never fails: a missing
// provider or state degrades to "unknown" and a null database name.
func (svc *StatusService) DBStatus(ctx context.Context) models.DBStatusResponse {
	resp := models.DBStatusResponse{
		OK:        true,
		StateText: models.StateUnknown,
	}
	if svc.provider == nil {
		return resp
	}

	if state, ok := svc.provider.CurrentState(ctx); ok {
		code := int(state)
		resp.State = &code
		resp.StateText = models.StateLabel(state)
	}

	if name, ok := svc.provider.CurrentDatabaseName(ctx); ok {
		resp.DB = &name
	}

	return resp
}
