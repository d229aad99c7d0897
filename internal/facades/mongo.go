package facades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"

	"github.com/sbilibin2017/gw-admin-status/internal/logger"
	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

// ErrNotConnected is returned by Disconnect when Connect was never called.
var ErrNotConnected = errors.New("mongo client is not connected")

// MongoFacade owns the MongoDB client and exposes its connection state.
type MongoFacade struct {
	uri     string
	dbName  string
	timeout time.Duration
	tracker *ConnectionTracker
	client  *mongo.Client
}

// NewMongoFacade validates uri and resolves the database name. When dbName is
// empty the database from the URI path is used.
func NewMongoFacade(uri, dbName string, connectTimeout time.Duration) (*MongoFacade, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid mongo uri: %w", err)
	}
	if dbName == "" {
		dbName = cs.Database
	}

	return &MongoFacade{
		uri:     uri,
		dbName:  dbName,
		timeout: connectTimeout,
		tracker: NewConnectionTracker(),
	}, nil
}

// Connect dials MongoDB and pings the primary. On failure the client is kept
// so the server monitor can report the connection once it comes up.
func (f *MongoFacade) Connect(ctx context.Context) error {
	f.tracker.MarkConnecting(f.dbName)

	monitor := &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(*event.ServerHeartbeatSucceededEvent) {
			f.tracker.ObserveHeartbeat(true)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			logger.Log.Warnw("mongo heartbeat failed", "address", e.ConnectionID, "error", e.Failure)
			f.tracker.ObserveHeartbeat(false)
		},
	}

	opts := options.Client().
		ApplyURI(f.uri).
		SetConnectTimeout(f.timeout).
		SetServerSelectionTimeout(f.timeout).
		SetServerMonitor(monitor)

	client, err := mongo.Connect(opts)
	if err != nil {
		f.tracker.MarkDisconnected()
		logger.Log.Errorw("failed to create mongo client", "error", err)
		return err
	}
	f.client = client

	pingCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		f.tracker.MarkDisconnected()
		logger.Log.Errorw("mongo ping failed", "db", f.dbName, "error", err)
		return err
	}

	f.tracker.MarkConnected()
	logger.Log.Infow("mongo connected", "db", f.dbName)
	return nil
}

// Disconnect closes the client.
func (f *MongoFacade) Disconnect(ctx context.Context) error {
	if f.client == nil {
		return ErrNotConnected
	}

	f.tracker.MarkDisconnecting()
	err := f.client.Disconnect(ctx)
	f.tracker.MarkDisconnected()
	if err != nil {
		logger.Log.Errorw("mongo disconnect failed", "error", err)
		return err
	}

	logger.Log.Infow("mongo disconnected", "db", f.dbName)
	return nil
}

// CurrentState implements services.StatusProvider.
func (f *MongoFacade) CurrentState(_ context.Context) (models.ConnectionState, bool) {
	return f.tracker.State(), true
}

// CurrentDatabaseName implements services.StatusProvider.
func (f *MongoFacade) CurrentDatabaseName(_ context.Context) (string, bool) {
	return f.tracker.DatabaseName()
}
