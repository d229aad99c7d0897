package facades

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

func TestNewMongoFacade_DatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		dbName   string
		wantName string
		wantOK   bool
	}{
		{"from uri", "mongodb://localhost:27017/test", "", "test", true},
		{"explicit wins", "mongodb://localhost:27017/test", "admin", "admin", true},
		{"none", "mongodb://localhost:27017", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewMongoFacade(tt.uri, tt.dbName, time.Second)
			require.NoError(t, err)

			state, ok := f.CurrentState(context.Background())
			assert.True(t, ok)
			assert.Equal(t, models.StateDisconnected, state)

			// the name is only reported once the connection is up
			f.tracker.MarkConnecting(f.dbName)
			_, ok = f.CurrentDatabaseName(context.Background())
			assert.False(t, ok)

			f.tracker.MarkConnected()
			name, ok := f.CurrentDatabaseName(context.Background())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestNewMongoFacade_InvalidURI(t *testing.T) {
	f, err := NewMongoFacade("postgres://localhost/test", "", time.Second)
	assert.Error(t, err)
	assert.Nil(t, f)
}

func TestMongoFacade_DisconnectWithoutConnect(t *testing.T) {
	f, err := NewMongoFacade("mongodb://localhost:27017/test", "", time.Second)
	require.NoError(t, err)

	assert.ErrorIs(t, f.Disconnect(context.Background()), ErrNotConnected)
}

func TestMongoFacade_ConnectUnreachable(t *testing.T) {
	f, err := NewMongoFacade("mongodb://127.0.0.1:1/test", "", 300*time.Millisecond)
	require.NoError(t, err)

	err = f.Connect(context.Background())
	assert.Error(t, err)

	state, _ := f.CurrentState(context.Background())
	assert.Equal(t, models.StateDisconnected, state)
	name, ok := f.CurrentDatabaseName(context.Background())
	assert.False(t, ok)
	assert.Empty(t, name)

	assert.NoError(t, f.Disconnect(context.Background()))
	state, _ = f.CurrentState(context.Background())
	assert.Equal(t, models.StateDisconnected, state)
}

func setupMongoContainer(t *testing.T) (string, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "27017")

	uri := fmt.Sprintf("mongodb://%s:%d/test", host, port.Int())

	teardown := func() {
		container.Terminate(context.Background())
	}
	return uri, teardown
}

func TestMongoFacade_ConnectAndDisconnect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	uri, teardown := setupMongoContainer(t)
	defer teardown()

	f, err := NewMongoFacade(uri, "", 10*time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, f.Connect(ctx))

	state, _ := f.CurrentState(ctx)
	assert.Equal(t, models.StateConnected, state)
	name, ok := f.CurrentDatabaseName(ctx)
	assert.True(t, ok)
	assert.Equal(t, "test", name)

	require.NoError(t, f.Disconnect(ctx))
	state, _ = f.CurrentState(ctx)
	assert.Equal(t, models.StateDisconnected, state)
}
