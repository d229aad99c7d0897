package facades

import (
	"sync"

	"github.com/sbilibin2017/gw-admin-status/internal/metrics"
	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

// ConnectionTracker holds the live state of a database connection.
// It is safe for concurrent use; readers never block each other.
type ConnectionTracker struct {
	mu      sync.RWMutex
	state   models.ConnectionState
	pending string
	dbName  string
	closed  bool
}

// NewConnectionTracker returns a tracker in the disconnected state.
func NewConnectionTracker() *ConnectionTracker {
	t := &ConnectionTracker{state: models.StateDisconnected}
	metrics.DBConnectionState.Set(float64(t.state))
	return t
}

// MarkConnecting starts a user initiated connect to the named database.
// The name is not reported until the connection is up.
func (t *ConnectionTracker) MarkConnecting(dbName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = dbName
	t.closed = false
	t.set(models.StateConnecting)
}

// MarkConnected records a successful connect.
func (t *ConnectionTracker) MarkConnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected()
}

// MarkDisconnecting starts a user initiated disconnect. Heartbeats are
// ignored from here on until the next MarkConnecting.
func (t *ConnectionTracker) MarkDisconnecting() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.set(models.StateDisconnecting)
}

// MarkDisconnected records a finished disconnect or a failed connect.
func (t *ConnectionTracker) MarkDisconnected() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set(models.StateDisconnected)
}

// ObserveHeartbeat applies a server monitor heartbeat result.
// While connecting only a success moves the state; the connect call itself
// settles failures.
func (t *ConnectionTracker) ObserveHeartbeat(ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.state == models.StateDisconnecting {
		return
	}
	switch {
	case ok:
		t.connected()
	case t.state != models.StateConnecting:
		t.set(models.StateDisconnected)
	}
}

// State returns the current state code.
func (t *ConnectionTracker) State() models.ConnectionState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// DatabaseName returns the name of the database last connected to, if any.
// It survives a disconnect.
func (t *ConnectionTracker) DatabaseName() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dbName, t.dbName != ""
}

func (t *ConnectionTracker) connected() {
	t.dbName = t.pending
	t.set(models.StateConnected)
}

func (t *ConnectionTracker) set(s models.ConnectionState) {
	t.state = s
	metrics.DBConnectionState.Set(float64(s))
}
