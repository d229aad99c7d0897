package models

// ConnectionState is the lifecycle phase of a database connection.
type ConnectionState int

const (
	StateDisconnected  ConnectionState = 0
	StateConnected     ConnectionState = 1
	StateConnecting    ConnectionState = 2
	StateDisconnecting ConnectionState = 3
)

// StateUnknown is the label of every code outside the table.
const StateUnknown = "unknown"

var stateLabels = map[ConnectionState]string{
	StateDisconnected:  "disconnected",
	StateConnected:     "connected",
	StateConnecting:    "connecting",
	StateDisconnecting: "disconnecting",
}

// StateLabel maps a state code to its label. Codes that are not in the
// table are reported as StateUnknown.
func StateLabel(s ConnectionState) string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return StateUnknown
}

func (s ConnectionState) String() string {
	return StateLabel(s)
}
