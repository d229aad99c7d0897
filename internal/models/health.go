package models

// HealthResponse is returned by the liveness endpoint.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: true
	OK bool `json:"ok"`
}

// DBStatusResponse reports the live state of the database connection.
// swagger:model DBStatusResponse
type DBStatusResponse struct {
	// Always true, the endpoint has no failure path
	// example: true
	OK bool `json:"ok"`

	// Raw connection state code, omitted when there is no connection object
	// example: 1
	State *int `json:"state,omitempty"`

	// Label for State
	// example: connected
	StateText string `json:"stateText"`

	// Name of the connected database, null when unavailable
	// example: test
	DB *string `json:"db"`
}
