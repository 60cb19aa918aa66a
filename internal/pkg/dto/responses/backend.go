package responses

import "github.com/goccy/go-json"

// BackendEnvelope is the response wrapper every PandaCare backend service
// uses: { status, message, timestamp, data }. Data stays raw so each client
// can decode its own payload shape.
type BackendEnvelope struct {
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

type VerifyData struct {
	Valid bool `json:"valid"`
}
