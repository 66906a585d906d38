package data

import (
	"bytes"
	"encoding/json"

	"myapp/internal/config"
)

// Message is the fixed greeting carried by every response.
const Message = "Hello from myapp!"

// Payload is the body returned for every request. Field order here is the
// key order on the wire.
type Payload struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// NewPayload fills a Payload from the startup config snapshot.
func NewPayload(cfg config.Config) Payload {
	return Payload{
		Message:     Message,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	}
}

// Encode returns the compact JSON form of p, without a trailing newline.
// <, > and & are written as-is rather than as \u escapes.
func (p Payload) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
