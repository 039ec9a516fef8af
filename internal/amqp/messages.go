package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types carried on the ledger events queue.
const (
	TypeLedgerUpdated  = "ledger.updated"
	TypeProjectCreated = "project.created"
)

// Envelope is the wire format for all events. Type discriminates which of
// the optional fields are set.
type Envelope struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// ledger.updated
	Count   int    `json:"count,omitempty"`
	Address string `json:"address,omitempty"`

	// project.created
	Name string `json:"name,omitempty"`
}

// NewLedgerUpdatedMessage builds the event emitted after the stored ledger
// is replaced.
func NewLedgerUpdatedMessage(count int, address string) *Envelope {
	return &Envelope{
		ID:        uuid.NewString(),
		Type:      TypeLedgerUpdated,
		Timestamp: time.Now(),
		Count:     count,
		Address:   address,
	}
}

// NewProjectCreatedMessage builds the event emitted after a project is
// appended.
func NewProjectCreatedMessage(name string) *Envelope {
	return &Envelope{
		ID:        uuid.NewString(),
		Type:      TypeProjectCreated,
		Timestamp: time.Now(),
		Name:      name,
	}
}

// ToJSON converts the event to JSON bytes.
func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EnvelopeFromJSON decodes an event from JSON bytes.
func EnvelopeFromJSON(data []byte) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
