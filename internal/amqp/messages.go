package amqp

import (
	"encoding/json"
	"time"
)

// Transaction lifecycle event names.
const (
	EventTransactionCreated = "transaction.created"
	EventTransactionDeleted = "transaction.deleted"
)

// TransactionEventMessage is a lightweight notification about a transaction
// lifecycle change. Consumers fetch the full record from the database.
type TransactionEventMessage struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionEventMessage(id int64, event string) *TransactionEventMessage {
	return &TransactionEventMessage{
		ID:        id,
		Event:     event,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes.
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
