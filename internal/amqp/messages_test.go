package amqp

import (
	"strings"
	"testing"
	"time"
)

func TestTransactionEventMessageRoundTrip(t *testing.T) {
	msg := NewTransactionEventMessage(42, EventTransactionCreated)
	if msg.ID != 42 || msg.Event != EventTransactionCreated {
		t.Fatalf("message = %+v", msg)
	}
	if time.Since(msg.Timestamp) > time.Minute {
		t.Fatalf("stale timestamp %v", msg.Timestamp)
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"event":"transaction.created"`) {
		t.Fatalf("payload = %s", data)
	}

	got, err := TransactionEventMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != msg.ID || got.Event != msg.Event || !got.Timestamp.Equal(msg.Timestamp) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, msg)
	}
}

func TestTransactionEventMessageFromJSONInvalid(t *testing.T) {
	if _, err := TransactionEventMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
