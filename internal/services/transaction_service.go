// Package services orchestrates writes across the store and the event bus.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"findash/internal/amqp"
	"findash/internal/core"
	"findash/internal/store"
)

// TransactionService persists transactions and publishes lifecycle events.
// A nil events client disables publishing.
type TransactionService struct {
	store  store.Store
	events *amqp.Client
}

func NewTransactionService(st store.Store, events *amqp.Client) *TransactionService {
	return &TransactionService{
		store:  st,
		events: events,
	}
}

// CreateTransaction saves the transaction and publishes a created event.
// Event publishing never fails the request; the row is already committed.
func (s *TransactionService) CreateTransaction(ctx context.Context, tc core.TransactionCreate) (core.Transaction, error) {
	txn, err := s.store.CreateTransaction(ctx, tc)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	if err := s.publish(ctx, amqp.EventTransactionCreated, txn.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish created event",
			"id", txn.ID, "error", err)
	}

	return txn, nil
}

// DeleteTransaction removes the transaction and, when a row was actually
// removed, publishes a deleted event.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.store.DeleteTransaction(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	if !deleted {
		return false, nil
	}

	if err := s.publish(ctx, amqp.EventTransactionDeleted, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish deleted event",
			"id", id, "error", err)
	}

	return true, nil
}

func (s *TransactionService) publish(ctx context.Context, event string, id int64) error {
	if s.events == nil {
		return nil
	}
	return s.events.PublishTransactionEvent(ctx, event, id)
}
