package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxnRunner runs a function inside a storage transaction. Repositories called
// with the context passed to fn participate in the same transaction.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

// mongoTxnRunner implements TxnRunner using MongoDB sessions. Requires the
// server to run as a replica set.
type mongoTxnRunner struct {
	client *mongo.Client
}

// NewTxnRunner creates a TxnRunner backed by the given client.
func NewTxnRunner(client *mongo.Client) TxnRunner {
	return &mongoTxnRunner{client: client}
}

// WithTransaction starts a session and commits fn's writes as a single unit.
// The driver retries transient transaction errors internally.
func (t *mongoTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	session, err := t.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return fn(sc)
	})
}
