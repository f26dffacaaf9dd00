// Package kvstore implements the remote resource store snippets are kept in.
//
// A store is addressed by an opaque store id; inside a store, items are grouped
// by resource kind and keyed by an id. Values are opaque JSON documents.
package kvstore

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

const (
	BackendHomebots = "homebots"
	BackendRedis    = "redis"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

var (
	// ErrNotFound is returned by Get when no item exists for the id.
	ErrNotFound = errors.New("kvstore: item not found")

	// ErrIDMissing is returned when an operation requires an id but got none.
	ErrIDMissing = errors.New("kvstore: id is missing")
)

// StatusError is returned when the store rejected an operation.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kvstore: %s rejected with status %d", e.Op, e.Code)
}

// Resource is a single kind of resource inside a store.
type Resource interface {
	// List returns the values of all items. Backends that cannot list report
	// an empty result instead of failing.
	List(ctx context.Context) ([][]byte, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, value []byte) error
	Remove(ctx context.Context, id string) error
	RemoveAll(ctx context.Context) error

	Ping(ctx context.Context) error
	Backend() string
}
