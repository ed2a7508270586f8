// Package resource implements the list/create/update/delete pattern shared by
// every business module. A module parametrizes the generic store and service
// with its record type, table ordering and reference prefix; derived display
// flags stay in the owning module because they are pure functions of a record.
package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by stores when an update or delete targets an id
// that does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the datastore contract a resource module consumes: ordered list,
// insert, full-payload update and delete by the store-assigned numeric id.
type Store[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Insert(ctx context.Context, record *T) error
	Update(ctx context.Context, id int64, record *T) error
	Delete(ctx context.Context, id int64) error
}

// Reference builds the generated value for reference-like keys (reference,
// sku, employee_id): <PREFIX>-<creation-epoch-millis>.
func Reference(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// DefaultReference passes non-blank user input through unchanged and
// generates a reference otherwise.
func DefaultReference(value, prefix string, now time.Time) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return Reference(prefix, now)
}
