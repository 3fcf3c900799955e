package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is the behavior every catalog DTO exposes to the generic service.
// It is implemented on the pointer receiver of each family's DTO.
type Record interface {
	RecordID() uuid.UUID
	SetRecordID(uuid.UUID)
}

// RecordPtr ties a DTO value type to its pointer implementation of Record.
type RecordPtr[D any] interface {
	Record
	*D
}

// Store is the persistence contract the service layer depends on. One
// implementation per family lives in the repository package.
type Store[D any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*D, error)
	FindBy(ctx context.Context, column, value string) (*D, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	List(ctx context.Context, page Page) ([]D, error)
	ListBy(ctx context.Context, column, value string, page Page) ([]D, error)
	ListByYear(ctx context.Context, year int, page Page) ([]D, error)
	Search(ctx context.Context, keyword string, page Page) ([]D, error)
	FindFiltered(ctx context.Context, filters []Filter, page Page) ([]D, error)
	UpdatedSince(ctx context.Context, since time.Time, page Page) ([]D, error)

	Count(ctx context.Context) (int64, error)
	CountYear(ctx context.Context, year int) (int64, error)

	Insert(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	Upsert(ctx context.Context, d *D) (*D, error)
	UpsertAll(ctx context.Context, ds []D) ([]D, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, ids []uuid.UUID) error
	DeleteBy(ctx context.Context, column, value string) error

	CountBy(ctx context.Context, dim Dimension, limit int) ([]DimensionCount, error)
	CountByYear(ctx context.Context, limit int) ([]YearCount, error)
}
