package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ParentChecker reports whether a live parent record exists. The parent
// family's Service satisfies this.
type ParentChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ChildService extends Service for families whose records belong to a
// parent record (episodes to a series, tracks to a music release). Writes
// are refused when the referenced parent does not exist.
type ChildService[D any, PD RecordPtr[D]] struct {
	*Service[D, PD]
	parentName string
	parent     ParentChecker
	parentOf   func(*D) uuid.UUID
}

// NewChildService wraps an existing Service with a parent-existence guard.
// parentOf extracts the parent id from a record.
func NewChildService[D any, PD RecordPtr[D]](svc *Service[D, PD], parentName string, parent ParentChecker, parentOf func(*D) uuid.UUID) *ChildService[D, PD] {
	return &ChildService[D, PD]{
		Service:    svc,
		parentName: parentName,
		parent:     parent,
		parentOf:   parentOf,
	}
}

func (s *ChildService[D, PD]) checkParent(ctx context.Context, d *D) error {
	parentID := s.parentOf(d)
	ok, err := s.parent.Exists(ctx, parentID)
	if err != nil {
		return err
	}
	if !ok {
		return &ParentNotFoundError{Parent: s.parentName, ID: parentID}
	}
	return nil
}

// Create inserts a child record after verifying its parent exists.
func (s *ChildService[D, PD]) Create(ctx context.Context, d *D) (*D, error) {
	if err := s.checkParent(ctx, d); err != nil {
		return nil, err
	}
	return s.Service.Create(ctx, d)
}

// Update replaces a child record after verifying its parent exists.
func (s *ChildService[D, PD]) Update(ctx context.Context, id uuid.UUID, d *D) (*D, error) {
	if err := s.checkParent(ctx, d); err != nil {
		return nil, err
	}
	return s.Service.Update(ctx, id, d)
}

// CreateOrUpdate upserts a child record after verifying its parent exists.
func (s *ChildService[D, PD]) CreateOrUpdate(ctx context.Context, d *D) (*D, error) {
	if err := s.checkParent(ctx, d); err != nil {
		return nil, err
	}
	return s.Service.CreateOrUpdate(ctx, d)
}

// BulkUpsert upserts a batch of child records. Every record's parent must
// exist or the whole batch is rejected before the resilience layer runs.
func (s *ChildService[D, PD]) BulkUpsert(ctx context.Context, ds []D) ([]D, error) {
	for i := range ds {
		if err := s.checkParent(ctx, &ds[i]); err != nil {
			return nil, err
		}
	}
	return s.Service.BulkUpsert(ctx, ds)
}

// ListByParent returns one page of child records for a parent id.
func (s *ChildService[D, PD]) ListByParent(ctx context.Context, parentColumn string, parentID uuid.UUID, page Page) ([]D, error) {
	return s.store.ListBy(ctx, parentColumn, parentID.String(), page)
}

// DeleteByParent removes every child record belonging to a parent id.
func (s *ChildService[D, PD]) DeleteByParent(ctx context.Context, parentColumn string, parentID uuid.UUID) error {
	return s.store.DeleteBy(ctx, parentColumn, parentID.String())
}
