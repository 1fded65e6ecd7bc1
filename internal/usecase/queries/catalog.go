package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.Mark(errs.New("service not found"), errs.ErrNotFound)

type ServiceReadStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*ServiceView, error)
	FindByID(ctx context.Context, businessID, serviceID uuid.UUID) (*ServiceView, error)
}

type ServiceQueries interface {
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
	GetForOwner(ctx context.Context, ownerID, serviceID uuid.UUID) (*ServiceView, error)
}

type serviceQueriesImpl struct {
	businesses BusinessReadStore
	services   ServiceReadStore
}

func NewServiceQueries(businesses BusinessReadStore, services ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{businesses: businesses, services: services}
}

func (q *serviceQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error) {
	b, err := businessOfOwner(ctx, q.businesses, ownerID)
	if err != nil {
		return nil, err
	}
	return q.services.ListByBusiness(ctx, b.ID, false)
}

func (q *serviceQueriesImpl) GetForOwner(ctx context.Context, ownerID, serviceID uuid.UUID) (*ServiceView, error) {
	b, err := businessOfOwner(ctx, q.businesses, ownerID)
	if err != nil {
		return nil, err
	}
	view, err := q.services.FindByID(ctx, b.ID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}
