package commands

import (
	"context"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.Mark(errs.New("service not found"), errs.ErrNotFound)

type CreateServiceInput struct {
	Name            string
	DurationMinutes int
	PriceCents      int64
	Currency        string
}

// UpdateServiceInput has no price fields: price and currency are fixed once
// a service exists.
type UpdateServiceInput struct {
	Name            *string
	DurationMinutes *int
}

type CatalogCommands interface {
	CreateService(ctx context.Context, ownerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error)
	UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, in UpdateServiceInput) error
	DeactivateService(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, ownerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := ownedBusiness(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		svc, err := catalog.NewService(biz.ID, in.Name, in.DurationMinutes, in.PriceCents, in.Currency, c.clock.Now())
		if err != nil {
			return invalid(err)
		}
		if err := tx.Services().Create(ctx, svc); err != nil {
			return err
		}
		id = svc.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, in UpdateServiceInput) error {
	return c.withOwnedService(ctx, ownerID, serviceID, func(ctx context.Context, tx shared.Tx, svc *catalog.Service) error {
		if err := svc.Update(in.Name, in.DurationMinutes, c.clock.Now()); err != nil {
			return invalid(err)
		}
		return tx.Services().Update(ctx, svc)
	})
}

// DeactivateService hides a service from new bookings. Bookings already made
// keep their snapshot.
func (c *catalogCommandsImpl) DeactivateService(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	return c.withOwnedService(ctx, ownerID, serviceID, func(ctx context.Context, tx shared.Tx, svc *catalog.Service) error {
		if !svc.IsActive() {
			return nil
		}
		svc.Deactivate(c.clock.Now())
		return tx.Services().Update(ctx, svc)
	})
}

func (c *catalogCommandsImpl) withOwnedService(ctx context.Context, ownerID, serviceID uuid.UUID, fn func(context.Context, shared.Tx, *catalog.Service) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := ownedBusiness(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		svc, err := tx.Reads().ServiceByID(ctx, biz.ID, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return err
		}
		return fn(ctx, tx, svc)
	})
}
