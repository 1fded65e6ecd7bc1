package commands

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoBusiness = errs.Mark(errs.New("no business registered for this owner"), errs.ErrNotFound)

// RuleInput carries clock times as "HH:MM" strings.
type RuleInput struct {
	Timezone        string
	WorkingDays     []int
	StartTime       string
	EndTime         string
	BreakStart      *string
	BreakEnd        *string
	BufferMinutes   int
	SlotStepMinutes int
}

type AvailabilityCommands interface {
	SaveRule(ctx context.Context, ownerID uuid.UUID, in RuleInput) error
}

type availabilityCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clk clock.Clock) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow, clock: clk}
}

// SaveRule replaces the owner's rule wholesale. Existing bookings are kept
// even when they no longer fit the new rule.
func (c *availabilityCommandsImpl) SaveRule(ctx context.Context, ownerID uuid.UUID, in RuleInput) error {
	params, err := in.params()
	if err != nil {
		return invalid(err)
	}
	rule, err := availability.NewRule(params)
	if err != nil {
		return invalid(err)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := ownedBusiness(ctx, tx.Reads(), ownerID)
		if err != nil {
			return err
		}
		return tx.Rules().Save(ctx, biz.ID, rule, c.clock.Now())
	})
}

func (in RuleInput) params() (availability.RuleParams, error) {
	start, err := availability.ParseClockTime(in.StartTime)
	if err != nil {
		return availability.RuleParams{}, err
	}
	end, err := availability.ParseClockTime(in.EndTime)
	if err != nil {
		return availability.RuleParams{}, err
	}
	p := availability.RuleParams{
		Timezone:        in.Timezone,
		WorkingDays:     in.WorkingDays,
		Start:           start,
		End:             end,
		BufferMinutes:   in.BufferMinutes,
		SlotStepMinutes: in.SlotStepMinutes,
	}
	if p.BreakStart, err = optionalClock(in.BreakStart); err != nil {
		return availability.RuleParams{}, err
	}
	if p.BreakEnd, err = optionalClock(in.BreakEnd); err != nil {
		return availability.RuleParams{}, err
	}
	return p, nil
}

func optionalClock(s *string) (*availability.ClockTime, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	c, err := availability.ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func ownedBusiness(ctx context.Context, reads shared.CommandReads, ownerID uuid.UUID) (*shared.BusinessSnapshot, error) {
	biz, err := reads.BusinessByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoBusiness
		}
		return nil, err
	}
	return biz, nil
}
