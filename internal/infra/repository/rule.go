package repository

import (
	"context"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

const upsertRuleSQL = `
INSERT INTO availability_rules (
    business_id, timezone, working_days, start_minute, end_minute,
    break_start, break_end, buffer_minutes, slot_step_minutes, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (business_id) DO UPDATE SET
    timezone          = EXCLUDED.timezone,
    working_days      = EXCLUDED.working_days,
    start_minute      = EXCLUDED.start_minute,
    end_minute        = EXCLUDED.end_minute,
    break_start       = EXCLUDED.break_start,
    break_end         = EXCLUDED.break_end,
    buffer_minutes    = EXCLUDED.buffer_minutes,
    slot_step_minutes = EXCLUDED.slot_step_minutes,
    updated_at        = EXCLUDED.updated_at`

type AvailabilityRuleRepository struct {
	db db.DBTX
}

func NewAvailabilityRuleRepository(db db.DBTX) *AvailabilityRuleRepository {
	return &AvailabilityRuleRepository{db: db}
}

// Save replaces the business' rule wholesale.
func (r *AvailabilityRuleRepository) Save(ctx context.Context, businessID uuid.UUID, rule availability.Rule, at time.Time) error {
	days := make([]int16, 0, 7)
	for _, d := range rule.WorkingDays() {
		days = append(days, int16(d))
	}

	var breakStart, breakEnd *int
	if bs, be, ok := rule.Break(); ok {
		s, e := bs.Minutes(), be.Minutes()
		breakStart, breakEnd = &s, &e
	}

	_, err := r.db.Exec(ctx, upsertRuleSQL,
		businessID, rule.Timezone(), days, rule.Start().Minutes(), rule.End().Minutes(),
		breakStart, breakEnd, rule.BufferMinutes(), rule.SlotStepMinutes(), at)
	if err != nil {
		return infra.WrapRepoErr("failed to save availability rule", err)
	}
	return nil
}
