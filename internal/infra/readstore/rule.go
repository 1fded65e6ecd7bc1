package readstore

import (
	"context"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const findRuleSQL = `
SELECT business_id, timezone, working_days, start_minute, end_minute,
       break_start, break_end, buffer_minutes, slot_step_minutes, updated_at
FROM availability_rules
WHERE business_id = $1`

type RuleReadStore struct {
	db db.DBTX
}

func NewRuleReadStore(db db.DBTX) *RuleReadStore {
	return &RuleReadStore{db: db}
}

func (r *RuleReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) (*queries.RuleView, error) {
	var (
		v                    queries.RuleView
		days                 []int16
		start, end           int
		breakStart, breakEnd *int
	)
	err := r.db.QueryRow(ctx, findRuleSQL, businessID).Scan(
		&v.BusinessID, &v.Timezone, &days, &start, &end,
		&breakStart, &breakEnd, &v.BufferMinutes, &v.SlotStepMinutes, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find availability rule", err)
	}

	v.WorkingDays = make([]int, 0, len(days))
	for _, d := range days {
		v.WorkingDays = append(v.WorkingDays, int(d))
	}
	v.StartTime = availability.ClockTime(start).String()
	v.EndTime = availability.ClockTime(end).String()
	v.BreakStart = clockPtr(breakStart)
	v.BreakEnd = clockPtr(breakEnd)
	return &v, nil
}

func clockPtr(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	s := availability.ClockTime(*minutes).String()
	return &s
}
