package request

import "slotbook/internal/usecase/commands"

type RuleRequest struct {
	Timezone        string  `json:"timezone"`
	WorkingDays     []int   `json:"working_days" binding:"required,dive,min=0,max=6"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	BufferMinutes   int     `json:"buffer_minutes" binding:"min=0,max=1440"`
	SlotStepMinutes int     `json:"slot_step_minutes" binding:"required,min=1,max=1440"`
}

func (r *RuleRequest) ToInput() commands.RuleInput {
	return commands.RuleInput{
		Timezone:        r.Timezone,
		WorkingDays:     r.WorkingDays,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		BreakStart:      r.BreakStart,
		BreakEnd:        r.BreakEnd,
		BufferMinutes:   r.BufferMinutes,
		SlotStepMinutes: r.SlotStepMinutes,
	}
}
