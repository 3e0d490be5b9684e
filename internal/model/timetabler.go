package model

import (
	"context"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
)

// Timetabler assigns every required session of every group to a time slot
// subject to the instructor, course and capacity constraints.
type Timetabler interface {
	// Build returns the scheduled sessions, or nil if no feasible schedule
	// exists (these are valid outputs where error shall be nil).
	Build(ctx context.Context, groups []Group, lookup Lookup, maxCoursesPerSlot int) ([]ScheduleEntry, error)

	// Verify re-checks every scheduling invariant against an emitted schedule.
	Verify(entries []ScheduleEntry, groups []Group, lookup Lookup, maxCoursesPerSlot int) bool
}

func NewTimetabler(solver cpsat.Solver) Timetabler {
	return &cpTimetabler{solver: solver}
}
