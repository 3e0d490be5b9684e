package model

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
)

type cpTimetabler struct {
	solver cpsat.Solver
}

func (timetabler *cpTimetabler) Build(ctx context.Context, groups []Group, lookup Lookup, maxCoursesPerSlot int) ([]ScheduleEntry, error) {
	builder := newTimetableBuilder(groups, lookup, maxCoursesPerSlot)

	builder.exactlyOneSlotConstraints()
	builder.instructorOverlapConstraints()
	builder.availabilityConstraints()
	builder.courseOverlapConstraints()
	builder.slotCapacityConstraints()
	builder.hourBudgetConstraints()

	result, err := timetabler.solver.Solve(ctx, builder.model)
	if err != nil {
		return nil, err
	} else if result.Status != cpsat.StatusSatisfiable { // UNKNOWN is treated the same as UNSAT
		return nil, nil
	}

	return builder.extract(result.Values, lookup), nil
}

// sessionVarKey identifies the decision variable of one session occurrence at
// one calendar slot.
type sessionVarKey struct {
	GroupID string
	Session int
	Slot    TimeSlot
}

// timetableBuilder owns the tuple->variable registry and emits the constraint
// families onto the underlying model. Each family is an independent method so
// it can be exercised in isolation.
type timetableBuilder struct {
	model             *cpsat.Model
	vars              map[sessionVarKey]cpsat.Var
	groups            []Group
	lookup            Lookup
	maxCoursesPerSlot int
}

func newTimetableBuilder(groups []Group, lookup Lookup, maxCoursesPerSlot int) *timetableBuilder {
	builder := &timetableBuilder{
		model:             cpsat.NewModel(),
		vars:              make(map[sessionVarKey]cpsat.Var),
		groups:            groups,
		lookup:            lookup,
		maxCoursesPerSlot: maxCoursesPerSlot,
	}

	// One boolean per (group, session, day, time), declared in iteration
	// order so extraction follows the same order
	for _, group := range groups {
		for session := range group.Sessions {
			for _, slot := range lookup.Slots {
				key := sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}
				builder.vars[key] = builder.model.NewBoolVar(
					fmt.Sprintf("x_%v_%v_%v_%v", group.ID, session, slot.DayID, slot.TimeID))
			}
		}
	}

	return builder
}

// exactlyOneSlotConstraints: every session is scheduled exactly once.
func (builder *timetableBuilder) exactlyOneSlotConstraints() {
	for _, group := range builder.groups {
		for session := range group.Sessions {
			vars := make([]cpsat.Var, 0, len(builder.lookup.Slots))
			for _, slot := range builder.lookup.Slots {
				vars = append(vars, builder.vars[sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}])
			}
			builder.model.AddExactlyOne(vars)
		}
	}
}

// instructorOverlapConstraints: an instructor teaches at most one session per
// slot.
func (builder *timetableBuilder) instructorOverlapConstraints() {
	instructors := lo.Uniq(lo.Map(builder.groups, func(g Group, _ int) string { return g.InstructorID }))

	for _, instructorID := range instructors {
		owned := lo.Filter(builder.groups, func(g Group, _ int) bool { return g.InstructorID == instructorID })

		for _, slot := range builder.lookup.Slots {
			builder.model.AddAtMost(builder.slotVars(owned, slot), 1)
		}
	}
}

// availabilityConstraints: variables outside the instructor's declared slots
// are pinned to zero (pruning, not a penalty).
func (builder *timetableBuilder) availabilityConstraints() {
	for _, group := range builder.groups {
		for session := range group.Sessions {
			for _, slot := range builder.lookup.Slots {
				if !builder.lookup.SlotAllowed(group.InstructorID, slot) {
					builder.model.AddFixedFalse(builder.vars[sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}])
				}
			}
		}
	}
}

// courseOverlapConstraints: sibling sections of the same course never share a
// slot, independent of instructor.
func (builder *timetableBuilder) courseOverlapConstraints() {
	courseIDs := lo.Uniq(lo.Map(builder.groups, func(g Group, _ int) string { return g.CourseID }))

	for _, courseID := range courseIDs {
		related := lo.Filter(builder.groups, func(g Group, _ int) bool { return g.CourseID == courseID })

		for _, slot := range builder.lookup.Slots {
			builder.model.AddAtMost(builder.slotVars(related, slot), 1)
		}
	}
}

// slotCapacityConstraints: the total number of simultaneous sessions per slot
// is capped.
func (builder *timetableBuilder) slotCapacityConstraints() {
	for _, slot := range builder.lookup.Slots {
		builder.model.AddAtMost(builder.slotVars(builder.groups, slot), int64(builder.maxCoursesPerSlot))
	}
}

// hourBudgetConstraints: the weighted hour-sum of every instructor's sessions
// stays within the declared budget. This is the authoritative hour accounting;
// the pre-solve validator only runs a raw session-count filter.
func (builder *timetableBuilder) hourBudgetConstraints() {
	instructors := lo.Uniq(lo.Map(builder.groups, func(g Group, _ int) string { return g.InstructorID }))

	for _, instructorID := range instructors {
		if !builder.lookup.HasAvailability(instructorID) {
			continue
		}
		maxHours := int64(builder.lookup.MaxHours[instructorID])

		terms := []cpsat.Term{}
		for _, group := range builder.groups {
			if group.InstructorID != instructorID {
				continue
			}
			for session := range group.Sessions {
				for _, slot := range builder.lookup.Slots {
					terms = append(terms, cpsat.Term{
						Coefficient: group.Type.HourUnits(),
						Var:         builder.vars[sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}],
					})
				}
			}
		}
		builder.model.AddLinearConstraint(terms, cpsat.NoLowerBound, maxHours)
	}
}

// slotVars collects the variables of every session of the given groups at one
// slot.
func (builder *timetableBuilder) slotVars(groups []Group, slot TimeSlot) []cpsat.Var {
	vars := []cpsat.Var{}
	for _, group := range groups {
		for session := range group.Sessions {
			vars = append(vars, builder.vars[sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}])
		}
	}
	return vars
}

// extract reads the satisfying assignment back into schedule entries, in
// groups -> sessions -> slots order. Sessions are reported 1-based.
func (builder *timetableBuilder) extract(values cpsat.Solution, lookup Lookup) []ScheduleEntry {
	schedule := []ScheduleEntry{}
	for _, group := range builder.groups {
		for session := range group.Sessions {
			for _, slot := range builder.lookup.Slots {
				if !values.Value(builder.vars[sessionVarKey{GroupID: group.ID, Session: session, Slot: slot}]) {
					continue
				}
				schedule = append(schedule, ScheduleEntry{
					GroupID:      group.ID,
					CourseCode:   group.Code,
					CourseID:     group.CourseID,
					CourseFamily: group.Course,
					Session:      session + 1,
					Instructor:   group.Instructor,
					InstructorID: group.InstructorID,
					DayID:        slot.DayID,
					Day:          lookup.DayName(slot.DayID),
					TimeID:       slot.TimeID,
					Time:         lookup.TimeName(slot.TimeID),
					Type:         group.Type,
				})
			}
		}
	}
	return schedule
}

func (timetabler *cpTimetabler) Verify(entries []ScheduleEntry, groups []Group, lookup Lookup, maxCoursesPerSlot int) bool {
	groupsByID := lo.SliceToMap(groups, func(g Group) (string, Group) { return g.ID, g })

	sessionCounts := make(map[string]map[int]int)       // groupId -> session -> occurrences
	instructorSlots := make(map[string]map[TimeSlot]int) // instructorId -> slot -> sessions
	courseSlots := make(map[string]map[TimeSlot]int)     // courseId -> slot -> sessions
	slotLoads := make(map[TimeSlot]int)
	instructorHours := make(map[string]int64)

	for _, entry := range entries {
		group, ok := groupsByID[entry.GroupID]
		if !ok || entry.Session < 1 || entry.Session > group.Sessions {
			return false
		}

		slot := TimeSlot{DayID: entry.DayID, TimeID: entry.TimeID}

		// Instructor must have declared the slot as available
		if !lookup.SlotAllowed(group.InstructorID, slot) {
			return false
		}

		if sessionCounts[group.ID] == nil {
			sessionCounts[group.ID] = make(map[int]int)
		}
		if instructorSlots[group.InstructorID] == nil {
			instructorSlots[group.InstructorID] = make(map[TimeSlot]int)
		}
		if courseSlots[group.CourseID] == nil {
			courseSlots[group.CourseID] = make(map[TimeSlot]int)
		}

		sessionCounts[group.ID][entry.Session]++
		instructorSlots[group.InstructorID][slot]++
		courseSlots[group.CourseID][slot]++
		slotLoads[slot]++
		instructorHours[group.InstructorID] += group.Type.HourUnits()

		// No instructor or course teaches two sessions in the same slot
		if instructorSlots[group.InstructorID][slot] > 1 || courseSlots[group.CourseID][slot] > 1 {
			return false
		}
		// Duplicate emission of the same session
		if sessionCounts[group.ID][entry.Session] > 1 {
			return false
		}
	}

	// Every session of every group appears exactly once
	for _, group := range groups {
		for session := 1; session <= group.Sessions; session++ {
			if sessionCounts[group.ID][session] != 1 {
				return false
			}
		}
	}

	// Slot capacity cap
	for _, load := range slotLoads {
		if load > maxCoursesPerSlot {
			return false
		}
	}

	// Weighted hour budgets
	for instructorID, hours := range instructorHours {
		if hours > int64(lookup.MaxHours[instructorID]) {
			return false
		}
	}

	return true
}
