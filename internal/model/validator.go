package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// MissingInstructors returns the sorted identifiers of instructors that are
// referenced by groups but have no availability record at all. This is a
// request-level failure checked before the per-instructor rules run.
func MissingInstructors(groups []Group, lookup Lookup) []string {
	referenced := lo.Uniq(lo.Map(groups, func(g Group, _ int) string { return g.InstructorID }))

	missing := lo.Filter(referenced, func(id string, _ int) bool { return !lookup.HasAvailability(id) })
	slices.Sort(missing)
	return missing
}

// ValidateInstructorLoads checks, per instructor with at least one assigned
// group, that the assigned session count is achievable given the declared
// availability. All rules run to completion; violations accumulate and are
// reported together, never one at a time.
func ValidateInstructorLoads(groups []Group, lookup Lookup) []string {
	sessionsPerInstructor := make(map[string]int)
	for _, group := range groups {
		sessionsPerInstructor[group.InstructorID] += group.Sessions
	}

	instructors := lo.Keys(sessionsPerInstructor)
	slices.Sort(instructors)

	violations := []string{}
	for _, instructorID := range instructors {
		totalSessions := sessionsPerInstructor[instructorID]

		if !lookup.HasAvailability(instructorID) {
			violations = append(violations, fmt.Sprintf(
				"Instructor %v has assigned groups but no availability defined.", instructorID))
			continue
		}

		teacher := lookup.TeacherName(instructorID)
		slotCount := lookup.SlotCounts[instructorID]
		maxHours := lookup.MaxHours[instructorID]

		// Rule 1: available slots < assigned sessions
		if slotCount < totalSessions {
			violations = append(violations, fmt.Sprintf(
				"Instructor %v (%v) has %v sessions but only %v slots.",
				teacher, instructorID, totalSessions, slotCount))
		}

		// Rule 2: maxHours == 0 but sessions assigned
		if maxHours == 0 && totalSessions > 0 {
			violations = append(violations, fmt.Sprintf(
				"Instructor %v with id : (%v) has max Hours=0 but is assigned %v sessions.",
				teacher, instructorID, totalSessions))
		}

		// Rule 3: sessions > maxHours. This compares raw session counts, not
		// the weighted hour-cost enforced inside the solver: it is a fast
		// necessary pre-filter, the in-model hour budget stays authoritative.
		if maxHours > 0 && totalSessions > maxHours {
			violations = append(violations, fmt.Sprintf(
				"Instructor %v (%v) is assigned %v sessions but only allowed maxHours=%v.",
				teacher, instructorID, totalSessions, maxHours))
		}
	}

	return violations
}
