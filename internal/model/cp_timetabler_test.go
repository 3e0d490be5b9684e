package model

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
)

var testDays = []Day{{ID: "d1", Name: "Monday"}, {ID: "d2", Name: "Tuesday"}}

var testIntervals = []TimeInterval{{ID: "t1", Name: "08:00-10:00"}, {ID: "t2", Name: "10:00-12:00"}}

func fullAvailability(teacher, teacherID string, maxHours int) Availability {
	slots := []Slot{}
	for _, day := range testDays {
		for _, interval := range testIntervals {
			slots = append(slots, Slot{DayID: day.ID, DayName: day.Name, TimeID: interval.ID, TimeName: interval.Name})
		}
	}
	return Availability{Teacher: teacher, TeacherID: teacherID, Slots: slots, MaxHours: maxHours}
}

func TestBuildSchedulesEverySession(t *testing.T) {
	// Arrange
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{{
		ID: "g1", InstructorID: "i1", CourseID: "c1", Code: "CS101-A",
		Sessions: 2, Instructor: "Alice", Course: "CS101", Type: CourseTypeLab,
	}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{fullAvailability("Alice", "i1", 4)})

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)

	// Assert
	assert.Nil(t, err)
	assert.Len(t, schedule, 2)
	assert.Equal(t, []int{1, 2}, lo.Map(schedule, func(e ScheduleEntry, _ int) int { return e.Session }))
	assert.NotEqual(t,
		TimeSlot{DayID: schedule[0].DayID, TimeID: schedule[0].TimeID},
		TimeSlot{DayID: schedule[1].DayID, TimeID: schedule[1].TimeID})
	assert.Equal(t, "Monday", schedule[0].Day)
	assert.True(t, timetabler.Verify(schedule, groups, lookup, 3))
}

func TestBuildRespectsAvailabilityMask(t *testing.T) {
	// Arrange: the instructor declared a single slot
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1, Type: CourseTypeTheory}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{{
		Teacher: "Alice", TeacherID: "i1", MaxHours: 4,
		Slots: []Slot{{DayID: "d2", TimeID: "t2"}},
	}})

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)

	// Assert
	assert.Nil(t, err)
	assert.Len(t, schedule, 1)
	assert.Equal(t, "d2", schedule[0].DayID)
	assert.Equal(t, "t2", schedule[0].TimeID)
}

func TestBuildCourseSiblingsNeverShareASlot(t *testing.T) {
	// Arrange: two sections of the same course, different instructors, but
	// only one slot declared by both. Sharing it is forbidden, so the model
	// is unsatisfiable.
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{
		{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1},
		{ID: "g2", InstructorID: "i2", CourseID: "c1", Sessions: 1},
	}
	oneSlot := []Slot{{DayID: "d1", TimeID: "t1"}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{
		{Teacher: "Alice", TeacherID: "i1", MaxHours: 4, Slots: oneSlot},
		{Teacher: "Bob", TeacherID: "i2", MaxHours: 4, Slots: oneSlot},
	})

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)

	// Assert: infeasibility is reported as a nil schedule, not an error
	assert.Nil(t, err)
	assert.Nil(t, schedule)
}

func TestBuildInstructorOverlap(t *testing.T) {
	// Arrange: one instructor, two unrelated courses, a single usable slot
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{
		{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1},
		{ID: "g2", InstructorID: "i1", CourseID: "c2", Sessions: 1},
	}
	lookup := BuildLookup(testDays, testIntervals, []Availability{{
		Teacher: "Alice", TeacherID: "i1", MaxHours: 4,
		Slots: []Slot{{DayID: "d1", TimeID: "t1"}},
	}})

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, schedule)
}

func TestBuildSlotCapacity(t *testing.T) {
	// Arrange: two groups, distinct courses and instructors, one shared slot,
	// capacity of one course per slot
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{
		{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1},
		{ID: "g2", InstructorID: "i2", CourseID: "c2", Sessions: 1},
	}
	oneSlot := []Slot{{DayID: "d1", TimeID: "t1"}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{
		{Teacher: "Alice", TeacherID: "i1", MaxHours: 4, Slots: oneSlot},
		{Teacher: "Bob", TeacherID: "i2", MaxHours: 4, Slots: oneSlot},
	})

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 1)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, schedule)

	// Raising the capacity makes the same instance feasible
	schedule, err = timetabler.Build(context.Background(), groups, lookup, 2)
	assert.Nil(t, err)
	assert.Len(t, schedule, 2)
	assert.True(t, timetabler.Verify(schedule, groups, lookup, 2))
}

func TestBuildWeightedHourBudget(t *testing.T) {
	// Arrange: two theory sessions cost 4 weighted hours. A budget of 3
	// passes the raw pre-solve session check yet is unsatisfiable in-model.
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 2, Type: CourseTypeTheory}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{fullAvailability("Alice", "i1", 3)})

	assert.Empty(t, ValidateInstructorLoads(groups, lookup))

	// Act
	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, schedule)

	// The same load as lab sessions weighs 2 hours and fits
	groups[0].Type = CourseTypeLab
	schedule, err = timetabler.Build(context.Background(), groups, lookup, 3)
	assert.Nil(t, err)
	assert.Len(t, schedule, 2)
}

func TestVerifyRejectsTamperedSchedules(t *testing.T) {
	// Arrange
	timetabler := NewTimetabler(cpsat.NewBacktrackingSolver())
	groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 2, Type: CourseTypeLab}}
	lookup := BuildLookup(testDays, testIntervals, []Availability{fullAvailability("Alice", "i1", 4)})

	schedule, err := timetabler.Build(context.Background(), groups, lookup, 3)
	assert.Nil(t, err)
	assert.True(t, timetabler.Verify(schedule, groups, lookup, 3))

	t.Run("duplicate session", func(t *testing.T) {
		tampered := append([]ScheduleEntry{}, schedule...)
		tampered[1].Session = tampered[0].Session
		tampered[1].DayID, tampered[1].TimeID = tampered[0].DayID, tampered[0].TimeID

		assert.False(t, timetabler.Verify(tampered, groups, lookup, 3))
	})

	t.Run("missing session", func(t *testing.T) {
		assert.False(t, timetabler.Verify(schedule[:1], groups, lookup, 3))
	})

	t.Run("slot outside availability", func(t *testing.T) {
		tampered := append([]ScheduleEntry{}, schedule...)
		tampered[0].DayID, tampered[0].TimeID = "d9", "t9"

		assert.False(t, timetabler.Verify(tampered, groups, lookup, 3))
	})

	t.Run("unknown group", func(t *testing.T) {
		tampered := append([]ScheduleEntry{}, schedule...)
		tampered[0].GroupID = "ghost"

		assert.False(t, timetabler.Verify(tampered, groups, lookup, 3))
	})
}
