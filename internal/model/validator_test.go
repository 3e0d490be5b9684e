package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func availabilityOf(teacher, teacherID string, maxHours int, slots ...Slot) Availability {
	return Availability{Teacher: teacher, TeacherID: teacherID, Slots: slots, MaxHours: maxHours}
}

func TestMissingInstructors(t *testing.T) {
	// Arrange
	groups := []Group{
		{ID: "g1", InstructorID: "i2", CourseID: "c1", Sessions: 1},
		{ID: "g2", InstructorID: "i1", CourseID: "c2", Sessions: 1},
		{ID: "g3", InstructorID: "i3", CourseID: "c3", Sessions: 1},
	}
	lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 4)})

	// Act
	missing := MissingInstructors(groups, lookup)

	// Assert: sorted and without the covered instructor
	assert.Equal(t, []string{"i2", "i3"}, missing)
}

func TestValidateInstructorLoads(t *testing.T) {
	slot := Slot{DayID: "d1", TimeID: "t1"}

	t.Run("no violations", func(t *testing.T) {
		groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1}}
		lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 4, slot, Slot{DayID: "d1", TimeID: "t2"})})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Empty(t, violations)
	})

	t.Run("insufficient slots", func(t *testing.T) {
		groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 2}}
		lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 4, slot)})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "has 2 sessions but only 1 slots")
	})

	t.Run("zero hour budget", func(t *testing.T) {
		groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 1}}
		lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 0, slot)})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "max Hours=0")
	})

	t.Run("hour budget exceeded by raw session count", func(t *testing.T) {
		groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 2}}
		lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 1, slot, Slot{DayID: "d2", TimeID: "t1"})})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "only allowed maxHours=1")
	})

	t.Run("violations accumulate instead of short-circuiting", func(t *testing.T) {
		// Two instructors with independent problems plus one rule pair firing
		// together for the same instructor
		groups := []Group{
			{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 3},
			{ID: "g2", InstructorID: "i2", CourseID: "c2", Sessions: 1},
		}
		lookup := BuildLookup(nil, nil, []Availability{
			availabilityOf("Alice", "i1", 1, slot),
			availabilityOf("Bob", "i2", 0, slot),
		})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Len(t, violations, 3)
		assert.Contains(t, violations[0], "has 3 sessions but only 1 slots")
		assert.Contains(t, violations[1], "only allowed maxHours=1")
		assert.Contains(t, violations[2], "max Hours=0")
	})

	t.Run("instructor without availability record", func(t *testing.T) {
		groups := []Group{{ID: "g1", InstructorID: "i9", CourseID: "c1", Sessions: 1}}
		lookup := BuildLookup(nil, nil, nil)

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "no availability defined")
	})

	t.Run("raw session check ignores theory weighting", func(t *testing.T) {
		// Two THEORY sessions cost 4 weighted hours, yet the pre-filter only
		// compares the raw count of 2 against the budget of 3
		groups := []Group{{ID: "g1", InstructorID: "i1", CourseID: "c1", Sessions: 2, Type: CourseTypeTheory}}
		lookup := BuildLookup(nil, nil, []Availability{availabilityOf("Alice", "i1", 3, slot, Slot{DayID: "d2", TimeID: "t1"})})

		violations := ValidateInstructorLoads(groups, lookup)

		assert.Empty(t, violations)
	})
}
