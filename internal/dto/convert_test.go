package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChrisHallak/course-scheduling/internal/model"
)

func TestFromScheduleEntriesWireShape(t *testing.T) {
	// Arrange
	entries := []model.ScheduleEntry{{
		GroupID: "g1", CourseCode: "CS101-A", CourseID: "c1", CourseFamily: "CS101",
		Session: 1, Instructor: "Alice", InstructorID: "i1",
		DayID: "d1", Day: "Monday", TimeID: "t1", Time: "08:00-10:00",
		Type: model.CourseTypeTheory,
	}}

	// Act
	payload, err := json.Marshal(FromScheduleEntries(entries))

	// Assert: schedule entries use capitalized keys on the wire
	assert.Nil(t, err)
	assert.JSONEq(t, `{"schedule": [{
		"GroupId": "g1", "CourseCode": "CS101-A", "CourseId": "c1", "CourseFamily": "CS101",
		"Session": 1, "Instructor": "Alice", "InstructorId": "i1",
		"DayId": "d1", "Day": "Monday", "TimeId": "t1", "Time": "08:00-10:00", "Type": 0
	}]}`, string(payload))
}

func TestFromDistributionWireShape(t *testing.T) {
	// Arrange
	distribution := []model.DistributedGroup{{
		ID:         "g1",
		Slot:       model.Slot{DayID: "d1", DayName: "Monday", TimeID: "t1", TimeName: "08:00-10:00"},
		NumberSize: 30,
		Type:       model.CourseTypeLab,
		RoomID:     "r1",
	}}

	// Act
	payload, err := json.Marshal(FromDistribution(distribution))

	// Assert
	assert.Nil(t, err)
	assert.JSONEq(t, `{"scheduled_groups": [{
		"id": "g1",
		"slot": {"dayId": "d1", "dayName": "Monday", "timeId": "t1", "timeName": "08:00-10:00"},
		"number_size": 30, "type": 1, "roomId": "r1"
	}]}`, string(payload))
}
