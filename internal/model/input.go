package model

// CourseType distinguishes theory courses from labs. The numeric convention
// (0 = THEORY, 1 = LAB) is part of the wire contract and must round-trip
// unchanged.
type CourseType int

const (
	CourseTypeTheory CourseType = 0
	CourseTypeLab    CourseType = 1
)

// HourUnits is the weighted hour-cost of one session of this course type.
func (t CourseType) HourUnits() int64 {
	if t == CourseTypeTheory {
		return 2
	}
	return 1
}

// Day is static reference data, immutable for the request's lifetime.
type Day struct {
	ID   string
	Name string
}

// TimeInterval shares the lifecycle of Day.
type TimeInterval struct {
	ID   string
	Name string
}

// TimeSlot is a (day, time-interval) pair from the calendar grid. It is
// comparable and used as a map key throughout.
type TimeSlot struct {
	DayID  string
	TimeID string
}

// Slot is a time slot enriched with display names, as carried on the wire by
// availability records and scheduled groups.
type Slot struct {
	DayID    string
	DayName  string
	TimeID   string
	TimeName string
}

// Key reduces a slot to its calendar coordinates.
func (s Slot) Key() TimeSlot {
	return TimeSlot{DayID: s.DayID, TimeID: s.TimeID}
}

// Group is a course section requiring Sessions independent meeting instances.
type Group struct {
	ID           string
	InstructorID string
	CourseID     string
	Code         string
	Sessions     int
	Instructor   string
	Course       string
	Type         CourseType
}

// Availability declares the slots an instructor may teach in and the maximum
// weekly teaching hours. MaxHours of zero means the instructor is unavailable.
type Availability struct {
	Teacher   string
	TeacherID string
	Slots     []Slot
	MaxHours  int
}

// Room is a physical room; a group fits when capacity covers the group size
// and the course types match. That predicate is never relaxed.
type Room struct {
	ID         string
	CourseType CourseType
	Capacity   int
}

// Fits reports whether the room can host a scheduled group.
func (r Room) Fits(group ScheduledGroup) bool {
	return r.Capacity >= group.StudentsCount && r.CourseType == group.Type
}

// ScheduledGroup is the phase-one output consumed by room distribution.
type ScheduledGroup struct {
	ID            string
	Code          string
	Slot          Slot
	StudentsCount int
	Type          CourseType
}

// ScheduleEntry is one scheduled session with resolved day and time names.
// Session indices are 1-based on the wire.
type ScheduleEntry struct {
	GroupID      string
	CourseCode   string
	CourseID     string
	CourseFamily string
	Session      int
	Instructor   string
	InstructorID string
	DayID        string
	Day          string
	TimeID       string
	Time         string
	Type         CourseType
}

// DistributedGroup is a scheduled group with its assigned room attached.
type DistributedGroup struct {
	ID         string
	Slot       Slot
	NumberSize int
	Type       CourseType
	RoomID     string
}
