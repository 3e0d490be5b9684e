// Package dto defines the wire contract of the scheduling endpoints. Field
// names and casing, including the 0=THEORY/1=LAB numeric convention, are
// inherited from the service being replaced and must not drift.
package dto

type GroupItem struct {
	ID           string `json:"id" validate:"required"`
	InstructorID string `json:"instructorId" validate:"required"`
	CourseID     string `json:"courseId" validate:"required"`
	Code         string `json:"code"`
	Sessions     int    `json:"sessions" validate:"required,min=1"`
	Instructor   string `json:"instructor"`
	Course       string `json:"course"`
	Type         int    `json:"type" validate:"min=0,max=1"`
}

type SlotItem struct {
	DayID    string `json:"dayId" validate:"required"`
	DayName  string `json:"dayName"`
	TimeID   string `json:"timeId" validate:"required"`
	TimeName string `json:"timeName"`
}

type AvailabilityItem struct {
	Teacher   string     `json:"teacher"`
	TeacherID string     `json:"teacherId" validate:"required"`
	Slots     []SlotItem `json:"slots" validate:"dive"`
	MaxHours  int        `json:"maxHours" validate:"min=0"`
}

// DayItem and TimeItem use capitalized keys on the wire.
type DayItem struct {
	Name string `json:"Name"`
	ID   string `json:"Id" validate:"required"`
}

type TimeItem struct {
	Name string `json:"Name"`
	ID   string `json:"Id" validate:"required"`
}

type CreateScheduleRequest struct {
	Groups            []GroupItem        `json:"groups" validate:"dive"`
	Availability      []AvailabilityItem `json:"availability" validate:"dive"`
	Days              []DayItem          `json:"days" validate:"dive"`
	TimeIntervals     []TimeItem         `json:"time_intervals" mapstructure:"time_intervals" validate:"dive"`
	MaxCoursesPerSlot int                `json:"max_courses_per_slot" mapstructure:"max_courses_per_slot" validate:"required,min=1"`
}

type ScheduleEntryItem struct {
	GroupID      string `json:"GroupId"`
	CourseCode   string `json:"CourseCode"`
	CourseID     string `json:"CourseId"`
	CourseFamily string `json:"CourseFamily"`
	Session      int    `json:"Session"`
	Instructor   string `json:"Instructor"`
	InstructorID string `json:"InstructorId"`
	DayID        string `json:"DayId"`
	Day          string `json:"Day"`
	TimeID       string `json:"TimeId"`
	Time         string `json:"Time"`
	Type         int    `json:"Type"`
}

type CreateScheduleResponse struct {
	Schedule []ScheduleEntryItem `json:"schedule"`
}

type ScheduledGroupItem struct {
	ID            string   `json:"id" validate:"required"`
	Code          string   `json:"code"`
	Slot          SlotItem `json:"slot"`
	StudentsCount int      `json:"students_count" mapstructure:"students_count" validate:"min=0"`
	Type          int      `json:"type" validate:"min=0,max=1"`
}

type RoomItem struct {
	ID         string `json:"id" validate:"required"`
	CourseType int    `json:"course_type" mapstructure:"course_type" validate:"min=0,max=1"`
	Capacity   int    `json:"capacity" validate:"min=0"`
}

type DistributeGroupsRequest struct {
	ScheduledGroups []ScheduledGroupItem `json:"scheduled_groups" mapstructure:"scheduled_groups" validate:"dive"`
	Rooms           []RoomItem           `json:"rooms" validate:"dive"`
}

type DistributedGroupItem struct {
	ID         string   `json:"id"`
	Slot       SlotItem `json:"slot"`
	NumberSize int      `json:"number_size"`
	Type       int      `json:"type"`
	RoomID     string   `json:"roomId"`
}

type DistributeGroupsResponse struct {
	ScheduledGroups []DistributedGroupItem `json:"scheduled_groups"`
}
