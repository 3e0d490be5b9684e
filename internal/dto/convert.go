package dto

import (
	"github.com/samber/lo"

	"github.com/ChrisHallak/course-scheduling/internal/model"
)

func (r CreateScheduleRequest) ToGroups() []model.Group {
	return lo.Map(r.Groups, func(g GroupItem, _ int) model.Group {
		return model.Group{
			ID:           g.ID,
			InstructorID: g.InstructorID,
			CourseID:     g.CourseID,
			Code:         g.Code,
			Sessions:     g.Sessions,
			Instructor:   g.Instructor,
			Course:       g.Course,
			Type:         model.CourseType(g.Type),
		}
	})
}

func (r CreateScheduleRequest) ToDays() []model.Day {
	return lo.Map(r.Days, func(d DayItem, _ int) model.Day {
		return model.Day{ID: d.ID, Name: d.Name}
	})
}

func (r CreateScheduleRequest) ToTimeIntervals() []model.TimeInterval {
	return lo.Map(r.TimeIntervals, func(t TimeItem, _ int) model.TimeInterval {
		return model.TimeInterval{ID: t.ID, Name: t.Name}
	})
}

func (r CreateScheduleRequest) ToAvailability() []model.Availability {
	return lo.Map(r.Availability, func(a AvailabilityItem, _ int) model.Availability {
		return model.Availability{
			Teacher:   a.Teacher,
			TeacherID: a.TeacherID,
			Slots:     lo.Map(a.Slots, func(s SlotItem, _ int) model.Slot { return s.toModel() }),
			MaxHours:  a.MaxHours,
		}
	})
}

func (r DistributeGroupsRequest) ToScheduledGroups() []model.ScheduledGroup {
	return lo.Map(r.ScheduledGroups, func(g ScheduledGroupItem, _ int) model.ScheduledGroup {
		return model.ScheduledGroup{
			ID:            g.ID,
			Code:          g.Code,
			Slot:          g.Slot.toModel(),
			StudentsCount: g.StudentsCount,
			Type:          model.CourseType(g.Type),
		}
	})
}

func (r DistributeGroupsRequest) ToRooms() []model.Room {
	return lo.Map(r.Rooms, func(room RoomItem, _ int) model.Room {
		return model.Room{
			ID:         room.ID,
			CourseType: model.CourseType(room.CourseType),
			Capacity:   room.Capacity,
		}
	})
}

func (s SlotItem) toModel() model.Slot {
	return model.Slot{DayID: s.DayID, DayName: s.DayName, TimeID: s.TimeID, TimeName: s.TimeName}
}

func slotFromModel(s model.Slot) SlotItem {
	return SlotItem{DayID: s.DayID, DayName: s.DayName, TimeID: s.TimeID, TimeName: s.TimeName}
}

func FromScheduleEntries(entries []model.ScheduleEntry) CreateScheduleResponse {
	return CreateScheduleResponse{
		Schedule: lo.Map(entries, func(entry model.ScheduleEntry, _ int) ScheduleEntryItem {
			return ScheduleEntryItem{
				GroupID:      entry.GroupID,
				CourseCode:   entry.CourseCode,
				CourseID:     entry.CourseID,
				CourseFamily: entry.CourseFamily,
				Session:      entry.Session,
				Instructor:   entry.Instructor,
				InstructorID: entry.InstructorID,
				DayID:        entry.DayID,
				Day:          entry.Day,
				TimeID:       entry.TimeID,
				Time:         entry.Time,
				Type:         int(entry.Type),
			}
		}),
	}
}

func FromDistribution(distribution []model.DistributedGroup) DistributeGroupsResponse {
	return DistributeGroupsResponse{
		ScheduledGroups: lo.Map(distribution, func(group model.DistributedGroup, _ int) DistributedGroupItem {
			return DistributedGroupItem{
				ID:         group.ID,
				Slot:       slotFromModel(group.Slot),
				NumberSize: group.NumberSize,
				Type:       int(group.Type),
				RoomID:     group.RoomID,
			}
		}),
	}
}
