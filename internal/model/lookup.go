package model

import "github.com/samber/lo"

// Lookup carries the derived indexes every pipeline stage reads: id->name
// maps for days and time intervals, the calendar cross-product, and the
// per-instructor availability index.
type Lookup struct {
	dayNames  map[string]string
	timeNames map[string]string

	Slots []TimeSlot // days x time-intervals, in input order

	Allowed    map[string]map[TimeSlot]bool // instructor id -> permitted slots
	SlotCounts map[string]int               // instructor id -> declared slot count
	MaxHours   map[string]int               // instructor id -> hour budget
	Teachers   map[string]string            // instructor id -> display name
}

func BuildLookup(days []Day, intervals []TimeInterval, availability []Availability) Lookup {
	lookup := Lookup{
		dayNames:   lo.SliceToMap(days, func(d Day) (string, string) { return d.ID, d.Name }),
		timeNames:  lo.SliceToMap(intervals, func(t TimeInterval) (string, string) { return t.ID, t.Name }),
		Allowed:    make(map[string]map[TimeSlot]bool, len(availability)),
		SlotCounts: make(map[string]int, len(availability)),
		MaxHours:   make(map[string]int, len(availability)),
		Teachers:   make(map[string]string, len(availability)),
	}

	lookup.Slots = make([]TimeSlot, 0, len(days)*len(intervals))
	for _, day := range days {
		for _, interval := range intervals {
			lookup.Slots = append(lookup.Slots, TimeSlot{DayID: day.ID, TimeID: interval.ID})
		}
	}

	for _, record := range availability {
		allowed := make(map[TimeSlot]bool, len(record.Slots))
		for _, slot := range record.Slots {
			allowed[slot.Key()] = true
		}
		lookup.Allowed[record.TeacherID] = allowed
		lookup.SlotCounts[record.TeacherID] = len(record.Slots)
		lookup.MaxHours[record.TeacherID] = record.MaxHours
		lookup.Teachers[record.TeacherID] = record.Teacher
	}

	return lookup
}

// HasAvailability reports whether an availability record exists for the
// instructor.
func (l Lookup) HasAvailability(instructorID string) bool {
	_, ok := l.Allowed[instructorID]
	return ok
}

// SlotAllowed reports whether the instructor declared the slot as available.
func (l Lookup) SlotAllowed(instructorID string, slot TimeSlot) bool {
	return l.Allowed[instructorID][slot]
}

// DayName resolves a day id, falling back to the id itself.
func (l Lookup) DayName(id string) string {
	if name, ok := l.dayNames[id]; ok {
		return name
	}
	return id
}

// TimeName resolves a time-interval id, falling back to the id itself.
func (l Lookup) TimeName(id string) string {
	if name, ok := l.timeNames[id]; ok {
		return name
	}
	return id
}

// TeacherName resolves an instructor id to its display name, falling back to
// the id itself.
func (l Lookup) TeacherName(instructorID string) string {
	if name, ok := l.Teachers[instructorID]; ok {
		return name
	}
	return instructorID
}
