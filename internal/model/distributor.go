package model

import (
	"context"
	"fmt"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
)

// InfeasibleSlotError reports the slot for which no room assignment exists.
type InfeasibleSlotError struct {
	Slot TimeSlot
}

func (err InfeasibleSlotError) Error() string {
	return fmt.Sprintf("No feasible room assignment for slot %v-%v", err.Slot.DayID, err.Slot.TimeID)
}

// Distributor assigns a physical room to every already-scheduled group.
type Distributor interface {
	// Distribute returns one room binding per scheduled group. When any slot
	// is infeasible the whole request fails with an InfeasibleSlotError and
	// the remaining slots' results are discarded. Output order across slots
	// is unspecified.
	Distribute(ctx context.Context, scheduled []ScheduledGroup, rooms []Room) ([]DistributedGroup, error)

	// Verify re-checks every distribution invariant against an emitted
	// distribution.
	Verify(distribution []DistributedGroup, scheduled []ScheduledGroup, rooms []Room) bool
}

func NewDistributor(solver cpsat.Solver) Distributor {
	return &slotDistributor{solver: solver}
}

type slotDistributor struct {
	solver cpsat.Solver
}

// PartitionBySlot groups scheduled groups by their calendar coordinates.
// A room's occupancy at one slot is independent of every other slot, so each
// partition is a self-contained assignment problem.
func PartitionBySlot(scheduled []ScheduledGroup) map[TimeSlot][]ScheduledGroup {
	partition := make(map[TimeSlot][]ScheduledGroup)
	for _, group := range scheduled {
		key := group.Slot.Key()
		partition[key] = append(partition[key], group)
	}
	return partition
}

func (distributor *slotDistributor) Distribute(ctx context.Context, scheduled []ScheduledGroup, rooms []Room) ([]DistributedGroup, error) {
	slots := PartitionBySlot(scheduled)
	if len(slots) == 0 {
		return []DistributedGroup{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type slotResult struct {
		groups []DistributedGroup
		err    error
	}
	results := make(chan slotResult)

	// The per-slot sub-problems are data-disjoint, solve them concurrently
	for key, groupsInSlot := range slots {
		go func(key TimeSlot, groupsInSlot []ScheduledGroup) {
			groups, err := distributor.assignSlot(ctx, key, groupsInSlot, rooms)
			results <- slotResult{groups: groups, err: err}
		}(key, groupsInSlot)
	}

	distribution := make([]DistributedGroup, 0, len(scheduled))
	var firstErr error

	collected := 0
	for result := range results {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
				cancel() // Remaining slots are moot, stop their searches
			}
		} else {
			distribution = append(distribution, result.groups...)
		}

		if collected++; collected == len(slots) {
			close(results)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return distribution, nil
}

// assignSlot builds and solves the room model of a single slot. Variables
// exist only for compatible (group, room) pairs: infeasible pairs are never
// modeled. A group with no compatible room yields an empty exactly-one
// constraint, unsatisfiable by construction and detected by the solver.
func (distributor *slotDistributor) assignSlot(ctx context.Context, key TimeSlot, groupsInSlot []ScheduledGroup, rooms []Room) ([]DistributedGroup, error) {
	model := cpsat.NewModel()

	type pairKey struct {
		GroupID string
		RoomID  string
	}
	vars := make(map[pairKey]cpsat.Var)

	for _, group := range groupsInSlot {
		for _, room := range rooms {
			if room.Fits(group) {
				vars[pairKey{GroupID: group.ID, RoomID: room.ID}] = model.NewBoolVar(fmt.Sprintf("y_%v_%v", group.ID, room.ID))
			}
		}
	}

	// Each group is assigned exactly one room
	for _, group := range groupsInSlot {
		possible := []cpsat.Var{}
		for _, room := range rooms {
			if v, ok := vars[pairKey{GroupID: group.ID, RoomID: room.ID}]; ok {
				possible = append(possible, v)
			}
		}
		model.AddExactlyOne(possible)
	}

	// Each room holds at most one group
	for _, room := range rooms {
		assigned := []cpsat.Var{}
		for _, group := range groupsInSlot {
			if v, ok := vars[pairKey{GroupID: group.ID, RoomID: room.ID}]; ok {
				assigned = append(assigned, v)
			}
		}
		if len(assigned) > 0 {
			model.AddAtMost(assigned, 1)
		}
	}

	result, err := distributor.solver.Solve(ctx, model)
	if err != nil {
		return nil, err
	} else if result.Status != cpsat.StatusSatisfiable { // UNKNOWN is treated the same as UNSAT
		return nil, InfeasibleSlotError{Slot: key}
	}

	distribution := make([]DistributedGroup, 0, len(groupsInSlot))
	for _, group := range groupsInSlot {
		for _, room := range rooms {
			v, ok := vars[pairKey{GroupID: group.ID, RoomID: room.ID}]
			if !ok || !result.Values.Value(v) {
				continue
			}
			distribution = append(distribution, DistributedGroup{
				ID:         group.ID,
				Slot:       group.Slot,
				NumberSize: group.StudentsCount,
				Type:       group.Type,
				RoomID:     room.ID,
			})
			break
		}
	}
	return distribution, nil
}

func (distributor *slotDistributor) Verify(distribution []DistributedGroup, scheduled []ScheduledGroup, rooms []Room) bool {
	if len(distribution) != len(scheduled) {
		return false
	}

	roomsByID := lo.SliceToMap(rooms, func(r Room) (string, Room) { return r.ID, r })
	scheduledByID := lo.SliceToMap(scheduled, func(g ScheduledGroup) (string, ScheduledGroup) { return g.ID, g })

	seen := make(map[string]bool)
	occupied := make(map[TimeSlot]map[string]bool)

	for _, entry := range distribution {
		source, ok := scheduledByID[entry.ID]
		if !ok || seen[entry.ID] {
			return false
		}
		seen[entry.ID] = true

		// Slot and size/type metadata pass through unchanged
		if entry.Slot != source.Slot || entry.NumberSize != source.StudentsCount || entry.Type != source.Type {
			return false
		}

		room, ok := roomsByID[entry.RoomID]
		if !ok || !room.Fits(source) {
			return false
		}

		key := entry.Slot.Key()
		if occupied[key] == nil {
			occupied[key] = make(map[string]bool)
		}
		if occupied[key][room.ID] {
			return false
		}
		occupied[key][room.ID] = true
	}

	return true
}

// Assignable reports whether every slot admits a perfect group-to-room
// matching, via maximum bipartite matching over the compatibility predicate.
// It is an independent feasibility oracle for cross-checking solver verdicts.
func Assignable(scheduled []ScheduledGroup, rooms []Room) bool {
	roomsAny := lo.Map(rooms, func(room Room, _ int) any { return room })

	for _, groupsInSlot := range PartitionBySlot(scheduled) {
		groupsAny := lo.Map(groupsInSlot, func(group ScheduledGroup, _ int) any { return group })

		neighbours := func(groupAny any, roomAny any) (bool, error) {
			return roomAny.(Room).Fits(groupAny.(ScheduledGroup)), nil
		}

		graph, err := bipartitegraph.NewBipartiteGraph(groupsAny, roomsAny, neighbours)
		if err != nil {
			return false
		}

		if len(graph.LargestMatching()) < len(groupsInSlot) {
			return false
		}
	}
	return true
}
