package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
	"github.com/ChrisHallak/course-scheduling/internal/dto"
	"github.com/ChrisHallak/course-scheduling/internal/model"
)

var (
	validModes   = []string{"schedule", "distribute"}
	validSolvers = []string{"backtracking", "roundingsat"}
	solvers      = map[string]func() cpsat.Solver{
		"backtracking": cpsat.NewBacktrackingSolver,
		"roundingsat":  cpsat.NewRoundingsatSolver,
	}
)

func main() {
	// Define arguments
	modePtr := flag.String("mode", "schedule", "Pipeline to run. Allowed values are: \"schedule\" (assign sessions to time slots) and \"distribute\" (assign rooms to scheduled groups), where \"schedule\" is the default")
	solverPtr := flag.String("solver", "backtracking", "Solver backend to use. Allowed values are: \"backtracking\" and \"roundingsat\", where \"backtracking\" is the default")
	inputPtr := flag.String("input", "", "Path to the request payload in JSON format")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "Wall-clock deadline for each solve call")
	flag.Parse()

	// Validate arguments
	if !slices.Contains(validModes, *modePtr) {
		log.Fatalf("invalid mode: %v", *modePtr)
	}
	if !slices.Contains(validSolvers, *solverPtr) {
		log.Fatalf("invalid solver: %v", *solverPtr)
	}
	if *inputPtr == "" {
		log.Fatal("input file must be specified")
	}

	solver := solvers[*solverPtr]()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutPtr)
	defer cancel()

	switch *modePtr {
	case "schedule":
		runSchedule(ctx, solver, *inputPtr)
	case "distribute":
		runDistribute(ctx, solver, *inputPtr)
	}
}

func runSchedule(ctx context.Context, solver cpsat.Solver, input string) {
	request, err := dto.ScheduleRequestFromJSON(input)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	groups := request.ToGroups()
	lookup := model.BuildLookup(request.ToDays(), request.ToTimeIntervals(), request.ToAvailability())

	if missing := model.MissingInstructors(groups, lookup); len(missing) > 0 {
		log.Fatalf("instructors missing in availability: %v", strings.Join(missing, ", "))
	}
	if violations := model.ValidateInstructorLoads(groups, lookup); len(violations) > 0 {
		log.Fatalf("validation failed:\n\t%v", strings.Join(violations, "\n\t"))
	}

	timetabler := model.NewTimetabler(solver)

	schedule, err := timetabler.Build(ctx, groups, lookup, request.MaxCoursesPerSlot)
	if err != nil {
		log.Fatal(err)
	} else if schedule == nil {
		fmt.Println("Not satisfiable")
		return
	}

	slices.SortFunc(schedule, func(a, b model.ScheduleEntry) int {
		if dayComparison := strings.Compare(a.Day, b.Day); dayComparison != 0 {
			return dayComparison
		}
		return strings.Compare(a.Time, b.Time)
	})

	for _, entry := range schedule {
		fmt.Printf("Day: %v, Time: %v, Course: %v (%v), Session: %v, Instructor: %v\n",
			entry.Day, entry.Time, entry.CourseCode, entry.CourseFamily, entry.Session, entry.Instructor)
	}

	if !timetabler.Verify(schedule, groups, lookup, request.MaxCoursesPerSlot) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}

func runDistribute(ctx context.Context, solver cpsat.Solver, input string) {
	request, err := dto.DistributeRequestFromJSON(input)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	scheduled := request.ToScheduledGroups()
	rooms := request.ToRooms()

	distributor := model.NewDistributor(solver)

	distribution, err := distributor.Distribute(ctx, scheduled, rooms)
	if err != nil {
		log.Fatal(err)
	}

	slices.SortFunc(distribution, func(a, b model.DistributedGroup) int {
		return strings.Compare(a.ID, b.ID)
	})

	for _, group := range distribution {
		fmt.Printf("Group: %v, Day: %v, Time: %v, Room: %v\n",
			group.ID, group.Slot.DayName, group.Slot.TimeName, group.RoomID)
	}

	if !distributor.Verify(distribution, scheduled, rooms) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
