package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
	"github.com/ChrisHallak/course-scheduling/internal/dto"
	"github.com/ChrisHallak/course-scheduling/internal/model"
	appErrors "github.com/ChrisHallak/course-scheduling/pkg/errors"
)

// ScheduleService runs the two scheduling pipelines. It holds no request
// state: every call builds its entities from the payload and discards them
// with the response.
type ScheduleService struct {
	timetabler   model.Timetabler
	distributor  model.Distributor
	validate     *validator.Validate
	logger       *zap.Logger
	solveTimeout time.Duration
}

// Config governs service behaviour.
type Config struct {
	SolveTimeout time.Duration
}

// NewScheduleService wires the scheduling pipelines around a solver backend.
func NewScheduleService(solver cpsat.Solver, validate *validator.Validate, logger *zap.Logger, cfg Config) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SolveTimeout <= 0 {
		cfg.SolveTimeout = 30 * time.Second
	}
	return &ScheduleService{
		timetabler:   model.NewTimetabler(solver),
		distributor:  model.NewDistributor(solver),
		validate:     validate,
		logger:       logger,
		solveTimeout: cfg.SolveTimeout,
	}
}

// CreateSchedule assigns every session of every group to a time slot.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (dto.CreateScheduleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.CreateScheduleResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	groups := req.ToGroups()
	lookup := model.BuildLookup(req.ToDays(), req.ToTimeIntervals(), req.ToAvailability())

	// Request-level failure: instructors with groups but no availability record
	if missing := model.MissingInstructors(groups, lookup); len(missing) > 0 {
		return dto.CreateScheduleResponse{}, appErrors.Clone(appErrors.ErrMissingAvailability,
			fmt.Sprintf("Instructors missing in availability: %v", strings.Join(missing, ", ")))
	}

	// Per-instructor rules accumulate and fail together
	if violations := model.ValidateInstructorLoads(groups, lookup); len(violations) > 0 {
		return dto.CreateScheduleResponse{}, appErrors.WithDetails(appErrors.ErrValidation, violations)
	}

	ctx, cancel := context.WithTimeout(ctx, s.solveTimeout)
	defer cancel()

	start := time.Now()
	entries, err := s.timetabler.Build(ctx, groups, lookup, req.MaxCoursesPerSlot)
	if err != nil {
		return dto.CreateScheduleResponse{}, appErrors.Wrap(err, appErrors.ErrSolver.Code, appErrors.ErrSolver.Status, appErrors.ErrSolver.Message)
	} else if entries == nil {
		return dto.CreateScheduleResponse{}, appErrors.ErrNoFeasibleSchedule
	}

	s.logger.Info("schedule_created",
		zap.Int("groups", len(groups)),
		zap.Int("sessions", len(entries)),
		zap.Duration("solve_time", time.Since(start)),
	)

	return dto.FromScheduleEntries(entries), nil
}

// DistributeGroups assigns a room to every scheduled group.
func (s *ScheduleService) DistributeGroups(ctx context.Context, req dto.DistributeGroupsRequest) (dto.DistributeGroupsResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.DistributeGroupsResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid distribution payload")
	}

	scheduled := req.ToScheduledGroups()
	rooms := req.ToRooms()

	ctx, cancel := context.WithTimeout(ctx, s.solveTimeout)
	defer cancel()

	start := time.Now()
	distribution, err := s.distributor.Distribute(ctx, scheduled, rooms)

	var infeasible model.InfeasibleSlotError
	if errors.As(err, &infeasible) {
		return dto.DistributeGroupsResponse{}, appErrors.Clone(appErrors.ErrNoFeasibleRoomAssignment, infeasible.Error())
	} else if err != nil {
		return dto.DistributeGroupsResponse{}, appErrors.Wrap(err, appErrors.ErrSolver.Code, appErrors.ErrSolver.Status, appErrors.ErrSolver.Message)
	}

	s.logger.Info("groups_distributed",
		zap.Int("groups", len(scheduled)),
		zap.Int("slots", len(model.PartitionBySlot(scheduled))),
		zap.Duration("solve_time", time.Since(start)),
	)

	return dto.FromDistribution(distribution), nil
}
