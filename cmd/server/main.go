package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ChrisHallak/course-scheduling/internal/cpsat"
	"github.com/ChrisHallak/course-scheduling/internal/handler"
	"github.com/ChrisHallak/course-scheduling/internal/service"
	"github.com/ChrisHallak/course-scheduling/pkg/config"
	"github.com/ChrisHallak/course-scheduling/pkg/logger"
	reqidmiddleware "github.com/ChrisHallak/course-scheduling/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var solver cpsat.Solver
	switch cfg.Solver.Backend {
	case config.SolverRoundingsat:
		solver = cpsat.NewRoundingsatSolver()
	default:
		solver = cpsat.NewBacktrackingSolver()
	}

	svc := service.NewScheduleService(solver, validator.New(), logr, service.Config{
		SolveTimeout: cfg.Solver.Timeout,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))

	handler.NewScheduleHandler(svc).Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "solver", cfg.Solver.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
