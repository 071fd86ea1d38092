package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/RitikJ22/hirewise/config"
	_ "github.com/RitikJ22/hirewise/docs" // Important for Swagger
	v1 "github.com/RitikJ22/hirewise/internal/delivery/http/v1"
	"github.com/RitikJ22/hirewise/internal/repository/fixture"
	"github.com/RitikJ22/hirewise/internal/repository/memory"
	"github.com/RitikJ22/hirewise/internal/usecase"
	"github.com/RitikJ22/hirewise/pkg/logger"
)

// @title           Hirewise Screening API
// @version         1.0
// @description     Candidate screening backend: filter, score, sort and shortlist applicants.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hirewise backend", "port", cfg.Port, "strategy", cfg.ScoringStrategy)

	// 3. Setup Repositories
	candidateRepo := fixture.NewCandidateRepository(cfg.DataPath)
	shortlistRepo := memory.NewShortlistRepository()

	// 4. Pick Scoring Strategy
	var scorer usecase.ScoringStrategy
	if cfg.ScoringStrategy == config.StrategyFixed {
		scorer = usecase.NewFixedWeightScorer()
	} else {
		scorer = usecase.NewDynamicWeightScorer()
	}

	// 5. Setup UseCases
	validate := validator.New()
	screeningUC := usecase.NewScreeningUsecase(candidateRepo, scorer)
	shortlistUC := usecase.NewShortlistUsecase(shortlistRepo, validate, cfg.ShortlistCapacity)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ScreeningUC: screeningUC,
		ShortlistUC: shortlistUC,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
