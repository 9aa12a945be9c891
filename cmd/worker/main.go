package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	otpUC "certhub/internal/application/otp/usecases"
	requestUC "certhub/internal/application/request/usecases"
	settingUC "certhub/internal/application/setting/usecases"
	verificationUC "certhub/internal/application/verification/usecases"
	"certhub/internal/infrastructure/certificate"
	"certhub/internal/infrastructure/config"
	"certhub/internal/infrastructure/database"
	"certhub/internal/infrastructure/email"
	"certhub/internal/infrastructure/repository"
	"certhub/internal/infrastructure/scheduler"
	"certhub/internal/shared/biztime"
	"certhub/internal/shared/logger"
)

// sweepInterval is how often the delivery retry sweep runs.
const sweepInterval = 10 * time.Minute

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting certificate maintenance worker", "environment", env)

	if err := biztime.Init(cfg.Biztime.Timezone); err != nil {
		log.Errorw("failed to initialize business timezone", "error", err)
		os.Exit(1)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Repositories and services for the sweep and cleanup jobs
	requestRepo := repository.NewRequestRepository(database.Get())
	otpCodeRepo := repository.NewOTPCodeRepository(database.Get())
	verificationLogRepo := repository.NewVerificationLogRepository(database.Get())
	settingRepo := repository.NewSystemSettingRepository(database.Get(), log)

	provider := settingUC.NewSettingProvider(settingRepo, settingUC.SettingProviderConfig{
		EmailConfig: cfg.Email,
		BaseURL:     cfg.Server.BaseURL,
	}, log)
	dispatcher := email.NewSMTPDispatcher(cfg.Email, provider, log)

	artifactStore, err := certificate.NewFSArtifactStore(cfg.Certificate.ArtifactDir)
	if err != nil {
		log.Errorw("failed to open artifact store", "error", err)
		os.Exit(1)
	}

	retryUC := requestUC.NewRetryNotificationUseCase(requestRepo, artifactStore, dispatcher, log)
	sweep := requestUC.NewRetryNotificationSweep(requestRepo, retryUC, log)
	otpCleanup := otpUC.NewCleanupCodesJob(otpCodeRepo, log)
	auditCleanup := verificationUC.NewCleanupLogsJob(verificationLogRepo, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Errorw("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	if err := manager.RegisterRetrySweep(sweep, sweepInterval); err != nil {
		log.Errorw("failed to register retry sweep", "error", err)
		os.Exit(1)
	}
	if err := manager.RegisterCleanupJobs(otpCleanup, auditCleanup); err != nil {
		log.Errorw("failed to register cleanup jobs", "error", err)
		os.Exit(1)
	}

	manager.Start()
	log.Infow("maintenance worker started",
		"sweep_interval", sweepInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}

	log.Infow("maintenance worker stopped")
}
