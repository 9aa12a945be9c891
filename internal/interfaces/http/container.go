package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	eventUC "certhub/internal/application/event/usecases"
	otpUC "certhub/internal/application/otp/usecases"
	requestUC "certhub/internal/application/request/usecases"
	settingUC "certhub/internal/application/setting/usecases"
	verificationUC "certhub/internal/application/verification/usecases"
	"certhub/internal/domain/request"
	"certhub/internal/infrastructure/certificate"
	"certhub/internal/infrastructure/config"
	"certhub/internal/infrastructure/eligibility"
	"certhub/internal/infrastructure/email"
	"certhub/internal/infrastructure/ratelimit"
	"certhub/internal/infrastructure/repository"
	"certhub/internal/interfaces/http/handlers/admin"
	"certhub/internal/interfaces/http/handlers/public"
	shareddb "certhub/internal/shared/db"
	"certhub/internal/shared/logger"
)

// Container wires repositories, use cases, and handlers for the HTTP server.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	publicHandler  *public.PublicHandler
	requestHandler *admin.RequestHandler
	eventHandler   *admin.EventHandler
	settingHandler *admin.SettingHandler

	limiter ratelimit.RateLimiter
}

// NewContainer builds the full dependency graph on top of the shared database
// and redis connections.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	// Repositories
	requestRepo := repository.NewRequestRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	otpCodeRepo := repository.NewOTPCodeRepository(db)
	institutionRepo := repository.NewInstitutionRepository(db)
	eventDateRepo := repository.NewEventDateRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	verificationLogRepo := repository.NewVerificationLogRepository(db)
	settingRepo := repository.NewSystemSettingRepository(db, log)

	// Infrastructure services
	provider := settingUC.NewSettingProvider(settingRepo, settingUC.SettingProviderConfig{
		EmailConfig: cfg.Email,
		BaseURL:     cfg.Server.BaseURL,
	}, log)

	dispatcher := email.NewSMTPDispatcher(cfg.Email, provider, log)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)
	checker := eligibility.NewCommerceChecker(db)
	txManager := shareddb.NewTransactionManager(db)

	artifactStore, err := certificate.NewFSArtifactStore(cfg.Certificate.ArtifactDir)
	if err != nil {
		return nil, err
	}

	converter := certificate.NewHTTPConverter(cfg.Certificate.ConverterURL)
	renderTimeout := time.Duration(cfg.Certificate.RenderTimeout) * time.Second
	renderer := certificate.NewHTMLRenderer(cfg.Certificate.TemplateDir, converter, artifactStore, renderTimeout, log)

	idGenerator := request.NewSequencePublicIDGenerator(sequenceRepo, requestRepo, provider.GetPublicIDPrefix)

	// Request lifecycle use cases
	submitUC := requestUC.NewSubmitRequestUseCase(
		requestRepo, participantRepo, eventDateRepo, idGenerator,
		checker, provider, dispatcher, txManager, cfg.Email.AdminAddress, log)
	approveUC := requestUC.NewApproveRequestUseCase(
		requestRepo, institutionRepo, eventDateRepo, participantRepo,
		renderer, artifactStore, dispatcher, provider, log)
	rejectUC := requestUC.NewRejectRequestUseCase(requestRepo, dispatcher, log)
	retryGenUC := requestUC.NewRetryGenerationUseCase(approveUC, log)
	retryNotifyUC := requestUC.NewRetryNotificationUseCase(requestRepo, artifactStore, dispatcher, log)
	listUC := requestUC.NewListRequestsUseCase(requestRepo, log)
	getUC := requestUC.NewGetRequestUseCase(requestRepo, log)
	bulkApproveUC := requestUC.NewBulkApproveUseCase(approveUC, log)
	bulkRejectUC := requestUC.NewBulkRejectUseCase(rejectUC, log)
	deleteUC := requestUC.NewDeleteRequestUseCase(requestRepo, artifactStore, log)
	downloadUC := requestUC.NewDownloadArtifactUseCase(requestRepo, artifactStore, log)

	// OTP and verification use cases
	sendOTPUC := otpUC.NewSendOTPUseCase(otpCodeRepo, eventDateRepo, dispatcher, log)
	checkOTPUC := otpUC.NewVerifyOTPUseCase(otpCodeRepo, log)
	verifyUC := verificationUC.NewVerifyPublicUseCase(requestRepo, verificationLogRepo, limiter, log)
	listLogUC := verificationUC.NewListVerificationLogUseCase(verificationLogRepo, log)

	// Event management use cases
	createInstitutionUC := eventUC.NewCreateInstitutionUseCase(institutionRepo, log)
	updateInstitutionUC := eventUC.NewUpdateInstitutionUseCase(institutionRepo, log)
	deleteInstitutionUC := eventUC.NewDeleteInstitutionUseCase(institutionRepo, eventDateRepo, log)
	listInstitutionsUC := eventUC.NewListInstitutionsUseCase(institutionRepo, log)
	createEventDateUC := eventUC.NewCreateEventDateUseCase(institutionRepo, eventDateRepo, log)
	updateEventDateUC := eventUC.NewUpdateEventDateUseCase(eventDateRepo, log)
	deleteEventDateUC := eventUC.NewDeleteEventDateUseCase(eventDateRepo, participantRepo, log)
	listEventDatesUC := eventUC.NewListEventDatesUseCase(eventDateRepo, log)
	addParticipantUC := eventUC.NewAddParticipantUseCase(eventDateRepo, participantRepo, log)
	removeParticipantUC := eventUC.NewRemoveParticipantUseCase(participantRepo, log)
	listParticipantsUC := eventUC.NewListParticipantsUseCase(participantRepo, log)

	// Settings use cases
	listSettingsUC := settingUC.NewListSettingsUseCase(settingRepo, log)
	updateSettingUC := settingUC.NewUpdateSettingUseCase(settingRepo, log)

	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		publicHandler: public.NewPublicHandler(
			submitUC, downloadUC, verifyUC, sendOTPUC, checkOTPUC, cfg.RateLimit),
		requestHandler: admin.NewRequestHandler(
			listUC, getUC, approveUC, rejectUC, retryGenUC, retryNotifyUC,
			bulkApproveUC, bulkRejectUC, deleteUC),
		eventHandler: admin.NewEventHandler(
			createInstitutionUC, updateInstitutionUC, deleteInstitutionUC, listInstitutionsUC,
			createEventDateUC, updateEventDateUC, deleteEventDateUC, listEventDatesUC,
			addParticipantUC, removeParticipantUC, listParticipantsUC),
		settingHandler: admin.NewSettingHandler(listSettingsUC, updateSettingUC, listLogUC),
		limiter:        limiter,
	}

	c.setupRoutes()
	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases container-held resources. Database and redis connections
// are owned by the caller.
func (c *Container) Shutdown(_ context.Context) error {
	return nil
}
