// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mysavings/backend/config"
	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/application/chat"
	"github.com/mysavings/backend/internal/application/entitlement"
	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/application/usecase/analytics"
	chatuc "github.com/mysavings/backend/internal/application/usecase/chat"
	entitlementuc "github.com/mysavings/backend/internal/application/usecase/entitlement"
	"github.com/mysavings/backend/internal/application/usecase/goal"
	"github.com/mysavings/backend/internal/application/usecase/profile"
	"github.com/mysavings/backend/internal/application/usecase/reminder"
	"github.com/mysavings/backend/internal/infra/cache"
	"github.com/mysavings/backend/internal/infra/db"
	"github.com/mysavings/backend/internal/infra/server/router"
	"github.com/mysavings/backend/internal/integration/adapters"
	"github.com/mysavings/backend/internal/integration/email"
	"github.com/mysavings/backend/internal/integration/email/templates"
	"github.com/mysavings/backend/internal/integration/entrypoint/controller"
	"github.com/mysavings/backend/internal/integration/entrypoint/middleware"
	"github.com/mysavings/backend/internal/integration/persistence"
	"github.com/mysavings/backend/internal/integration/redisstore"
)

// UseCases groups the application use cases shared by the HTTP API and the CLI.
type UseCases struct {
	ListGoals        *goal.ListGoalsUseCase
	CreateGoal       *goal.CreateGoalUseCase
	GetGoal          *goal.GetGoalUseCase
	AddSaving        *goal.AddSavingUseCase
	ListSavings      *goal.ListSavingsUseCase
	GetEntitlement   *entitlementuc.GetEntitlementUseCase
	Upgrade          *entitlementuc.UpgradeUseCase
	GetSummary       *analytics.GetSummaryUseCase
	GetProfile       *profile.GetProfileUseCase
	UpdateProfile    *profile.UpdateProfileUseCase
	OpenChat         *chatuc.OpenChatUseCase
	SendMessage      *chatuc.SendMessageUseCase
	GetTranscript    *chatuc.GetTranscriptUseCase
	DismissChat      *chatuc.DismissChatUseCase
	DispatchReminder *reminder.DispatchRemindersUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Database    *db.Database
	Redis       *redis.Client
	Gate        *entitlement.Gate
	Ledger      *ledger.Ledger
	ChatSession *chat.Session
	EmailSender adapter.EmailSender
	EmailWorker *email.Worker
	Scheduler   *email.Scheduler
	ChatLimiter *middleware.RateLimiter
	UseCases    UseCases
	Router      *router.Router
}

// NewInjector connects the stores, loads persisted state and wires every component.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	inj := &Injector{Config: cfg, Database: database}

	// Create repositories
	var (
		goalRepo        adapter.GoalRepository
		entitlementRepo adapter.EntitlementRepository
		profileRepo     adapter.ProfileRepository
		storeHealth     func() bool
	)
	switch cfg.Ledger.Store {
	case config.LedgerStoreRedis:
		rdb, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			inj.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		inj.Redis = rdb
		store := redisstore.NewStore(rdb, cfg.Redis.KeyPrefix)
		goalRepo, entitlementRepo, profileRepo = store, store, store
		storeHealth = func() bool { return rdb.Ping(context.Background()).Err() == nil }
	case config.LedgerStoreSQL, "":
		goalRepo = persistence.NewGoalRepository(database.DB())
		entitlementRepo = persistence.NewEntitlementRepository(database.DB())
		profileRepo = persistence.NewProfileRepository(database.DB())
		storeHealth = database.HealthCheck
	default:
		inj.Close()
		return nil, fmt.Errorf("unknown ledger store %q", cfg.Ledger.Store)
	}
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Load persisted state
	inj.Gate = entitlement.NewGate(entitlementRepo)
	if err := inj.Gate.Load(ctx); err != nil {
		inj.Close()
		return nil, err
	}
	inj.Ledger = ledger.New(inj.Gate, goalRepo)
	if err := inj.Ledger.Load(ctx); err != nil {
		inj.Close()
		return nil, err
	}
	slog.Info("Ledger loaded",
		"store", storeName(cfg.Ledger.Store),
		"goals", inj.Ledger.Count(),
		"plan", inj.Gate.Plan(),
	)

	// Create chat session
	canned := chat.NewCannedResponder(inj.Ledger)
	var responder adapter.ChatResponder = canned
	gemini := adapters.NewGeminiResponder(cfg.Chat.GeminiAPIKey, cfg.Chat.GeminiModel, cfg.Chat.RequestTimeout, inj.Ledger)
	if gemini.IsAvailable() {
		responder = gemini
		slog.Info("Chat answers via Gemini", "model", cfg.Chat.GeminiModel)
	} else {
		slog.Warn("Gemini API key not configured, chat uses canned answers")
	}
	inj.ChatSession = chat.NewSession(responder, canned, cfg.Chat.ReplyDelay)

	// Create email services
	renderer, err := templates.NewRenderer()
	if err != nil {
		inj.Close()
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	if cfg.Email.ResendAPIKey != "" {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if cfg.Email.ResendBaseURL != "" {
			if err := resendClient.WithBaseURL(cfg.Email.ResendBaseURL); err != nil {
				inj.Close()
				return nil, err
			}
		}
		inj.EmailSender = resendClient
	} else {
		slog.Warn("Resend API key not configured, reminder emails are logged only")
		inj.EmailSender = email.NewMockEmailSender()
	}
	inj.EmailWorker = email.NewWorker(emailQueueRepo, inj.EmailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
	reminderService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create use cases
	inj.UseCases = UseCases{
		ListGoals:        goal.NewListGoalsUseCase(inj.Ledger),
		CreateGoal:       goal.NewCreateGoalUseCase(inj.Ledger),
		GetGoal:          goal.NewGetGoalUseCase(inj.Ledger),
		AddSaving:        goal.NewAddSavingUseCase(inj.Ledger),
		ListSavings:      goal.NewListSavingsUseCase(inj.Ledger),
		GetEntitlement:   entitlementuc.NewGetEntitlementUseCase(inj.Gate, inj.Ledger),
		Upgrade:          entitlementuc.NewUpgradeUseCase(inj.Gate, inj.Ledger),
		GetSummary:       analytics.NewGetSummaryUseCase(inj.Ledger),
		GetProfile:       profile.NewGetProfileUseCase(profileRepo),
		UpdateProfile:    profile.NewUpdateProfileUseCase(profileRepo),
		OpenChat:         chatuc.NewOpenChatUseCase(inj.ChatSession),
		SendMessage:      chatuc.NewSendMessageUseCase(inj.ChatSession),
		GetTranscript:    chatuc.NewGetTranscriptUseCase(inj.ChatSession),
		DismissChat:      chatuc.NewDismissChatUseCase(inj.ChatSession),
		DispatchReminder: reminder.NewDispatchRemindersUseCase(inj.Ledger, profileRepo, reminderService),
	}

	inj.Scheduler = email.NewScheduler(inj.UseCases.DispatchReminder, cfg.Reminder.CheckInterval, reminderLocation(cfg.Reminder.Location))

	// Create controllers
	uc := inj.UseCases
	healthController := controller.NewHealthController(storeName(cfg.Ledger.Store), storeHealth)
	goalController := controller.NewGoalController(uc.ListGoals, uc.CreateGoal, uc.GetGoal, uc.AddSaving, uc.ListSavings)
	entitlementController := controller.NewEntitlementController(uc.GetEntitlement, uc.Upgrade)
	analyticsController := controller.NewAnalyticsController(uc.GetSummary)
	profileController := controller.NewProfileController(uc.GetProfile, uc.UpdateProfile)
	chatController := controller.NewChatController(uc.OpenChat, uc.SendMessage, uc.GetTranscript, uc.DismissChat)

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	chatLimit := cfg.Chat.RateLimit
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		chatLimit = 1000
	}

	inj.ChatLimiter = middleware.NewRateLimiter(chatLimit)
	inj.Router = router.NewRouter(
		healthController,
		goalController,
		entitlementController,
		analyticsController,
		profileController,
		chatController,
		inj.ChatLimiter,
	)

	return inj, nil
}

// Close releases the store connections.
func (i *Injector) Close() {
	if i.ChatSession != nil {
		i.ChatSession.Dismiss()
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if i.Database != nil {
		if err := i.Database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func storeName(store string) string {
	if store == config.LedgerStoreRedis {
		return config.LedgerStoreRedis
	}
	return config.LedgerStoreSQL
}

func reminderLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("Unknown reminder timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}
