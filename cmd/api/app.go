package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"construction_console/internal/adapter/http/handlers"
	"construction_console/internal/adapter/http/routes"
	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/adapter/persistence/repository"
	"construction_console/internal/adapter/persistence/store"
	"construction_console/internal/config"
	"construction_console/internal/infrastructure/database"
	"construction_console/internal/infrastructure/notify"
	"construction_console/internal/infrastructure/scheduler"
	"construction_console/internal/infrastructure/suggest"
	"construction_console/internal/usecase"
	"construction_console/internal/usecase/interfaces"
)

const (
	drainTimeout        = 15 * time.Second
	reminderJobName     = "followup-reminders"
	moduleName          = "main"
	errBackendUnhandled = "unsupported %s driver %q"
)

// run wires the console and blocks until ctx ends or a component fails.
func run(ctx context.Context, cfg *config.Config) error {
	log := config.Module(moduleName)
	g, ctx := errgroup.WithContext(ctx)

	var redisClient *redis.Client
	if cfg.StoreDriver == config.StoreDriverRedis {
		client, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
	}

	remote, err := newStore(ctx, cfg, redisClient)
	if err != nil {
		return err
	}

	tracker := outbox.NewTracker()
	writes, closeWrites, err := newDispatcher(ctx, g, cfg, remote, tracker)
	if err != nil {
		return err
	}

	layout := repository.NewLayout(cfg.TenantID)
	repos := usecase.Repositories{
		Items:     repository.NewItemStoreRepository(remote, writes, layout),
		Estimates: repository.NewEstimateStoreRepository(remote, writes, layout),
		Customers: repository.NewCustomerStoreRepository(remote, writes, layout),
		FollowUps: repository.NewFollowUpStoreRepository(remote, writes, layout),
		Company:   repository.NewCompanyStoreRepository(remote, writes, layout),
	}
	ws := usecase.NewWorkspace(repos)
	ws.Start()
	defer ws.Close()

	loc := cfg.Location()
	reconciler := usecase.NewReconciler(ws, repos.Customers, repos.Items)
	reminders := usecase.NewReminderUseCase(ws, notify.New(cfg), loc)

	sched := scheduler.New(loc)
	if err := sched.Add(reminderJobName, cfg.ReminderSchedule, func(ctx context.Context) error {
		sent, err := reminders.Notify(ctx)
		if sent > 0 {
			log.WithField("sent", sent).Info("follow-up reminders sent")
		}
		return err
	}); err != nil {
		return err
	}
	sched.Start(ctx)

	h := routes.Handlers{
		Estimates: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(ws, repos.Estimates, reconciler)),
		Items:     handlers.NewItemHandler(usecase.NewItemUseCase(ws, repos.Items)),
		Suggestions: handlers.NewSuggestionHandler(
			usecase.NewSuggestionUseCase(suggest.New(ctx, cfg), cfg.SuggestionTimeout),
		),
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(ws, repos.Customers)),
		FollowUps: handlers.NewFollowUpHandler(usecase.NewFollowUpUseCase(ws, repos.FollowUps)),
		Company:   handlers.NewCompanyHandler(usecase.NewCompanyUseCase(ws, repos.Company)),
		Reports:   handlers.NewReportHandler(usecase.NewInsightsUseCase(ws, loc), usecase.NewExportUseCase(repos), tracker, loc),
	}
	g.Go(func() error {
		return routes.Run(ctx, cfg, h)
	})

	err = g.Wait()

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if stopErr := sched.Stop(drainCtx); stopErr != nil {
		log.WithError(stopErr).Warn("reminder job still running at shutdown")
	}
	if closeErr := closeWrites(drainCtx); closeErr != nil {
		config.LogError(config.GetLogger(), moduleName, "run", "pending writes not flushed", tracker.Summary(), closeErr)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (interfaces.IRemoteStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		config.Module(moduleName).Warn("memory store in use, data is lost on restart")
		return store.NewMemoryStore(), nil
	case config.StoreDriverRedis:
		return store.NewRedisStore(redisClient, cfg.RedisKeyPrefix), nil
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store.NewDynamoStore(ddb, cfg.DynamoDBTable), nil
	default:
		return nil, fmt.Errorf(errBackendUnhandled, "store", cfg.StoreDriver)
	}
}

// newDispatcher builds the write journal. The returned close func flushes or stops it.
func newDispatcher(ctx context.Context, g *errgroup.Group, cfg *config.Config, remote interfaces.IRemoteStore, tracker *outbox.Tracker) (interfaces.IWriteDispatcher, func(context.Context) error, error) {
	switch cfg.OutboxDriver {
	case config.OutboxDriverMemory:
		q := outbox.NewQueue(remote, tracker, outbox.QueueConfigFrom(cfg))
		// drained by Close after the server stops
		q.Start(context.WithoutCancel(ctx))
		return q, q.Close, nil
	case config.OutboxDriverAsynq:
		redisOpt := database.AsynqRedisOpt(cfg)
		client := asynq.NewClient(redisOpt)
		worker := outbox.NewWorker(outbox.WorkerConfig{
			RedisOpts:   redisOpt,
			Store:       remote,
			Tracker:     tracker,
			BaseBackoff: cfg.OutboxBaseBackoff,
			MaxBackoff:  cfg.OutboxMaxBackoff,
		})
		g.Go(func() error {
			return worker.Run(ctx)
		})
		closeFn := func(context.Context) error { return client.Close() }
		return outbox.NewAsynqDispatcher(client, tracker, cfg.OutboxMaxAttempts), closeFn, nil
	default:
		return nil, nil, fmt.Errorf(errBackendUnhandled, "outbox", cfg.OutboxDriver)
	}
}
