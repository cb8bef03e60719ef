package app

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	redigo "github.com/garyburd/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/mattes/migrate/database/postgres" // must be first
	"github.com/rs/cors"
	"github.com/sahayog/sahayog-api/internal/api/credentials"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways"
	"github.com/sahayog/sahayog-api/internal/api/transportutil"
	"github.com/sahayog/sahayog-api/internal/api/util"
	"github.com/sahayog/sahayog-api/internal/shared/apperrors"
	"github.com/sahayog/sahayog-api/internal/shared/cache"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/db/gormdb"
	"github.com/sahayog/sahayog-api/internal/shared/db/migrations"
	"github.com/sahayog/sahayog-api/internal/shared/db/redis"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/internal/shared/queue/aws/consumer"
	"github.com/sahayog/sahayog-api/internal/shared/queue/aws/sqs"
	"github.com/sahayog/sahayog-api/internal/shared/queue/consumers"
	"github.com/sahayog/sahayog-api/internal/shared/queue/producers"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
	usagecron "github.com/sahayog/sahayog-api/pkg/api/crons/usage"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/services/billing"
	"github.com/sahayog/sahayog-api/pkg/api/services/plans"
	"github.com/sahayog/sahayog-api/pkg/api/services/subscription"
	usagesrv "github.com/sahayog/sahayog-api/pkg/api/services/usage"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/pkg/api/workers/primaryqueue"
	"github.com/sahayog/sahayog-api/pkg/api/workers/primaryqueue/billingevents"
	"github.com/urfave/negroni"
	"gopkg.in/redsync.v1"
)

type appServices struct {
	plans        plans.Service
	subscription subscription.Service
	billing      billing.Service
	usage        usagesrv.Service
}

type queues struct {
	primarySQS    *sqs.Queue
	primaryDLQSQS *sqs.Queue

	producers struct {
		primaryMultiplexer *producers.Multiplexer

		billingEventCreator *billingevents.CreatorProducer
	}
}

type App struct {
	cfg              config.Config
	log              logutil.Log
	trackedLog       logutil.Log
	errTracker       apperrors.Tracker
	gormDB           *gorm.DB
	sqlDB            *sql.DB
	migrationsRunner *migrations.Runner
	services         appServices
	awsSess          *session.Session
	queues           queues
	authorizer       *auth.Authorizer
	gatewayFactory   paymentgateways.Factory
	accountant       *usage.Accountant
	authGate         *policy.Gate
	distLockFactory  *redsync.Redsync
	redisPool        *redigo.Pool

	usageSnapshotter   *usagecron.Snapshotter
	usageLimitsWatcher *usagecron.LimitsWatcher
}

func (a App) GetDB() *gorm.DB {
	return a.gormDB
}

//nolint:gocyclo
func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog("sahayog-api")
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "api")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.gormDB == nil || a.sqlDB == nil {
		dbConnString, err := gormdb.GetDBConnString(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get DB conn string: %s", err)
		}

		if a.gormDB == nil {
			gormDB, err := gormdb.GetDB(a.cfg, a.trackedLog, dbConnString)
			if err != nil {
				a.log.Fatalf("Can't get DB: %s", err)
			}
			a.gormDB = gormDB
		}

		if a.sqlDB == nil {
			sqlDB, err := gormdb.GetSQLDB(a.cfg, dbConnString)
			if err != nil {
				a.log.Fatalf("Can't get DB: %s", err)
			}
			a.sqlDB = sqlDB
		}
	}

	if a.gatewayFactory == nil {
		a.gatewayFactory = paymentgateways.NewBasicFactory(a.trackedLog, a.cfg)
	}

	if a.accountant == nil {
		a.accountant = usage.NewAccountant(a.trackedLog)
	}

	if a.authGate == nil {
		a.authGate = policy.NewGate(a.trackedLog, a.gormDB, a.cfg, a.accountant)
	}

	if a.redisPool == nil {
		redisPool, err := redis.GetPool(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get redis pool: %s", err)
		}
		a.redisPool = redisPool
	}
}

func (a *App) buildAwsSess() {
	region := a.cfg.GetString("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	awsCfg := aws.NewConfig().WithRegion(region)
	if a.cfg.GetBool("AWS_DEBUG", false) {
		awsCfg = awsCfg.WithLogLevel(aws.LogDebugWithHTTPBody)
	}
	endpoint := a.cfg.GetString("SQS_ENDPOINT")
	if endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(endpoint)
	}
	awsSess, err := session.NewSession(awsCfg)
	if err != nil {
		a.log.Fatalf("Can't make aws session: %s", err)
	}
	a.awsSess = awsSess
}

func (a *App) buildQueues() {
	a.queues.primarySQS = sqs.NewQueue(a.cfg.GetString("SQS_PRIMARY_QUEUE_URL"),
		a.awsSess, a.trackedLog, primaryqueue.VisibilityTimeoutSec)
	a.queues.primaryDLQSQS = sqs.NewQueue(a.cfg.GetString("SQS_PRIMARYDEADLETTER_QUEUE_URL"),
		a.awsSess, a.trackedLog, primaryqueue.VisibilityTimeoutSec)

	a.queues.producers.primaryMultiplexer = producers.NewMultiplexer(a.queues.primarySQS)

	billingEventCreator := &billingevents.CreatorProducer{}
	if err := billingEventCreator.Register(a.queues.producers.primaryMultiplexer); err != nil {
		a.log.Fatalf("Failed to create 'create billing event' producer: %s", err)
	}
	a.queues.producers.billingEventCreator = billingEventCreator
}

func (a *App) buildAuthorizer() {
	verifier, err := credentials.NewJWTVerifier(a.cfg, a.trackedLog)
	if err != nil {
		a.log.Fatalf("Can't build credentials verifier: %s", err)
	}
	a.authorizer = auth.NewAuthorizer(a.gormDB, verifier, a.trackedLog)
}

func (a *App) buildServices() {
	a.services.plans = plans.NewBasicService(
		cache.NewRedis(a.cfg.GetString("REDIS_URL")+"/1"), a.cfg)
	a.services.subscription = subscription.NewBasicService(a.gatewayFactory, a.authGate, a.cfg)
	a.services.billing = billing.NewBasicService(
		a.gatewayFactory, a.authGate, a.cfg, a.queues.producers.billingEventCreator)
	a.services.usage = usagesrv.NewBasicService(
		a.accountant, policy.NewSubscriptionFeatures(a.trackedLog, a.gormDB, a.cfg))
}

func (a *App) buildMigrationsRunner() {
	a.distLockFactory = redsync.New([]redsync.Pool{a.redisPool})
	dbConnString, err := gormdb.GetDBConnString(a.cfg)
	if err != nil {
		a.log.Fatalf("Can't get DB conn string: %s", err)
	}
	a.migrationsRunner = migrations.NewRunner(a.distLockFactory.NewMutex("migrations"), a.trackedLog,
		dbConnString, util.GetProjectRoot())
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildAwsSess()
	a.buildQueues()
	a.buildAuthorizer()
	a.buildServices()
	a.buildMigrationsRunner()

	a.usageSnapshotter = &usagecron.Snapshotter{
		Cfg:        a.cfg,
		DB:         a.gormDB,
		Log:        a.trackedLog,
		Accountant: a.accountant,
	}
	a.usageLimitsWatcher = &usagecron.LimitsWatcher{
		Cfg:        a.cfg,
		DB:         a.gormDB,
		Log:        a.trackedLog,
		Accountant: a.accountant,
	}

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	regCtx := &transportutil.HandlerRegContext{
		Router:     r,
		Log:        a.log,
		ErrTracker: a.errTracker,
		Cfg:        a.cfg,
		DB:         a.gormDB,
		Authorizer: a.authorizer,
	}
	plans.RegisterHandlers(a.services.plans, regCtx)
	subscription.RegisterHandlers(a.services.subscription, regCtx)
	billing.RegisterHandlers(a.services.billing, regCtx)
	usagesrv.RegisterHandlers(a.services.usage, regCtx)
}

func (a App) runMigrations() {
	if err := a.migrationsRunner.Run(); err != nil {
		a.log.Fatalf("Can't run migrations: %s", err)
	}
}

func (a App) buildMultiplexedPrimaryQueueConsumer() *consumers.Multiplexer {
	multiplexer := consumers.NewMultiplexer()

	billingEventCreator := billingevents.NewCreatorConsumer(a.trackedLog, a.sqlDB, a.cfg)
	if err := billingEventCreator.Register(multiplexer, a.distLockFactory); err != nil {
		a.log.Fatalf("Failed to register billing event creator consumer: %s", err)
	}

	return multiplexer
}

func (a App) runConsumers() {
	primaryQueueConsumerMultiplexer := a.buildMultiplexedPrimaryQueueConsumer()
	primaryQueueConsumer := consumer.NewSQS(a.trackedLog, a.cfg, a.queues.primarySQS,
		primaryQueueConsumerMultiplexer, "primary", primaryqueue.VisibilityTimeoutSec)

	go primaryQueueConsumer.Run()
}

func (a App) RunDeadLetterConsumers() {
	primaryDLQConsumerMultiplexer := a.buildMultiplexedPrimaryQueueConsumer()
	primaryDLQConsumer := consumer.NewSQS(a.trackedLog, a.cfg, a.queues.primaryDLQSQS,
		primaryDLQConsumerMultiplexer, "primaryDeadLetter", primaryqueue.VisibilityTimeoutSec)

	primaryDLQConsumer.Run()
}

func (a App) RunEnvironment() {
	a.runMigrations()
	a.runConsumers()

	go a.usageSnapshotter.Run()
	go a.usageLimitsWatcher.Run()
}

func (a App) RunForever() {
	a.RunEnvironment()

	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.cfg.GetInt("port", 3000))
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.GetStringList("ALLOWED_ORIGINS"),
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	n := negroni.Classic()
	n.Use(c)
	n.UseHandler(r)
	return n
}
