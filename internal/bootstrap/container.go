package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/DeDsEC-7/NoteNest-Api/internal/config"
	"github.com/DeDsEC-7/NoteNest-Api/internal/constant"
	"github.com/DeDsEC-7/NoteNest-Api/internal/controller"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/logger"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/mailer"
	"github.com/DeDsEC-7/NoteNest-Api/internal/pkg/serverutils"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/memory"
	"github.com/DeDsEC-7/NoteNest-Api/internal/repository/unitofwork"
	"github.com/DeDsEC-7/NoteNest-Api/internal/service"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/cache"
	pktNats "github.com/DeDsEC-7/NoteNest-Api/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const searchCacheTTL = 60 * time.Second

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController
	TodoController controller.ITodoController
	TaskController controller.ITaskController
	HomeController controller.IHomeController

	// Background services, run from main
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS mirror is optional; the activity trail works without it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis search cache, bypassed entirely when no URL is configured.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}
	searchCache := cache.NewSearchCache(rdb, searchCacheTTL)
	pinnedCache := memory.NewPinnedCache()

	// 3. Event pipeline
	auditLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	publisherService := service.NewPublisherService(pubSub, constant.ActivityTopic)
	consumerService := service.NewConsumerService(pubSub, constant.ActivityTopic, auditLogger, natsPub)

	// 4. Services
	jwtExpiry := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	authService := service.NewAuthService(uowFactory, emailService, publisherService, cfg.JWT.Secret, jwtExpiry, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, pinnedCache, searchCache, sysLogger)
	todoService := service.NewTodoService(uowFactory, publisherService, pinnedCache, searchCache, sysLogger)
	taskService := service.NewTaskService(uowFactory)
	homeService := service.NewHomeService(uowFactory, pinnedCache, searchCache, sysLogger)

	// 5. Controllers share one token verifier wired to the signing secret.
	authMiddleware := serverutils.NewJwtMiddleware(cfg.JWT.Secret)
	return &Container{
		AuthController: controller.NewAuthController(authService, authMiddleware),
		NoteController: controller.NewNoteController(noteService, authMiddleware),
		TodoController: controller.NewTodoController(todoService, authMiddleware),
		TaskController: controller.NewTaskController(taskService, authMiddleware),
		HomeController: controller.NewHomeController(homeService, authMiddleware),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
