package app

import (
	"github.com/casbin/casbin/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/domain"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/config"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/auth"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/database"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/notifications"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/repositories"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/infrastructure/storage"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client
	Enforcer    *casbin.Enforcer

	UserRepo     domain.UserRepository
	ContactRepo  domain.ContactRepository
	SessionCache domain.SessionCache

	PasswordSvc   domain.PasswordService
	TokenSvc      domain.TokenService
	MailSvc       domain.MailService
	AvatarStorage domain.AvatarStorage
	AuthSvc       domain.AuthService
	ContactSvc    domain.ContactService
	UserSvc       domain.UserService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	container.DB = db
	container.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, err
	}
	container.Enforcer = cas.E

	container.UserRepo = repositories.NewUserRepository(db)
	container.ContactRepo = repositories.NewContactRepository(db)
	container.SessionCache = repositories.NewSessionCache(container.RedisClient, cfg.CacheTTL)

	container.PasswordSvc = auth.NewPasswordService()
	container.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	container.MailSvc = notifications.NewMailService(
		cfg.MailHost,
		cfg.MailPort,
		cfg.MailUsername,
		cfg.MailPassword,
		cfg.MailFrom,
		cfg.MailFromName,
		cfg.MailTimeout,
		container.TokenSvc,
	)
	container.AvatarStorage = storage.NewS3AvatarStorage(
		cfg.S3Region,
		cfg.S3Bucket,
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3PublicURL,
	)

	container.AuthSvc = services.NewAuthService(
		container.UserRepo,
		container.PasswordSvc,
		container.TokenSvc,
		container.MailSvc,
		int64(cfg.AccessTTL.Seconds()),
	)
	container.ContactSvc = services.NewContactService(container.ContactRepo)
	container.UserSvc = services.NewUserService(container.UserRepo, container.AvatarStorage)

	return container, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
