package state

import (
	"context"
	"os"

	"github.com/stevenson0/Insta-clone/config"
	"github.com/stevenson0/Insta-clone/database"
	"github.com/stevenson0/Insta-clone/decorator"
	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/preferences"
	"github.com/stevenson0/Insta-clone/screens"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"github.com/redis/go-redis/v9"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var (
	Pool      *gorm.DB
	Redis     *redis.Client
	Logger    *zap.Logger
	Context   = context.Background()
	Validator = validator.New()
	Config    *config.Config

	Gateway *gateway.Gateway
	Screens *screens.Registry
	Themes  *preferences.Themes
)

func SetupValidator() {
	Validator.RegisterValidation("notblank", validators.NotBlank)
	Validator.RegisterValidation("nospaces", snippets.ValidatorNoSpaces)
	Validator.RegisterValidation("https", snippets.ValidatorIsHttps)
	Validator.RegisterValidation("httporhttps", snippets.ValidatorIsHttpOrHttps)
	Validator.RegisterValidation("screenkind", validateScreenKind)
}

func validateScreenKind(fl validator.FieldLevel) bool {
	return slices.Contains(screens.Kinds(), screens.Kind(fl.Field().String()))
}

func Setup() {
	SetupValidator()

	genconfig.GenConfig(config.Config{})

	cfg, err := os.ReadFile("config.yaml")
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}

	err = yaml.Unmarshal(cfg, &Config)
	if err != nil {
		panic("Failed to parse config file: " + err.Error())
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		Config.Gemini.APIKey = key
	}

	err = Validator.Struct(Config)
	if err != nil {
		panic("config validation error: " + err.Error())
	}

	// Initialize Logger
	Logger = snippets.CreateZap()

	var store preferences.Store

	switch Config.Storage.Backend {
	case "postgres":
		Pool, err = database.OpenPostgres(Config.Storage.DatabaseURL)
		if err != nil {
			panic(err.Error())
		}

		store = preferences.NewGormStore(Pool)
	case "redis":
		Redis, err = database.OpenRedis(Context, Config.Storage.RedisURL)
		if err != nil {
			panic(err.Error())
		}

		store = preferences.NewRedisStore(Redis)
	default:
		Logger.Warn("Theme preferences are kept in memory and will not survive a restart")
		store = preferences.NewMemoryStore()
	}

	Themes = preferences.NewThemes(store, Logger.Named("preferences"))

	gen, err := gateway.NewGenAIGenerator(Context, Config.Gemini.APIKey, Config.Gemini.RequestsPerSecond, Config.Gemini.Burst)
	if err != nil {
		panic("Failed to create Gemini client: " + err.Error())
	}

	Gateway = gateway.New(
		gen,
		gateway.Models{Fast: Config.Gemini.FastModel, Reasoning: Config.Gemini.ReasoningModel},
		decorator.New(Config.Assets.ImageBaseURL),
		Logger.Named("gateway"),
	)

	Screens = screens.NewRegistry(screens.Deps{
		Gateway:        Gateway,
		Logger:         Logger.Named("screens"),
		PublicURL:      Config.Server.PublicURL,
		ChatReplyDelay: Config.Screens.ChatReplyDelay,
	}, Config.Screens.TTL)
}

// Shutdown stops every mounted screen and closes the storage connections
func Shutdown() {
	if Screens != nil {
		Screens.Close()
	}

	if Redis != nil {
		Redis.Close()
	}

	if Pool != nil {
		if db, err := Pool.DB(); err == nil {
			db.Close()
		}
	}

	Logger.Sync()
}
