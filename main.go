package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-levels/api"
	gameapi "github.com/beka-birhanu/vinom-levels/api/game"
	api_i "github.com/beka-birhanu/vinom-levels/api/i"
	"github.com/beka-birhanu/vinom-levels/api/identity"
	"github.com/beka-birhanu/vinom-levels/config"
	"github.com/beka-birhanu/vinom-levels/infrastruture/leaderboard"
	logger "github.com/beka-birhanu/vinom-levels/infrastruture/log"
	"github.com/beka-birhanu/vinom-levels/infrastruture/repo"
	"github.com/beka-birhanu/vinom-levels/infrastruture/token"
	"github.com/beka-birhanu/vinom-levels/service"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient           *mongo.Client
	redisClient           *redis.Client
	playerRepo            *repo.PlayerRepo
	sessionRepo           i.SessionRepo
	scoreBoard            i.Leaderboard
	levelService          *service.LevelService
	sessionManager        i.SessionManager
	jwtTokenizer          i.Tokenizer
	authService           i.Authenticator
	authController        api_i.Controller
	sessionController     api_i.Controller
	levelController       api_i.Controller
	leaderboardController api_i.Controller
	router                *api.Router
	appLogger             i.Logger
)

func mustLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	playerRepo = repo.NewPlayerRepo(mongoClient, config.Envs.DBName, "players")
	if err := playerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating player indexes: %v", err))
		os.Exit(1)
	}
	sessionRepo = repo.NewSessionRepo(mongoClient, config.Envs.DBName, "sessions")
	appLogger.Info("Repositories initialized")
}

func initLeaderboard() {
	var err error
	scoreBoard, err = leaderboard.NewRedisLeaderboard(redisClient, config.Envs.LeaderboardKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initLevelService() {
	profile, err := config.LoadLevelProfile(config.Envs.LevelProfileFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading level profile: %v", err))
		os.Exit(1)
	}

	levelService, err = service.NewLevelService(service.LevelServiceConfig{
		Profile: profile,
		Logger:  mustLogger("LEVELS", config.ColorBlue),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Level service initialized")
}

func initSessionManager() {
	var err error
	sessionManager, err = service.NewSessionManager(&service.SessionManagerConfig{
		Levels:      levelService,
		Repo:        sessionRepo,
		Players:     playerRepo,
		Leaderboard: scoreBoard,
		Logger:      mustLogger("SESSION-MANAGER", config.ColorCyan),
		LevelCount:  config.Envs.LevelCount,
		Rows:        config.Envs.GridRows,
		Cols:        config.Envs.GridCols,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	authService = service.NewAuth(playerRepo, jwtTokenizer)
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	sessionController = gameapi.NewSessionController(sessionManager)
	levelController = gameapi.NewLevelController(levelService)
	leaderboardController = gameapi.NewLeaderboardController(scoreBoard)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, sessionController, levelController, leaderboardController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Load()
	appLogger = mustLogger("APP", config.ColorGreen)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initLeaderboard()
	initLevelService()
	initSessionManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
