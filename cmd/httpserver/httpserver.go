// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/go-petr/super-app/internal/admindelivery"
	"github.com/go-petr/super-app/internal/aiservice"
	"github.com/go-petr/super-app/internal/assistdelivery"
	"github.com/go-petr/super-app/internal/auditlog"
	"github.com/go-petr/super-app/internal/chatdelivery"
	"github.com/go-petr/super-app/internal/chatservice"
	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/internal/gamedelivery"
	"github.com/go-petr/super-app/internal/gameservice"
	"github.com/go-petr/super-app/internal/insurancedelivery"
	"github.com/go-petr/super-app/internal/insuranceservice"
	"github.com/go-petr/super-app/internal/ledger"
	"github.com/go-petr/super-app/internal/metrics"
	"github.com/go-petr/super-app/internal/middleware"
	"github.com/go-petr/super-app/internal/pluginservice"
	"github.com/go-petr/super-app/internal/searchservice"
	"github.com/go-petr/super-app/internal/statusservice"
	"github.com/go-petr/super-app/internal/userdelivery"
	"github.com/go-petr/super-app/internal/userservice"
	"github.com/go-petr/super-app/internal/walletdelivery"
	"github.com/go-petr/super-app/internal/walletservice"
	"github.com/go-petr/super-app/pkg/configpkg"
	"github.com/go-petr/super-app/pkg/moneypkg"
	"github.com/go-petr/super-app/pkg/passpkg"
	"github.com/go-petr/super-app/pkg/tokenpkg"
)

// limiterIdle is how long a client may stay silent before its limiter is dropped.
const limiterIdle = 10 * time.Minute

var registerValidators sync.Once

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
	Ledger *ledger.Store

	logger  zerolog.Logger
	limiter *middleware.RateLimiter
	cron    *cron.Cron
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(config configpkg.Config, logger zerolog.Logger) (*Server, error) {
	var regErr error

	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			regErr = v.RegisterValidation("amount", moneypkg.ValidAmount)
		}
	})

	if regErr != nil {
		return nil, fmt.Errorf("cannot register amount validator: %w", regErr)
	}

	hasher, err := passpkg.New(config.PasswordHasher, config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("cannot create password hasher: %w", err)
	}

	store, err := ledger.New(hasher)
	if err != nil {
		return nil, fmt.Errorf("cannot create ledger: %w", err)
	}

	tokenMaker, err := tokenpkg.New(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	features := config.Features()
	audit := auditlog.New()

	userService := userservice.New(store, audit, tokenMaker, config.AccessTokenDuration)
	walletService := walletservice.New(store, audit, config.GBPrice())
	insuranceService := insuranceservice.New(audit)
	chatService := chatservice.New(audit)
	gameService := gameservice.New(gameservice.DefaultGames(), audit)
	searchService := searchservice.New(config.Online, config.ParseSearchIndex())
	aiService := aiservice.New(aiservice.DefaultSkills())
	pluginService := pluginservice.New(pluginservice.BuiltinPlugins(), audit)
	statusService := statusservice.New(
		domain.AppInfo{Name: config.AppName, Version: config.AppVersion, Engine: config.AppEngine},
		features,
		searchService,
		store,
		pluginService,
	)

	userHandler := userdelivery.NewHandler(userService)
	walletHandler := walletdelivery.NewHandler(walletService)
	insuranceHandler := insurancedelivery.NewHandler(insuranceService)
	chatHandler := chatdelivery.NewHandler(chatService)
	gameHandler := gamedelivery.NewHandler(gameService)
	assistHandler := assistdelivery.NewHandler(searchService, aiService)
	adminHandler := admindelivery.NewHandler(pluginService, audit, statusService)

	limiter := middleware.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.Metrics())
	engine.Use(limiter.Handler())

	engine.GET("/", adminHandler.Status)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/auth/register", userHandler.Register)
	engine.POST("/auth/login", userHandler.Login)

	wallet := engine.Group("/wallet", middleware.RequireFeature(features, configpkg.FeaturePayment))
	wallet.POST("/add/:username/:amount", walletHandler.TopUp)
	wallet.POST("/pay_bill", walletHandler.PayBill)
	wallet.GET("/:username", walletHandler.Balance)

	engine.GET("/internet/buy/:username/:gb", walletHandler.BuyInternet)
	engine.GET("/internet/packages/:username", walletHandler.Packages)

	insurance := engine.Group("/insurance", middleware.RequireFeature(features, configpkg.FeatureInsurance))
	insurance.POST("/buy/:username/:plan", insuranceHandler.Buy)
	insurance.GET("/:username", insuranceHandler.Get)

	engine.POST("/chat/send", chatHandler.Send)
	engine.GET("/chat/inbox/:username", chatHandler.Inbox)

	game := engine.Group("/game", middleware.RequireFeature(features, configpkg.FeatureGames))
	game.GET("/play/:username", gameHandler.Play)
	game.GET("/list", gameHandler.List)

	engine.GET("/search", middleware.RequireFeature(features, configpkg.FeatureSearch), assistHandler.Search)

	ai := engine.Group("/ai", middleware.RequireFeature(features, configpkg.FeatureAI))
	ai.GET("", assistHandler.Ask)
	ai.GET("/skills", assistHandler.Skills)

	admin := engine.Group("/admin",
		middleware.AuthMiddleware(tokenMaker),
		middleware.RequireRole(domain.RoleAdmin),
	)
	admin.POST("/add_plugin", adminHandler.AddPlugin)
	admin.GET("/plugins", adminHandler.ListPlugins)
	admin.POST("/plugins/:name/run", adminHandler.RunPlugin)
	admin.GET("/audit", adminHandler.Audit)
	admin.POST("/mode/:mode", assistHandler.SetMode)

	server := &Server{
		Engine:  engine,
		Config:  config,
		Ledger:  store,
		logger:  logger,
		limiter: limiter,
		cron:    cron.New(),
	}

	return server, nil
}

// Start schedules background jobs.
func (s *Server) Start() error {
	_, err := s.cron.AddFunc(s.Config.LimiterCleanupSchedule, func() {
		removed := s.limiter.Cleanup(limiterIdle)
		s.logger.Debug().Int("removed", removed).Msg("rate limiter cleanup")
	})
	if err != nil {
		return fmt.Errorf("cannot schedule rate limiter cleanup: %w", err)
	}

	s.cron.Start()

	return nil
}

// Stop stops background jobs and waits for running ones to finish or ctx to expire.
func (s *Server) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
