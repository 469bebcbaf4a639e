package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/config"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/db"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/email"
	apihttp "github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/http"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/llm"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/repository"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)

	catalog, err := repository.LoadProductCatalog(cfg.ProductsFile)
	if err != nil {
		// Catalogo ausente no es fatal: queda vacio.
		logger.Warn("product catalog load failed", zap.String("file", cfg.ProductsFile), zap.Error(err))
	}

	tokenCodec, err := service.NewLinkTokenCodec(cfg.JWTSecretKey)
	if err != nil {
		logger.Fatal("token codec init", zap.Error(err))
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var resetLimiter service.ResetRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			resetLimiter = service.NewRedisResetRateLimiter(redisClient, time.Hour, 5)
		}
		cancel()
	}

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("llm api key not configured; code generation uses templates only")
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecretKey, 24*time.Hour)
	authSvc := service.NewAuthService(logger, userRepo, tokenCodec, emailSender, resetLimiter, cfg.PublicBaseURL)
	recommendSvc := service.NewRecommendService(catalog)
	codegenSvc := service.NewCodeGenService(logger, llmClient)

	authHandler := apihttp.NewAuthHandler(logger, authSvc, jwtSvc)
	recommendHandler := apihttp.NewRecommendHandler(logger, recommendSvc)
	codegenHandler := apihttp.NewCodeGenHandler(logger, codegenSvc)
	agentHandler := apihttp.NewAgentHandler(logger)
	router := apihttp.NewRouter(logger, authHandler, recommendHandler, codegenHandler, agentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
