package api

import (
	"errors"
	"os"
	"path/filepath"

	"intent-chatbot/docs"
	"intent-chatbot/internal/api/handlers"
	"intent-chatbot/internal/dto"
	"intent-chatbot/pkg/auth"
	"intent-chatbot/pkg/config"
	"intent-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Chat   *handlers.ChatHandler
	Train  *handlers.TrainHandler
	System *handlers.SystemHandler
	Auth   *handlers.AuthHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      handlers.ServiceName,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		JSONEncoder:  jsoniter.Marshal,
		JSONDecoder:  jsoniter.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			} else {
				appLogger.Error("Unhandled request error", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Status(code).JSON(dto.ErrorResponse{
				Error:      err.Error(),
				StatusCode: code,
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // registers the swagger spec through init()
	app.Get("/swagger/*", swagger.HandlerDefault)

	webStaticPath := findWebStaticPath(cfg.Server.StaticDir, appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath == "" {
			return c.Status(fiber.StatusNotFound).SendString("Web interface not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(filepath.Join(webStaticPath, "index.html"))
	})

	app.Get("/health", h.System.Health)

	// Flask-style routes
	app.Post("/chat", h.Chat.Chat)

	// Serverless-style routes
	api := app.Group("/api")
	api.Post("/chat", h.Chat.APIChat)
	api.Get("/info", h.System.Info)
	api.Get("/debug", h.System.Debug)

	if cfg.JWT.Enabled {
		guard := middleware.AuthMiddleware(jwtManager, appLogger)
		api.Post("/auth/token", h.Auth.Token)
		app.Post("/train", guard, h.Train.Train)
		api.Post("/train", guard, h.Train.APITrain)
	} else {
		app.Post("/train", h.Train.Train)
		api.Post("/train", h.Train.APITrain)
	}

	return app
}

// findWebStaticPath returns the first directory holding index.html, preferring
// the configured one.
func findWebStaticPath(configured string, logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}
	if configured != "" {
		paths = append([]string{configured}, paths...)
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried static path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
