package config

import (
	"BlogGolang/database/postgres"
	blogHandler "BlogGolang/internal/api/blog/handler"
	blogRepository "BlogGolang/internal/api/blog/repository"
	blogService "BlogGolang/internal/api/blog/service"
	commentHandler "BlogGolang/internal/api/comment/handler"
	commentRepository "BlogGolang/internal/api/comment/repository"
	commentService "BlogGolang/internal/api/comment/service"
	tagHandler "BlogGolang/internal/api/tag/handler"
	tagRepository "BlogGolang/internal/api/tag/repository"
	tagService "BlogGolang/internal/api/tag/service"
	userHandler "BlogGolang/internal/api/user/handler"
	userRepository "BlogGolang/internal/api/user/repository"
	userService "BlogGolang/internal/api/user/service"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/geocode"
	"BlogGolang/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	geocoder    geocode.ItfGeocode
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithGeocodeClient() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before geocode client")
		}
		s.geocoder = geocode.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// User Domain
	usersRepo := userRepository.New(s.db, s.log)
	usersServices := userService.New(s.log, usersRepo, s.bcryptUtils, s.geocoder, s.utils)
	usersHandlers := userHandler.New(s.log, s.validator, s.middleware, usersServices)

	// Blog Domain
	blogsRepo := blogRepository.New(s.db, s.log)
	blogsServices := blogService.NewBlogsService(s.log, blogsRepo, s.utils)
	blogsHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogsServices)

	// Tag Domain
	tagsRepo := tagRepository.New(s.db, s.log)
	tagsServices := tagService.NewTagsService(s.log, tagsRepo, s.utils)
	tagsHandlers := tagHandler.New(s.log, s.validator, s.middleware, tagsServices)

	// Comment Domain
	commentsRepo := commentRepository.New(s.db, s.log)
	commentsServices := commentService.NewCommentsService(s.log, commentsRepo, s.utils)
	commentsHandlers := commentHandler.New(s.log, s.validator, s.middleware, commentsServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, usersHandlers, blogsHandlers, tagsHandlers, commentsHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
