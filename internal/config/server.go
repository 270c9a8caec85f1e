package config

import (
	responderHandler "ResponderBot/internal/api/responder/handler"
	responderRepository "ResponderBot/internal/api/responder/repository"
	responderService "ResponderBot/internal/api/responder/service"
	"ResponderBot/internal/middleware"
	"ResponderBot/pkg/nlp"
	"ResponderBot/pkg/s3"
	"ResponderBot/pkg/whatsapp"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	handlers         []handler
	whatsappClient   whatsapp.IWhatsappClient
	s3Client         s3.ItfS3
	responderService responderService.IResponderService
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

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client only builds the client when the document lives in S3;
// the default file backend needs no AWS configuration.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		if os.Getenv("STORE_BACKEND") != "s3" {
			return nil
		}

		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient connects the transport. WHATSAPP_ENABLED=false runs
// the admin surface alone, with outbound messages going to the log.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		if os.Getenv("WHATSAPP_ENABLED") == "false" {
			return nil
		}

		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func (s *Server) RegisterHandler() {
	backend := s.newDocumentBackend()
	responderRepo := responderRepository.New(backend, s.log)

	var sender responderService.Sender
	if s.whatsappClient != nil {
		sender = s.whatsappClient
	} else {
		sender = responderService.NewLogSender(s.log)
	}

	responderServices := responderService.New(
		s.log,
		responderRepo,
		sender,
		responderService.NewRandSource(),
		similarityThreshold(),
	)
	s.responderService = responderServices

	if s.whatsappClient != nil {
		s.whatsappClient.OnMessage(responderServices.ProcessMessage)
	}

	responderHandlers := responderHandler.New(s.log, s.validator, s.middleware, responderServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, responderHandlers)
}

func (s *Server) newDocumentBackend() responderRepository.DocumentBackend {
	path := os.Getenv("RESPONSES_PATH")
	if path == "" {
		path = "./respuestas.json"
	}

	if s.s3Client != nil {
		key := os.Getenv("RESPONSES_S3_KEY")
		if key == "" {
			key = "respuestas.json"
		}
		return responderRepository.NewS3Backend(s.s3Client, key)
	}

	return responderRepository.NewFileBackend(path)
}

func similarityThreshold() float64 {
	raw := os.Getenv("SIMILARITY_THRESHOLD")
	if raw == "" {
		return nlp.DefaultSimilarityThreshold
	}

	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || threshold <= 0 || threshold > 1 {
		return nlp.DefaultSimilarityThreshold
	}

	return threshold
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) Shutdown() {
	if s.whatsappClient != nil {
		s.whatsappClient.Disconnect()
	}
	if s.engine != nil {
		_ = s.engine.Shutdown()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		whatsappStatus := "disabled"
		if s.whatsappClient != nil {
			whatsappStatus = "disconnected"
			if s.whatsappClient.IsConnected() {
				whatsappStatus = "connected"
			}
		}

		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"whatsapp": whatsappStatus,
		})
	})
}
