package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"adaptive-quiz-service/internal/adaptive"
	"adaptive-quiz-service/internal/event"
	"adaptive-quiz-service/internal/handlers"
	"adaptive-quiz-service/internal/repository"
	"adaptive-quiz-service/internal/selection"
	"adaptive-quiz-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher eventPublisher
	if rabbitURL != "" && eventExchange != "" {
		p, err := event.NewEventPublisher(rabbitURL, eventExchange, logger)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RabbitMQ not configured, quiz events will not be published")
	}

	r := gin.Default()

	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// In-memory stores: session and bank lifetime is the process lifetime.
	bankRepo := repository.NewBankRepository()
	sessionRepo := repository.NewSessionRepository()

	adaptiveManager := adaptive.NewManager(nil, nil, logger)
	selector := selection.NewSelector(nil)

	quizService := service.NewQuizService(bankRepo, nil, logger)
	sessionService := service.NewSessionService(sessionRepo, bankRepo, adaptiveManager, selector, logger)

	quizHandler := handlers.NewQuizHandler(quizService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	setupRoutes(r, quizHandler, sessionHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	r.Run(":" + port)
}

// eventPublisher is the lifecycle event sink; nil disables publishing.
type eventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// withEvent publishes an event after the handler, but only when the handler
// succeeded. Failed requests must not emit lifecycle events.
func withEvent(handler gin.HandlerFunc, publisher eventPublisher, eventType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c)
		if publisher == nil || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		publisher.Publish(eventType, gin.H{
			"timestamp": time.Now(),
		})
	}
}

func setupRoutes(r *gin.Engine, quizHandler *handlers.QuizHandler, sessionHandler *handlers.SessionHandler, publisher eventPublisher) {
	quiz := r.Group("/competitive-quiz")
	{
		quiz.POST("/generate-bank", withEvent(quizHandler.GenerateBank, publisher, "quiz.bank.generated"))
		quiz.GET("/bank/:id", quizHandler.BankInfo)

		quiz.POST("/start", withEvent(sessionHandler.StartQuiz, publisher, "quiz.session.started"))
		quiz.POST("/answer", withEvent(sessionHandler.SubmitAnswer, publisher, "quiz.answer.submitted"))

		quiz.GET("/session/:id", sessionHandler.GetSession)
		quiz.GET("/session/:id/stats", sessionHandler.GetStats)
		quiz.GET("/learning/stats", sessionHandler.LearningStats)
	}
}
