package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qanoonlab/qanoon/internal/config"
	"github.com/qanoonlab/qanoon/internal/core"
	"github.com/qanoonlab/qanoon/internal/core/scope"
	"github.com/qanoonlab/qanoon/internal/kb"
	"github.com/qanoonlab/qanoon/internal/llm"
	"github.com/qanoonlab/qanoon/internal/session"
)

type Server struct {
	Router   *core.Router
	KB       *kb.KnowledgeBase
	Sessions *session.Store
	Config   *config.Config

	logger *zap.Logger
}

// NewServer wires the knowledge base, scope classifier, delegate, and router
// from configuration. A missing API key disables the delegate path with a
// warning rather than failing startup.
func NewServer(logger *zap.Logger) (*Server, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("could not load config file, using defaults", zap.String("path", cfgPath), zap.Error(err))
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	knowledge := kb.Load(cfg.KB.Path, logger)
	classifier := scope.NewKeywordClassifier(cfg.Scope.Keywords)
	delegate := buildDelegate(cfg, logger)

	return &Server{
		Router:   core.NewRouter(knowledge, classifier, delegate, logger),
		KB:       knowledge,
		Sessions: session.NewStore(),
		Config:   cfg,
		logger:   logger,
	}, nil
}

func buildDelegate(cfg *config.Config, logger *zap.Logger) llm.ChatClient {
	provider := strings.ToLower(cfg.LLM.Provider)
	if cfg.LLM.APIKey == "" && provider != "ollama" {
		logger.Warn("LLM API key missing; delegate path disabled, only KB questions will be answered",
			zap.String("provider", provider))
		return nil
	}

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		logger.Warn("failed to initialize LLM client; delegate path disabled", zap.Error(err))
		return nil
	}
	return llm.NewRetryClient(client, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/ask", s.Ask)
	r.GET("/history", s.History)
	r.GET("/articles/:number", s.Article)

	return r
}

type AskRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

func (s *Server) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var sess *session.Session
	if req.SessionID == "" {
		sess = s.Sessions.Create()
	} else {
		var ok bool
		sess, ok = s.Sessions.Get(req.SessionID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown session"})
			return
		}
	}

	result, err := s.Router.Ask(c.Request.Context(), sess, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a question."})
		case errors.Is(err, llm.ErrDelegateUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "The language model is currently unavailable. Please try again."})
		default:
			s.logger.Error("failed to route query", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process question"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"source":     result.Source,
		"answer":     result.Text,
	})
}

func (s *Server) History(c *gin.Context) {
	id := c.Query("session_id")
	sess, ok := s.Sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"entries":    sess.History(),
	})
}

func (s *Server) Article(c *gin.Context) {
	number := kb.CanonicalNumber(c.Param("number"))
	article, ok := s.KB.Get(number)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": kb.RenderMiss(number)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"number": number,
		"title":  article.Title,
		"answer": kb.Render(number, article),
	})
}
