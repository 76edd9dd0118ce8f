package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/qanoonlab/qanoon/internal/core/extract"
	"github.com/qanoonlab/qanoon/internal/core/scope"
	"github.com/qanoonlab/qanoon/internal/kb"
	"github.com/qanoonlab/qanoon/internal/llm"
	"github.com/qanoonlab/qanoon/internal/session"
)

// ErrEmptyQuery is returned for blank input, before any routing or history
// mutation happens.
var ErrEmptyQuery = errors.New("empty query")

// Router decides, per query, whether to answer from the knowledge base,
// refuse as out-of-scope, or delegate to the generative model. Evaluation is
// terminal on first match: an article reference short-circuits everything
// else.
type Router struct {
	kb       *kb.KnowledgeBase
	scope    scope.Classifier
	delegate llm.ChatClient // nil when no credential is configured
	logger   *zap.Logger
}

func NewRouter(knowledge *kb.KnowledgeBase, classifier scope.Classifier, delegate llm.ChatClient, logger *zap.Logger) *Router {
	return &Router{
		kb:       knowledge,
		scope:    classifier,
		delegate: delegate,
		logger:   logger,
	}
}

// Ask routes one query and records the completed query/response pair on the
// session. On any error nothing is appended, so a failed delegate call never
// leaves a partial turn in the log.
func (r *Router) Ask(ctx context.Context, sess *session.Session, query string) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, ErrEmptyQuery
	}

	res, err := r.route(ctx, sess, query)
	if err != nil {
		return Result{}, err
	}

	sess.Record(query, res.Text)
	return res, nil
}

func (r *Router) route(ctx context.Context, sess *session.Session, query string) (Result, error) {
	if num := extract.ArticleNumber(query); num != "" {
		if article, ok := r.kb.Get(num); ok {
			r.logger.Debug("KB hit", zap.String("article", num))
			return Result{Source: SourceKnowledgeBase, Text: kb.Render(num, article)}, nil
		}
		r.logger.Debug("KB miss", zap.String("article", num))
		return Result{Source: SourceKnowledgeBase, Text: kb.RenderMiss(num)}, nil
	}

	if !r.scope.InScope(query) {
		return Result{Source: SourceRefusal, Text: RefusalMessage}, nil
	}

	if r.delegate == nil {
		return Result{}, fmt.Errorf("%w: no API key configured", llm.ErrDelegateUnavailable)
	}

	text, err := r.delegate.Chat(ctx, SystemInstruction, toMessages(sess.History()), query)
	if err != nil {
		r.logger.Warn("delegate call failed", zap.Error(err))
		return Result{}, err
	}
	return Result{Source: SourceDelegate, Text: text}, nil
}

func toMessages(entries []session.Entry) []llm.Message {
	messages := make([]llm.Message, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, llm.Message{Role: string(e.Role), Content: e.Content})
	}
	return messages
}
