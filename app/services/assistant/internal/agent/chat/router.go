package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultCallTimeout  = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
)

// Retriever fetches menu text chunks ranked by similarity to the query. The
// router treats the chunks as opaque strings plausibly containing menu facts.
type Retriever interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Generator produces an answer grounded strictly in the supplied chunks.
type Generator interface {
	Generate(ctx context.Context, system, question string, chunks []string) (string, error)
}

// rule pairs a predicate over the lower-cased utterance with its handler.
// Rules are evaluated in declaration order and the first match wins; the
// priority is contractual because several patterns overlap textually.
type rule struct {
	match  func(lower string) bool
	handle func(ctx context.Context, s *Session, raw, lower string) string
}

// Router classifies each utterance into an intent and dispatches it. The
// classification itself is stateless; only the session's cart carries state
// between turns.
type Router struct {
	retriever Retriever
	generator Generator
	timeout   time.Duration
	backoff   time.Duration
	rules     []rule
}

func NewRouter(retriever Retriever, generator Generator, timeout, backoff time.Duration) *Router {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	r := &Router{
		retriever: retriever,
		generator: generator,
		timeout:   timeout,
		backoff:   backoff,
	}

	r.rules = []rule{
		{match: matchAnyExact(greetingTokens), handle: fixedReply(greetingReply)},
		{match: matchAnySubstring(statusPhrases), handle: fixedReply(statusReply)},
		{match: matchAnySubstring(capabilityPhrases), handle: fixedReply(capabilityReply)},
		{match: matchPrefix(addPrefix), handle: r.handleAdd},
		{match: matchPrefix(removePrefix), handle: r.handleRemove},
		{match: matchAnySubstring(reviewPhrases), handle: handleReview},
		{match: matchSubstring(placePhrase), handle: handlePlaceOrder},
		{match: matchAny, handle: r.handleQuestion},
	}

	return r
}

// Route processes one turn to completion: classify, dispatch, and append the
// (user, assistant) pair to the conversation log. It never returns an error;
// recoverable failures become degraded reply strings.
func (r *Router) Route(ctx context.Context, s *Session, utterance string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(utterance)
	var reply string
	for _, rule := range r.rules {
		if rule.match(lower) {
			reply = rule.handle(ctx, s, utterance, lower)
			break
		}
	}

	s.appendTurn(utterance, reply)
	return reply
}

func (r *Router) handleAdd(ctx context.Context, s *Session, raw, _ string) string {
	chunks, err := r.search(ctx, menuQuery)
	if err != nil {
		logx.WithContext(ctx).Errorf("menu retrieval failed: %v", err)
		return unavailableReply
	}
	return s.Cart.AddItems(raw[len(addPrefix):], chunks)
}

func (r *Router) handleRemove(_ context.Context, s *Session, raw, _ string) string {
	return s.Cart.RemoveItems(raw[len(removePrefix):])
}

func handleReview(_ context.Context, s *Session, _, _ string) string {
	return s.Cart.Review()
}

func handlePlaceOrder(_ context.Context, s *Session, _, _ string) string {
	return s.Cart.PlaceOrder()
}

func (r *Router) handleQuestion(ctx context.Context, s *Session, raw, _ string) string {
	log := logx.WithContext(ctx)

	chunks, err := r.search(ctx, raw)
	if err != nil {
		log.Errorf("question retrieval failed: %v", err)
		return unavailableReply
	}
	if len(chunks) == 0 {
		// Nothing to ground an answer in: skip the model entirely.
		return noContextReply
	}

	answer, err := r.generate(ctx, answerSystemPrompt, raw, chunks)
	if err != nil {
		log.Errorf("answer generation failed: %v", err)
		return unavailableReply
	}
	if strings.TrimSpace(answer) == "" {
		return unavailableReply
	}
	return answer
}

// search calls the retriever with a bounded timeout and one retry with
// backoff for transient failures.
func (r *Router) search(ctx context.Context, query string) ([]string, error) {
	if r.retriever == nil {
		return nil, fmt.Errorf("retriever unavailable")
	}

	chunks, err := r.callSearch(ctx, query)
	if err == nil {
		return chunks, nil
	}

	logx.WithContext(ctx).Errorf("retrieval attempt failed, retrying once: %v", err)
	time.Sleep(r.backoff)
	return r.callSearch(ctx, query)
}

func (r *Router) callSearch(ctx context.Context, query string) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.retriever.Search(callCtx, query)
}

func (r *Router) generate(ctx context.Context, system, question string, chunks []string) (string, error) {
	if r.generator == nil {
		return "", fmt.Errorf("generator unavailable")
	}

	answer, err := r.callGenerate(ctx, system, question, chunks)
	if err == nil {
		return answer, nil
	}

	logx.WithContext(ctx).Errorf("generation attempt failed, retrying once: %v", err)
	time.Sleep(r.backoff)
	return r.callGenerate(ctx, system, question, chunks)
}

func (r *Router) callGenerate(ctx context.Context, system, question string, chunks []string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.generator.Generate(callCtx, system, question, chunks)
}

func fixedReply(reply string) func(context.Context, *Session, string, string) string {
	return func(context.Context, *Session, string, string) string {
		return reply
	}
}

func matchAnyExact(tokens []string) func(string) bool {
	return func(lower string) bool {
		for _, token := range tokens {
			if lower == token {
				return true
			}
		}
		return false
	}
}

func matchAnySubstring(phrases []string) func(string) bool {
	return func(lower string) bool {
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
		return false
	}
}

func matchSubstring(p string) func(string) bool {
	return func(lower string) bool {
		return strings.Contains(lower, p)
	}
}

func matchPrefix(p string) func(string) bool {
	return func(lower string) bool {
		return strings.HasPrefix(lower, p)
	}
}

func matchAny(string) bool {
	return true
}
