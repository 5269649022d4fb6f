// ABOUTME: This file implements a deterministic stub enrichment provider
// ABOUTME: Hash-seeded choices stand in for the external ML services
package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"unicode/utf8"

	"news-hub/domain"
)

// stubTopics is the closed topic vocabulary the stub classifier draws
// from. Real providers return an open set.
var stubTopics = []string{
	"politics", "economy", "tech", "science", "sports",
	"culture", "health", "world", "society", "weather",
}

var stubTones = []string{
	domain.TonePositive, domain.ToneNegative, domain.ToneNeutral, domain.ToneAnxious,
}

const (
	summaryMaxRunes  = 200
	duplicatePrefix  = 160
	fakeSampleModulo = 17
)

// StubProvider derives every annotation from an FNV hash of the input, so
// the same text always yields the same topics, tone, and verdicts. That
// keeps the pipeline fully exercisable without any ML backend.
//
// The duplicate detector remembers content hashes it has seen, so a
// resubmission of the same content is flagged while the first copy keeps
// its verdict.
type StubProvider struct {
	mu        sync.Mutex
	seenByKey map[uint64]int64
}

func NewStubProvider() *StubProvider {
	return &StubProvider{seenByKey: make(map[uint64]int64)}
}

func hash64(text string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return h.Sum64()
}

// Summarize returns the leading sentence-ish prefix of the text.
func (p *StubProvider) Summarize(_ context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("summarize: empty text")
	}

	if idx := strings.IndexAny(text, ".!?"); idx > 0 && idx < summaryMaxRunes {
		return text[:idx+1], nil
	}

	if utf8.RuneCountInString(text) <= summaryMaxRunes {
		return text, nil
	}

	runes := []rune(text)
	return string(runes[:summaryMaxRunes]) + "…", nil
}

// Classify picks one to three topics seeded by the text hash.
func (p *StubProvider) Classify(_ context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("classify: empty text")
	}

	h := hash64(text)
	count := int(h%3) + 1

	topics := make([]string, 0, count)
	seen := make(map[int]struct{}, count)
	for i := 0; len(topics) < count; i++ {
		idx := int((h >> (i * 7)) % uint64(len(stubTopics)))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		topics = append(topics, stubTopics[idx])
	}

	return topics, nil
}

// Sentiment maps the text hash onto a tone and a score in [-1, 1].
func (p *StubProvider) Sentiment(_ context.Context, text string) (*domain.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("sentiment: empty text")
	}

	h := hash64(text)
	tone := stubTones[h%uint64(len(stubTones))]
	score := float64(int64(h%2001)-1000) / 1000.0

	return &domain.Sentiment{Tone: tone, Score: score}, nil
}

// DetectFake flags a deterministic small fraction of items.
func (p *StubProvider) DetectFake(_ context.Context, news *domain.News) (*domain.FakeVerdict, error) {
	if news == nil {
		return nil, fmt.Errorf("detect fake: nil news")
	}

	h := hash64(news.Title + news.Content)
	isFake := h%fakeSampleModulo == 0

	confidence := 0.5
	if isFake {
		confidence = 0.8
	}

	return &domain.FakeVerdict{IsFake: isFake, Confidence: confidence, CheckedBy: "stub"}, nil
}

// DetectDuplicate hashes a normalized content prefix; two items with the
// same leading content collide and the later one is flagged, carrying the
// first item's ID as the potential match. Re-checking the item that owns
// the hash never flags it, so re-processing stays idempotent.
func (p *StubProvider) DetectDuplicate(_ context.Context, news *domain.News) (*domain.DuplicateVerdict, error) {
	if news == nil {
		return nil, fmt.Errorf("detect duplicate: nil news")
	}

	normalized := strings.ToLower(strings.Join(strings.Fields(news.Content), " "))
	if len(normalized) > duplicatePrefix {
		normalized = normalized[:duplicatePrefix]
	}
	key := hash64(normalized)

	p.mu.Lock()
	defer p.mu.Unlock()

	firstID, seen := p.seenByKey[key]
	if !seen {
		p.seenByKey[key] = news.ID
		return &domain.DuplicateVerdict{IsDuplicate: false}, nil
	}
	if firstID == news.ID {
		return &domain.DuplicateVerdict{IsDuplicate: false}, nil
	}

	return &domain.DuplicateVerdict{
		IsDuplicate:      true,
		PotentialMatches: []int64{firstID},
	}, nil
}

// Translate is pass-through with a language marker.
func (p *StubProvider) Translate(_ context.Context, text, targetLang, sourceLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("translate: empty text")
	}
	if targetLang == "" {
		return "", fmt.Errorf("translate: missing target language")
	}

	if sourceLang == targetLang {
		return text, nil
	}

	return fmt.Sprintf("[%s] %s", targetLang, text), nil
}

// RewriteHeadline upcases the first rune and trims trailing punctuation.
func (p *StubProvider) RewriteHeadline(_ context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("rewrite headline: empty text")
	}

	text = strings.TrimRight(text, ".!")
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text, nil
	}

	return strings.ToUpper(string(r)) + text[size:], nil
}
