package matcher

import (
	"sort"
	"sync"
	"sync/atomic"

	"intent-chatbot/internal/models"

	"github.com/go-playground/validator/v10"
)

// Threshold is the score an intent has to exceed to be answered.
const Threshold = 0.3

// Result is the outcome of matching one input against the catalog.
type Result struct {
	Trained bool
	Tag     string
	Score   float64
	Matched bool
}

// Summary describes a freshly trained catalog.
type Summary struct {
	Intents    int
	Vocabulary int
	Documents  int
}

// DebugInfo is a read-only snapshot of the trained state.
type DebugInfo struct {
	VocabularySize int      `json:"vocabulary_size"`
	Intents        []string `json:"intents"`
	DocumentsCount int      `json:"documents_count"`
}

// Engine matches free text against a trained intent catalog. Readers never
// block: Train builds a complete model and publishes it with one atomic store.
type Engine struct {
	tokenizer *Tokenizer
	strategy  Strategy
	random    Random
	validate  *validator.Validate
	newScorer func(Strategy, Vocabulary) Scorer

	trainMu sync.Mutex
	model   atomic.Pointer[model]
}

type Option func(*Engine)

func WithStrategy(strategy Strategy) Option {
	return func(e *Engine) { e.strategy = strategy }
}

func WithStemming(stem bool) Option {
	return func(e *Engine) { e.tokenizer = NewTokenizer(stem) }
}

func WithRandom(r Random) Option {
	return func(e *Engine) { e.random = r }
}

// New returns an untrained engine. Defaults: cosine scorer, stemming on,
// process-wide random source.
func New(opts ...Option) *Engine {
	e := &Engine{
		tokenizer: NewTokenizer(true),
		strategy:  StrategyCosine,
		random:    globalRandom{},
		validate:  newValidator(),
		newScorer: NewScorer,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Strategy() Strategy { return e.strategy }

// Tokenize runs the engine's tokenizer.
func (e *Engine) Tokenize(text string) []string {
	return e.tokenizer.Tokenize(text)
}

// Train validates defs and replaces the whole catalog. On error the previous
// catalog stays in place.
func (e *Engine) Train(defs []models.IntentDefinition) (Summary, error) {
	if err := validateDefinitions(e.validate, defs); err != nil {
		return Summary{}, err
	}

	e.trainMu.Lock()
	defer e.trainMu.Unlock()

	m := buildModel(defs, e.tokenizer, func(v Vocabulary) Scorer {
		return e.newScorer(e.strategy, v)
	})
	e.model.Store(m)

	return Summary{
		Intents:    len(m.intents),
		Vocabulary: len(m.vocabulary),
		Documents:  len(m.documents),
	}, nil
}

// Trained reports whether a non-empty catalog is loaded.
func (e *Engine) Trained() bool {
	m := e.model.Load()
	return m != nil && len(m.intents) > 0
}

// Match scores text against every pattern and keeps the first best intent.
func (e *Engine) Match(text string) Result {
	res, _ := e.match(e.model.Load(), text)
	return res
}

func (e *Engine) match(m *model, text string) (Result, int) {
	if m == nil || len(m.intents) == 0 {
		return Result{}, -1
	}

	tokens := e.tokenizer.Tokenize(text)
	best := -1
	bestScore := 0.0
	for _, doc := range m.documents {
		score := m.scorer.Score(tokens, doc.tokens)
		if score > bestScore {
			bestScore = score
			best = doc.intent
		}
	}

	res := Result{Trained: true, Score: bestScore}
	if best >= 0 {
		res.Tag = m.intents[best].Tag
		res.Matched = bestScore > Threshold
	}
	return res, best
}

// Respond returns a response of the best matching intent, a fallback phrase
// when nothing clears the threshold, or UntrainedResponse.
func (e *Engine) Respond(text string) string {
	response, _ := e.RespondWithResult(text)
	return response
}

// RespondWithResult is Respond plus the match decision behind it.
func (e *Engine) RespondWithResult(text string) (string, Result) {
	m := e.model.Load()
	res, best := e.match(m, text)
	if !res.Trained {
		return UntrainedResponse, res
	}
	if res.Matched {
		return pick(e.random, m.intents[best].Responses), res
	}
	return pick(e.random, FallbackResponses), res
}

// Catalog returns a copy of the trained intents in catalog order.
func (e *Engine) Catalog() []Intent {
	m := e.model.Load()
	if m == nil {
		return nil
	}
	out := make([]Intent, len(m.intents))
	for i, in := range m.intents {
		out[i] = Intent{
			Tag:       in.Tag,
			Patterns:  append([]string(nil), in.Patterns...),
			Responses: append([]string(nil), in.Responses...),
		}
	}
	return out
}

// Vocabulary returns a copy of the trained vocabulary.
func (e *Engine) Vocabulary() Vocabulary {
	m := e.model.Load()
	if m == nil {
		return nil
	}
	return append(Vocabulary(nil), m.vocabulary...)
}

func (e *Engine) DebugInfo() DebugInfo {
	info := DebugInfo{Intents: []string{}}
	m := e.model.Load()
	if m == nil {
		return info
	}
	for _, in := range m.intents {
		info.Intents = append(info.Intents, in.Tag)
	}
	sort.Strings(info.Intents)
	info.VocabularySize = len(m.vocabulary)
	info.DocumentsCount = len(m.documents)
	return info
}
