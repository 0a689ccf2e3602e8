package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viterin/vek"
)

// Strategy names a similarity metric.
type Strategy string

const (
	// StrategyCosine compares presence vectors over the trained vocabulary.
	StrategyCosine Strategy = "cosine"
	// StrategyJaccard compares raw token sets.
	StrategyJaccard Strategy = "jaccard"
)

// epsilon keeps the cosine denominator away from zero for all-zero vectors.
const epsilon = 1e-10

// Scorer returns a symmetric similarity in [0,1] for two token sequences.
// Either sequence being empty yields 0.
type Scorer interface {
	Score(a, b []string) float64
}

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyCosine:
		return StrategyCosine, nil
	case StrategyJaccard:
		return StrategyJaccard, nil
	default:
		return "", fmt.Errorf("unknown scorer strategy %q", s)
	}
}

// NewScorer builds the scorer for strategy. The vocabulary is only consulted
// by the cosine strategy.
func NewScorer(strategy Strategy, vocab Vocabulary) Scorer {
	if strategy == StrategyJaccard {
		return JaccardScorer{}
	}
	return NewCosineScorer(vocab)
}

// Vocabulary is the sorted, deduplicated set of tokens seen in training.
type Vocabulary []string

func BuildVocabulary(sequences ...[]string) Vocabulary {
	seen := make(map[string]struct{})
	for _, seq := range sequences {
		for _, tok := range seq {
			seen[tok] = struct{}{}
		}
	}
	vocab := make(Vocabulary, 0, len(seen))
	for tok := range seen {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)
	return vocab
}

type JaccardScorer struct{}

func (JaccardScorer) Score(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)

	common := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			common++
		}
	}
	union := len(setA) + len(setB) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}

// CosineScorer scores bag-of-words presence vectors laid out over a fixed
// vocabulary. Tokens outside the vocabulary do not contribute.
type CosineScorer struct {
	vocab Vocabulary
	index map[string]int
}

func NewCosineScorer(vocab Vocabulary) *CosineScorer {
	index := make(map[string]int, len(vocab))
	for i, tok := range vocab {
		index[tok] = i
	}
	return &CosineScorer{vocab: vocab, index: index}
}

// Vector returns the 0/1 presence vector of tokens.
func (s *CosineScorer) Vector(tokens []string) []float64 {
	vec := make([]float64, len(s.vocab))
	for _, tok := range tokens {
		if i, ok := s.index[tok]; ok {
			vec[i] = 1
		}
	}
	return vec
}

func (s *CosineScorer) Score(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 || len(s.vocab) == 0 {
		return 0
	}
	va := s.Vector(a)
	vb := s.Vector(b)

	score := vek.Dot(va, vb) / (vek.Norm(va)*vek.Norm(vb) + epsilon)
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
