package matcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scorerPairs = [][2][]string{
	{{}, {}},
	{{}, {"hello"}},
	{{"hello"}, {"hello"}},
	{{"hello", "there"}, {"hello"}},
	{{"good", "morn"}, {"good", "afternoon"}},
	{{"what", "is", "your", "name"}, {"who", "are", "you"}},
	{{"xyzzi", "quux"}, {"bye"}},
	{{"a", "a", "b"}, {"b", "c", "c"}},
}

func pairVocabulary() Vocabulary {
	var seqs [][]string
	for _, p := range scorerPairs {
		seqs = append(seqs, p[0], p[1])
	}
	return BuildVocabulary(seqs...)
}

func scorers() map[string]Scorer {
	return map[string]Scorer{
		"jaccard": JaccardScorer{},
		"cosine":  NewCosineScorer(pairVocabulary()),
	}
}

func TestScorerSymmetricAndBounded(t *testing.T) {
	for name, s := range scorers() {
		t.Run(name, func(t *testing.T) {
			for _, p := range scorerPairs {
				ab := s.Score(p[0], p[1])
				ba := s.Score(p[1], p[0])
				assert.Equal(t, ab, ba, "%v vs %v", p[0], p[1])
				assert.GreaterOrEqual(t, ab, 0.0)
				assert.LessOrEqual(t, ab, 1.0)
			}
		})
	}
}

func TestScorerEmptyInput(t *testing.T) {
	for name, s := range scorers() {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, s.Score(nil, nil))
			assert.Zero(t, s.Score([]string{}, []string{"hello"}))
			assert.Zero(t, s.Score([]string{"hello"}, nil))
		})
	}
}

func TestScorerExactMatch(t *testing.T) {
	assert.Equal(t, 1.0, JaccardScorer{}.Score([]string{"hello"}, []string{"hello"}))
	assert.InDelta(t, 1.0, NewCosineScorer(Vocabulary{"hello"}).Score([]string{"hello"}, []string{"hello"}), 1e-9)
}

func TestJaccardScorer(t *testing.T) {
	s := JaccardScorer{}
	assert.InDelta(t, 1.0/3.0, s.Score([]string{"a", "b"}, []string{"b", "c"}), 1e-12)
	assert.Equal(t, 0.5, s.Score([]string{"hello", "there"}, []string{"hello"}))
	// duplicates collapse into the set
	assert.Equal(t, 1.0, s.Score([]string{"a", "a"}, []string{"a"}))
	assert.Zero(t, s.Score([]string{"x"}, []string{"y"}))
}

func TestCosineScorer(t *testing.T) {
	s := NewCosineScorer(BuildVocabulary([]string{"hello", "world"}, []string{"bye"}))

	assert.Equal(t, []float64{0, 1, 0}, s.Vector([]string{"hello", "unknown"}))
	assert.InDelta(t, 1.0, s.Score([]string{"hello", "there"}, []string{"hello"}), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, s.Score([]string{"hello", "world"}, []string{"hello"}), 1e-9)
	assert.Zero(t, s.Score([]string{"xyzzy"}, []string{"hello"}))
	assert.Zero(t, s.Score([]string{"bye"}, []string{"hello"}))
}

func TestCosineScorerEmptyVocabulary(t *testing.T) {
	s := NewCosineScorer(nil)
	assert.Zero(t, s.Score([]string{"hello"}, []string{"hello"}))
}

func TestBuildVocabulary(t *testing.T) {
	vocab := BuildVocabulary([]string{"hello", "there"}, []string{"bye", "hello"}, nil)
	assert.Equal(t, Vocabulary{"bye", "hello", "there"}, vocab)
	assert.Empty(t, BuildVocabulary())
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Cosine ")
	require.NoError(t, err)
	assert.Equal(t, StrategyCosine, s)

	s, err = ParseStrategy("jaccard")
	require.NoError(t, err)
	assert.Equal(t, StrategyJaccard, s)

	_, err = ParseStrategy("tfidf")
	assert.Error(t, err)
}

func TestNewScorer(t *testing.T) {
	assert.IsType(t, JaccardScorer{}, NewScorer(StrategyJaccard, nil))
	assert.IsType(t, &CosineScorer{}, NewScorer(StrategyCosine, Vocabulary{"a"}))
}
