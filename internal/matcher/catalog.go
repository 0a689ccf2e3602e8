package matcher

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"intent-chatbot/internal/models"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidDefinition = errors.New("invalid intent definition")

// DefinitionError describes the first malformed entry of a training set.
type DefinitionError struct {
	Index  int
	Tag    string
	Field  string
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s: intents[%d] (%s).%s: %s", ErrInvalidDefinition, e.Index, e.Tag, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: intents[%d].%s: %s", ErrInvalidDefinition, e.Index, e.Field, e.Reason)
}

func (e *DefinitionError) Unwrap() error { return ErrInvalidDefinition }

// Intent is a catalog entry. Patterns and Responses keep definition order.
type Intent struct {
	Tag       string
	Patterns  []string
	Responses []string
}

type document struct {
	intent int
	tokens []string
}

// model is an immutable trained state. It is never mutated after build.
type model struct {
	intents    []Intent
	vocabulary Vocabulary
	documents  []document
	scorer     Scorer
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateDefinitions(v *validator.Validate, defs []models.IntentDefinition) error {
	seen := make(map[string]int, len(defs))
	for i := range defs {
		def := &defs[i]
		if err := v.Struct(def); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return &DefinitionError{
					Index:  i,
					Tag:    def.Tag,
					Field:  verrs[0].Field(),
					Reason: verrs[0].Tag(),
				}
			}
			return fmt.Errorf("%w: intents[%d]: %v", ErrInvalidDefinition, i, err)
		}
		if first, ok := seen[def.Tag]; ok {
			return &DefinitionError{
				Index:  i,
				Tag:    def.Tag,
				Field:  "tag",
				Reason: fmt.Sprintf("duplicate of intents[%d]", first),
			}
		}
		seen[def.Tag] = i
	}
	return nil
}

func buildModel(defs []models.IntentDefinition, tokenizer *Tokenizer, scorerFor func(Vocabulary) Scorer) *model {
	m := &model{
		intents: make([]Intent, 0, len(defs)),
	}
	var sequences [][]string
	for i, def := range defs {
		m.intents = append(m.intents, Intent{
			Tag:       def.Tag,
			Patterns:  append([]string(nil), def.Patterns...),
			Responses: append([]string(nil), def.Responses...),
		})
		for _, pattern := range def.Patterns {
			tokens := tokenizer.Tokenize(pattern)
			m.documents = append(m.documents, document{intent: i, tokens: tokens})
			sequences = append(sequences, tokens)
		}
	}
	m.vocabulary = BuildVocabulary(sequences...)
	m.scorer = scorerFor(m.vocabulary)
	return m
}
