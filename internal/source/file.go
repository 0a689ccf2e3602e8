package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"intent-chatbot/internal/models"

	"gopkg.in/yaml.v3"
)

// File reads a training file. JSON is the default; .yaml and .yml are parsed as YAML.
type File struct {
	Path string
}

func (f *File) Name() string { return "file:" + f.Path }

func (f *File) Load(ctx context.Context) ([]models.IntentDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrNoDefinitions, f.Path)
		}
		return nil, fmt.Errorf("failed to read training file: %w", err)
	}

	td, err := ParseTrainingData(data, filepath.Ext(f.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}
	if len(td.Intents) == 0 {
		return nil, fmt.Errorf("%w: %s has no intents", ErrNoDefinitions, f.Path)
	}
	return td.Intents, nil
}

// ParseTrainingData decodes data according to the file extension ext.
func ParseTrainingData(data []byte, ext string) (*models.TrainingData, error) {
	var td models.TrainingData
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &td); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &td); err != nil {
			return nil, err
		}
	}
	return &td, nil
}
