package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/models"
	"intent-chatbot/internal/repository"
	"intent-chatbot/internal/source"
	"intent-chatbot/pkg/config"
	"intent-chatbot/pkg/logger"
	"intent-chatbot/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := flag.String("file", cfg.Catalog.File, "training data file (.json, .yaml or .yml)")
	cacheFile := flag.String("cache", ".seed_cache.json", "cache of already seeded files")
	dryRun := flag.Bool("dry-run", false, "validate the file without touching the database")
	force := flag.Bool("force", false, "seed even if the file has not changed")
	flag.Parse()

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	defs, err := loadDefinitions(*path)
	if err != nil {
		appLogger.Fatal("Failed to read training data", zap.String("path", *path), zap.Error(err))
	}

	// Train a throwaway engine so a broken file never reaches the database.
	summary, err := matcher.New().Train(defs)
	if err != nil {
		appLogger.Fatal("Training data is invalid", zap.String("path", *path), zap.Error(err))
	}
	appLogger.Info("Training data is valid",
		zap.String("path", *path),
		zap.Int("intents", summary.Intents),
		zap.Int("vocabulary", summary.Vocabulary),
		zap.Int("documents", summary.Documents),
	)
	if *dryRun {
		return
	}

	fileHash, err := calculateFileHash(*path)
	if err != nil {
		appLogger.Warn("Failed to calculate file hash, will seed anyway", zap.Error(err))
	}

	cache, err := loadCache(*cacheFile)
	if err != nil {
		appLogger.Warn("Failed to load cache, will seed anyway", zap.Error(err))
		cache = &CacheData{SeededFiles: make(map[string]SeededFile)}
	}
	if cached, ok := cache.SeededFiles[*path]; ok && !*force && fileHash != "" && cached.FileHash == fileHash {
		appLogger.Info("Training data already seeded, skipping",
			zap.String("path", *path),
			zap.Time("seeded_at", cached.SeededAt),
		)
		return
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewIntentRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")
	if err := repo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare schema", zap.Error(err))
	}
	if err := repo.ReplaceAll(ctx, defs); err != nil {
		appLogger.Fatal("Failed to seed intents", zap.Error(err))
	}

	cache.SeededFiles[*path] = SeededFile{
		FilePath: *path,
		FileHash: fileHash,
		Intents:  len(defs),
		SeededAt: time.Now(),
	}
	if err := saveCache(*cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save cache", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!", zap.Int("intents", len(defs)))
}

func loadDefinitions(path string) ([]models.IntentDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	td, err := source.ParseTrainingData(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return td.Intents, nil
}

// SeededFile represents a training data file already written to the database
type SeededFile struct {
	FilePath string    `json:"file_path"`
	FileHash string    `json:"file_hash"`
	Intents  int       `json:"intents"`
	SeededAt time.Time `json:"seeded_at"`
}

// CacheData stores information about seeded files
type CacheData struct {
	SeededFiles map[string]SeededFile `json:"seeded_files"` // key: file path
}

// loadCache loads the cache of seeded files
func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		SeededFiles: make(map[string]SeededFile),
	}

	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.SeededFiles == nil {
		cache.SeededFiles = make(map[string]SeededFile)
	}

	return cache, nil
}

// saveCache saves the cache of seeded files
func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// calculateFileHash calculates MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
