package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"intent-chatbot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const intentsTable = "intents"

// IntentsSchema creates the table backing the Postgres catalog source.
const IntentsSchema = `CREATE TABLE IF NOT EXISTS intents (
	id         UUID PRIMARY KEY,
	tag        TEXT NOT NULL UNIQUE,
	patterns   TEXT[] NOT NULL,
	responses  TEXT[] NOT NULL,
	position   INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

var intentColumns = []string{"id", "tag", "patterns", "responses", "position", "created_at", "updated_at"}

type IntentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewIntentRepository(db *pgxpool.Pool, logger *zap.Logger) *IntentRepository {
	return &IntentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IntentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, IntentsSchema); err != nil {
		return fmt.Errorf("failed to create intents table: %w", err)
	}
	return nil
}

// List returns every intent in catalog order.
func (r *IntentRepository) List(ctx context.Context) ([]*models.IntentRecord, error) {
	sql, args, err := listIntentsQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query intents: %w", err)
	}
	defer rows.Close()

	var records []*models.IntentRecord
	for rows.Next() {
		var rec models.IntentRecord
		if err := rows.Scan(
			&rec.ID, &rec.Tag, &rec.Patterns, &rec.Responses, &rec.Position, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ReplaceAll swaps the stored catalog for defs inside one transaction.
func (r *IntentRepository) ReplaceAll(ctx context.Context, defs []models.IntentDefinition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.logger.Warn("Rollback failed", zap.Error(err))
		}
	}()

	sql, args, err := deleteIntentsQuery().ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to clear intents: %w", err)
	}

	now := time.Now().UTC()
	for i, def := range defs {
		rec := &models.IntentRecord{
			ID:        uuid.New(),
			Tag:       def.Tag,
			Patterns:  def.Patterns,
			Responses: def.Responses,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		sql, args, err := insertIntentQuery(rec).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert intent %q: %w", def.Tag, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit intents: %w", err)
	}

	r.logger.Info("Intent catalog stored", zap.Int("intents", len(defs)))
	return nil
}

func listIntentsQuery() squirrel.SelectBuilder {
	return squirrel.Select(intentColumns...).
		From(intentsTable).
		OrderBy("position ASC", "tag ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func deleteIntentsQuery() squirrel.DeleteBuilder {
	return squirrel.Delete(intentsTable).PlaceholderFormat(squirrel.Dollar)
}

func insertIntentQuery(rec *models.IntentRecord) squirrel.InsertBuilder {
	return squirrel.Insert(intentsTable).
		Columns(intentColumns...).
		Values(rec.ID, rec.Tag, rec.Patterns, rec.Responses, rec.Position, rec.CreatedAt, rec.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)
}
