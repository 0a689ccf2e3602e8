package repository

import (
	"testing"
	"time"

	"intent-chatbot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIntentsQuery(t *testing.T) {
	sql, args, err := listIntentsQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, tag, patterns, responses, position, created_at, updated_at FROM intents ORDER BY position ASC, tag ASC",
		sql)
	assert.Empty(t, args)
}

func TestDeleteIntentsQuery(t *testing.T) {
	sql, args, err := deleteIntentsQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM intents", sql)
	assert.Empty(t, args)
}

func TestInsertIntentQuery(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := &models.IntentRecord{
		ID:        uuid.MustParse("6f1c1f4e-4c55-4d8e-9a55-3f0f7d1c2b3a"),
		Tag:       "greeting",
		Patterns:  []string{"hello", "hi"},
		Responses: []string{"Hi!"},
		Position:  3,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sql, args, err := insertIntentQuery(rec).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO intents (id,tag,patterns,responses,position,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		sql)
	assert.Equal(t, []interface{}{rec.ID, "greeting", []string{"hello", "hi"}, []string{"Hi!"}, 3, now, now}, args)
}

func TestIntentRecordDefinition(t *testing.T) {
	rec := models.IntentRecord{Tag: "bye", Patterns: []string{"bye"}, Responses: []string{"ciao"}, Position: 1}
	assert.Equal(t, models.IntentDefinition{Tag: "bye", Patterns: []string{"bye"}, Responses: []string{"ciao"}}, rec.Definition())
}
