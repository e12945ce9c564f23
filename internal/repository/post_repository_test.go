package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// dryRunRepo builds a repository over a dry-run session and returns a
// pointer that records the SQL of the last query built.
func dryRunRepo(t *testing.T) (PostRepository, *string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var lastSQL string
	err = db.Callback().Query().After("gorm:query").Register("record_sql", func(tx *gorm.DB) {
		lastSQL = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return NewPostRepository(db), &lastSQL
}

func TestPostRepository_FindByIDForUpdateLocksRow(t *testing.T) {
	repo, lastSQL := dryRunRepo(t)

	_, err := repo.FindByIDForUpdate(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Contains(t, *lastSQL, "FOR UPDATE")
}

func TestPostRepository_ListLikesNewestFirst(t *testing.T) {
	repo, lastSQL := dryRunRepo(t)

	_, err := repo.ListLikes(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Contains(t, *lastSQL, "ORDER BY id DESC")
	assert.NotContains(t, *lastSQL, "FOR UPDATE")
}

func TestPostRepository_ListCommentsNewestFirst(t *testing.T) {
	repo, lastSQL := dryRunRepo(t)

	_, err := repo.ListComments(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Contains(t, *lastSQL, "ORDER BY seq DESC")
}
