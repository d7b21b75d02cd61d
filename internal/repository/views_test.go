package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshelf/backend/internal/repository"
	"github.com/recipeshelf/backend/internal/testhelpers"
	"github.com/recipeshelf/backend/internal/types"
)

func TestIncrementViews(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "alice")
	category := testhelpers.CreateTestCategory(t, db, "Mains")
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, category.ID, "Risotto", time.Now())

	for i := 0; i < 100; i++ {
		require.NoError(t, repo.IncrementViews(ctx, recipe.ID))
	}

	details, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), details.Recipe.Views)
}

func TestIncrementViews_NotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := repository.NewRecipeRepository(db)

	err := repo.IncrementViews(context.Background(), uuid.New())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

// TestIncrementViews_Concurrent drives the counter from many goroutines
// against a real PostgreSQL instance. Every increment must land: lost updates
// would show up as a final count below the number of calls.
func TestIncrementViews_Concurrent(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t, "../../migrations")
	repo := repository.NewRecipeRepository(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "bob")
	category := testhelpers.CreateTestCategory(t, db, "Soups")
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, category.ID, "Pho", time.Now())

	const workers = 100
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementViews(ctx, recipe.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	details, err := repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), details.Recipe.Views)
}
