package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/service"
	"github.com/recipeshelf/backend/internal/testhelpers"
	"github.com/recipeshelf/backend/internal/types"
)

func TestReviewService_CreateReview(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewReviewService(db)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db, "alice")
	reviewer := testhelpers.CreateTestUser(t, db, "bob")
	category := testhelpers.CreateTestCategory(t, db, "Mains")
	recipe := testhelpers.CreateTestRecipe(t, db, author.ID, category.ID, "Lasagna", time.Now())

	require.NoError(t, svc.CreateReview(ctx, recipe.ID, reviewer.ID, 4, "Rich and hearty."))

	var review models.Review
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).First(&review).Error)
	assert.Equal(t, reviewer.ID, review.UserID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Rich and hearty.", review.Comment)

	reviewed, err := svc.HasUserReviewed(ctx, recipe.ID, reviewer.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)

	reviewed, err = svc.HasUserReviewed(ctx, recipe.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, reviewed)
}

func TestReviewService_CreateReviewRatingBounds(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewReviewService(db)
	ctx := context.Background()

	user := testhelpers.CreateTestUser(t, db, "carol")
	category := testhelpers.CreateTestCategory(t, db, "Soups")
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, category.ID, "Gazpacho", time.Now())

	for _, rating := range []int{0, -1, 6} {
		err := svc.CreateReview(ctx, recipe.ID, user.ID, rating, "")
		assert.ErrorIs(t, err, types.ErrInvalidInput, "rating %d", rating)
	}
}

func TestReviewService_CreateReviewUnknownRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewReviewService(db)

	user := testhelpers.CreateTestUser(t, db, "dave")
	err := svc.CreateReview(context.Background(), uuid.New(), user.ID, 5, "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestReviewService_OneReviewPerUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewReviewService(db)
	ctx := context.Background()

	author := testhelpers.CreateTestUser(t, db, "erin")
	reviewer := testhelpers.CreateTestUser(t, db, "frank")
	category := testhelpers.CreateTestCategory(t, db, "Baking")
	recipe := testhelpers.CreateTestRecipe(t, db, author.ID, category.ID, "Brioche", time.Now())

	require.NoError(t, svc.CreateReview(ctx, recipe.ID, reviewer.ID, 5, "Perfect crumb."))
	err := svc.CreateReview(ctx, recipe.ID, reviewer.ID, 3, "Changed my mind.")
	assert.ErrorIs(t, err, types.ErrAlreadyReviewed)

	// A different user can still review the same recipe.
	other := testhelpers.CreateTestUser(t, db, "grace")
	assert.NoError(t, svc.CreateReview(ctx, recipe.ID, other.ID, 4, ""))
}
