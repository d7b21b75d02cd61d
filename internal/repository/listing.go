package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/types"
)

// SearchPageSize is the fixed page size for filtered searches.
const SearchPageSize = 5

const summaryColumns = "recipes.id, recipes.title, recipes.description, recipes.image_url, recipes.views, recipes.created_at, users.name AS author_name"

// ListingRepository produces the read-side listing views: the home-page
// feature lists and the filtered, rating-aggregated, paginated search. It
// never mutates anything.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Latest returns up to limit recipes ordered by creation time descending,
// joined with the author name. Equal timestamps tie-break on id ascending so
// the ordering is deterministic.
func (r *ListingRepository) Latest(ctx context.Context, limit int) ([]types.RecipeSummary, error) {
	var items []types.RecipeSummary
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select(summaryColumns).
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.created_at DESC, recipes.id ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list latest recipes: %w", err)
	}
	return items, nil
}

// MostViewed returns up to limit recipes ordered by view count descending,
// same join and tie-break as Latest.
func (r *ListingRepository) MostViewed(ctx context.Context, limit int) ([]types.RecipeSummary, error) {
	var items []types.RecipeSummary
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select(summaryColumns).
		Joins("JOIN users ON users.id = recipes.user_id").
		Order("recipes.views DESC, recipes.id ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list most viewed recipes: %w", err)
	}
	return items, nil
}

// Search runs one grouped query that joins the author name, left-joins reviews
// to compute the average rating per recipe, applies the filters and paginates.
// Recipes with zero reviews carry a nil rating, not zero. The total count is
// taken over the same filtered, grouped query before the page is sliced, so
// the pagination boundaries always agree with the rating filter and ordering.
//
// When the rating filter is active the ordering switches to rating descending;
// this coupling comes from the upstream behavior and is kept as-is.
func (r *ListingRepository) Search(ctx context.Context, filters types.SearchFilters, page int) (*types.RecipePage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Table("(?) AS filtered", r.searchQuery(ctx, filters)).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count search results: %w", err)
	}

	order := "recipes.created_at DESC, recipes.id ASC"
	if filters.HasRating() {
		order = "rating DESC, recipes.id ASC"
	}

	var items []types.RecipeSummary
	err := r.searchQuery(ctx, filters).
		Order(order).
		Limit(SearchPageSize).
		Offset((page - 1) * SearchPageSize).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}

	totalPages := int((total + SearchPageSize - 1) / SearchPageSize)
	return &types.RecipePage{
		Items:      items,
		Page:       page,
		PageSize:   SearchPageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// searchQuery builds the shared filtered, grouped query. Grouping by recipe id
// keeps the reviews join from duplicating rows per review; users.name is in
// the GROUP BY for engines that demand every non-aggregated column there.
func (r *ListingRepository) searchQuery(ctx context.Context, filters types.SearchFilters) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select(summaryColumns + ", AVG(reviews.rating) AS rating").
		Joins("JOIN users ON users.id = recipes.user_id").
		Joins("LEFT JOIN reviews ON reviews.recipe_id = recipes.id").
		Group("recipes.id, users.name")

	if len(filters.Categories) > 0 {
		q = q.Where("recipes.category_id IN ?", filters.Categories)
	}
	if filters.HasRating() {
		q = q.Having("AVG(reviews.rating) >= ?", filters.Rating)
	}
	if filters.Title != "" {
		q = q.Where("LOWER(recipes.title) LIKE ?", "%"+strings.ToLower(filters.Title)+"%")
	}
	return q
}
