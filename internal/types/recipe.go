package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/recipeshelf/backend/internal/models"
)

// IngredientInput is one ingredient row as supplied by the caller. Input order
// is preserved for display.
type IngredientInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// CreateRecipeParams carries everything needed to create a recipe aggregate.
// The acting user is an explicit parameter, never read from ambient state.
type CreateRecipeParams struct {
	Title       string
	Description string
	CategoryID  uint
	Image       []byte
	Ingredients []IngredientInput
	Steps       []string
	UserID      uuid.UUID
}

// UpdateRecipeParams is a sparse update: nil pointer fields leave the header
// field unchanged. A nil Ingredients/Steps slice leaves the child list
// untouched; a non-nil slice (even empty) replaces the whole list.
type UpdateRecipeParams struct {
	Title       *string
	Description *string
	CategoryID  *uint
	ImageURL    *string
	Image       []byte
	Ingredients []IngredientInput
	Steps       []string
}

// SearchFilters restricts a listing. A zero/empty field means "do not restrict
// on that dimension", not "match empty".
type SearchFilters struct {
	Categories []uint
	Rating     float64
	Title      string
}

// HasRating reports whether the average-rating threshold is active. When it
// is, result ordering switches from creation time to rating descending.
func (f SearchFilters) HasRating() bool { return f.Rating > 0 }

// RecipeSummary is one row of a listing: the header joined with the author
// name and, for filtered searches, the aggregated average rating. Rating is
// nil for recipes with no reviews.
type RecipeSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorName  string    `json:"author_name"`
	Rating      *float64  `json:"rating,omitempty"`
}

// RecipePage is one page of search results with offset pagination metadata.
type RecipePage struct {
	Items      []RecipeSummary `json:"items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// RecipeDetails is the fully loaded aggregate: header plus ordered children,
// reviews and author.
type RecipeDetails struct {
	Recipe      models.Recipe       `json:"recipe"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []models.Step       `json:"steps"`
	Reviews     []models.Review     `json:"reviews"`
	Author      models.User         `json:"author"`
}

// HomePageData is the feature lists for the landing page: the three newest
// recipes and the two most viewed.
type HomePageData struct {
	Latest  []RecipeSummary `json:"latest"`
	Popular []RecipeSummary `json:"popular"`
}
