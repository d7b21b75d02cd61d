package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipeshelf/backend/internal/service"
	"github.com/recipeshelf/backend/internal/types"
)

// RecipeHandler exposes the recipe catalog over HTTP. Ownership checks
// (author-only update and delete) live here: they depend on the
// authenticated identity, which the catalog core deliberately knows nothing
// about.
type RecipeHandler struct {
	recipes service.IRecipeService
	reviews service.IReviewService
}

func NewRecipeHandler(recipes service.IRecipeService, reviews service.IReviewService) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		reviews: reviews,
	}
}

// Home returns the landing-page feature lists.
func (h *RecipeHandler) Home(c *gin.Context) {
	data, err := h.recipes.HomePage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ListRecipes runs the filtered, paginated search. Absent query parameters do
// not restrict the result.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var filters types.SearchFilters

	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
				return
			}
			filters.Categories = append(filters.Categories, uint(id))
		}
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		filters.Rating = rating
	}
	filters.Title = c.Query("title")

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = parsed
	}

	result, err := h.recipes.SearchRecipes(c.Request.Context(), filters, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRecipe returns the full aggregate and counts the view. The increment is
// an explicit separate call after a successful read; a failure there is
// logged but never breaks the read itself.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	details, err := h.recipes.GetRecipeDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.recipes.IncrementViews(c.Request.Context(), id); err != nil {
		log.Printf("[RecipeHandler] Failed to count view for %s: %v", id, err)
	}

	c.JSON(http.StatusOK, details)
}

// CreateRecipe accepts a multipart form: title, description, category_id,
// ingredients and steps as JSON-encoded fields, plus an optional image file.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
		return
	}

	params := types.CreateRecipeParams{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  uint(categoryID),
		UserID:      userID,
	}

	if raw := c.PostForm("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params.Ingredients); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredients"})
			return
		}
	}
	if raw := c.PostForm("steps"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params.Steps); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid steps"})
			return
		}
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	}
	params.Image = image

	id, err := h.recipes.CreateRecipe(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateRecipe applies a sparse update: only form fields that are present
// change the header, and the child lists are replaced only when supplied.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	if !h.authorizeOwner(c, id, userID) {
		return
	}

	var params types.UpdateRecipeParams
	if title, present := c.GetPostForm("title"); present {
		params.Title = &title
	}
	if description, present := c.GetPostForm("description"); present {
		params.Description = &description
	}
	if raw, present := c.GetPostForm("category_id"); present {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		parsed := uint(categoryID)
		params.CategoryID = &parsed
	}
	if raw, present := c.GetPostForm("ingredients"); present {
		params.Ingredients = []types.IngredientInput{}
		if err := json.Unmarshal([]byte(raw), &params.Ingredients); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredients"})
			return
		}
	}
	if raw, present := c.GetPostForm("steps"); present {
		params.Steps = []string{}
		if err := json.Unmarshal([]byte(raw), &params.Steps); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid steps"})
			return
		}
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	}
	params.Image = image

	if err := h.recipes.UpdateRecipe(c.Request.Context(), id, params); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRecipe removes the aggregate. The ownership check requires the recipe
// to exist, so over HTTP an unknown id is a 404 even though the underlying
// delete is a permissive no-op.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	if !h.authorizeOwner(c, id, userID) {
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateReview records the authenticated user's rating for a recipe.
func (h *RecipeHandler) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reviews.CreateReview(c.Request.Context(), id, userID, req.Rating, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// ListCategories returns the category reference data for the filter form.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	categories, err := h.recipes.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// authorizeOwner loads the recipe and rejects the request unless the acting
// user is its author.
func (h *RecipeHandler) authorizeOwner(c *gin.Context, recipeID, userID uuid.UUID) bool {
	details, err := h.recipes.GetRecipeDetails(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if details.Recipe.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author may modify this recipe"})
		return false
	}
	return true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

// formImage reads the optional multipart image file. A missing file means "no
// new image", not an error.
func formImage(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}

	opened, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer opened.Close()

	return io.ReadAll(opened)
}
