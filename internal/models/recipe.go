package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate header. Its ingredients and steps live in their own
// tables and share the recipe's lifetime: they are written and removed together
// with the header inside one transaction (see internal/repository).
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ingredient belongs to exactly one recipe. Display order is insertion order,
// so readers sort on the auto-increment id.
type Ingredient struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Quantity string    `gorm:"size:100" json:"quantity"`
}

// Step belongs to exactly one recipe. StepNumber is a dense 1..N sequence;
// mutations replace the whole list rather than patching rows, which keeps the
// sequence gap-free by construction.
type Step struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	StepNumber  int       `gorm:"not null" json:"step_number"`
	Description string    `gorm:"type:text;not null" json:"description"`
}
