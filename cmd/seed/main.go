package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshelf/backend/config"
	"github.com/recipeshelf/backend/internal/database"
	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/repository"
	"github.com/recipeshelf/backend/internal/types"
)

// Seeds the category reference data plus a demo user and a couple of recipes
// for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categories := []models.Category{
		{Name: "Breakfast"},
		{Name: "Main Course"},
		{Name: "Dessert"},
		{Name: "Soup"},
		{Name: "Salad"},
	}
	for i := range categories {
		if err := db.WithContext(ctx).Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", categories[i].Name, err)
		}
	}
	log.Printf("Seeded %d categories", len(categories))

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	demoUser := models.User{
		Name:         "Demo Cook",
		Email:        "demo@recipeshelf.local",
		PasswordHash: string(hash),
	}
	if err := db.WithContext(ctx).Where("email = ?", demoUser.Email).
		Attrs(models.User{ID: uuid.New()}).
		FirstOrCreate(&demoUser).Error; err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	recipes := repository.NewRecipeRepository(db)

	pancakes := models.Recipe{
		ID:          uuid.New(),
		Title:       "Buttermilk Pancakes",
		Description: "Fluffy weekend pancakes.",
		CategoryID:  categories[0].ID,
		UserID:      demoUser.ID,
	}
	err = recipes.Create(ctx, &pancakes,
		[]types.IngredientInput{
			{Name: "Flour", Quantity: "2 cups"},
			{Name: "Buttermilk", Quantity: "2 cups"},
			{Name: "Eggs", Quantity: "2"},
		},
		[]string{
			"Whisk the dry ingredients.",
			"Fold in buttermilk and eggs.",
			"Cook on a hot griddle until golden.",
		})
	if err != nil {
		log.Printf("Skipping pancakes seed: %v", err)
	}

	soup := models.Recipe{
		ID:          uuid.New(),
		Title:       "Miso Soup",
		Description: "Quick weekday miso soup.",
		CategoryID:  categories[3].ID,
		UserID:      demoUser.ID,
	}
	err = recipes.Create(ctx, &soup,
		[]types.IngredientInput{
			{Name: "Miso paste", Quantity: "3 tbsp"},
			{Name: "Tofu", Quantity: "200 g"},
		},
		[]string{
			"Bring dashi to a simmer.",
			"Dissolve the miso and add tofu.",
		})
	if err != nil {
		log.Printf("Skipping soup seed: %v", err)
	}

	log.Println("Seed complete")
}
