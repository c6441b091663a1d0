package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/config"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/db"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

type seedFood struct {
	Name         string
	Category     string
	Calories     float64
	Protein      float64
	Fat          float64
	Carbohydrate float64
	Allergens    []string
}

type seedIngredient struct {
	Food     string
	Quantity string
}

type seedRecipe struct {
	Name         string
	Description  string
	CookingTime  int
	Servings     int
	Instructions string
	Ingredients  []seedIngredient
}

var categories = []model.Category{
	{Name: "vegetables", Description: "Fresh and frozen vegetables"},
	{Name: "fruits", Description: "Fresh fruits"},
	{Name: "meat", Description: "Meat and poultry"},
	{Name: "seafood", Description: "Fish and shellfish"},
	{Name: "dairy", Description: "Milk, cheese and eggs"},
	{Name: "grains", Description: "Rice, bread and noodles"},
	{Name: "seasonings", Description: "Condiments and spices"},
	{Name: "other", Description: "Everything else"},
}

var allergens = []string{
	"egg", "milk", "wheat", "buckwheat", "peanut", "shrimp", "crab", "soy",
}

var foods = []seedFood{
	{Name: "egg", Category: "dairy", Calories: 151, Protein: 12.3, Fat: 10.3, Carbohydrate: 0.3, Allergens: []string{"egg"}},
	{Name: "milk", Category: "dairy", Calories: 67, Protein: 3.3, Fat: 3.8, Carbohydrate: 4.8, Allergens: []string{"milk"}},
	{Name: "butter", Category: "dairy", Calories: 745, Protein: 0.6, Fat: 81, Carbohydrate: 0.2, Allergens: []string{"milk"}},
	{Name: "rice", Category: "grains", Calories: 168, Protein: 2.5, Fat: 0.3, Carbohydrate: 37.1},
	{Name: "bread", Category: "grains", Calories: 264, Protein: 9.3, Fat: 4.4, Carbohydrate: 46.7, Allergens: []string{"wheat"}},
	{Name: "udon noodles", Category: "grains", Calories: 105, Protein: 2.6, Fat: 0.4, Carbohydrate: 21.6, Allergens: []string{"wheat"}},
	{Name: "onion", Category: "vegetables", Calories: 37, Protein: 1, Fat: 0.1, Carbohydrate: 8.8},
	{Name: "carrot", Category: "vegetables", Calories: 39, Protein: 0.7, Fat: 0.2, Carbohydrate: 9.3},
	{Name: "potato", Category: "vegetables", Calories: 76, Protein: 1.6, Fat: 0.1, Carbohydrate: 17.6},
	{Name: "cabbage", Category: "vegetables", Calories: 23, Protein: 1.3, Fat: 0.2, Carbohydrate: 5.2},
	{Name: "tomato", Category: "vegetables", Calories: 19, Protein: 0.7, Fat: 0.1, Carbohydrate: 4.7},
	{Name: "chicken thigh", Category: "meat", Calories: 204, Protein: 16.6, Fat: 14.2},
	{Name: "pork belly", Category: "meat", Calories: 395, Protein: 14.4, Fat: 35.4, Carbohydrate: 0.1},
	{Name: "ground beef", Category: "meat", Calories: 272, Protein: 19, Fat: 21.1, Carbohydrate: 0.3},
	{Name: "salmon", Category: "seafood", Calories: 133, Protein: 22.3, Fat: 4.1, Carbohydrate: 0.1},
	{Name: "shrimp", Category: "seafood", Calories: 82, Protein: 18.4, Fat: 0.3, Allergens: []string{"shrimp"}},
	{Name: "tofu", Category: "other", Calories: 56, Protein: 4.9, Fat: 3, Carbohydrate: 2, Allergens: []string{"soy"}},
	{Name: "soy sauce", Category: "seasonings", Calories: 71, Protein: 7.7, Fat: 0, Carbohydrate: 10.1, Allergens: []string{"soy", "wheat"}},
	{Name: "apple", Category: "fruits", Calories: 54, Protein: 0.2, Fat: 0.1, Carbohydrate: 14.6},
	{Name: "banana", Category: "fruits", Calories: 86, Protein: 1.1, Fat: 0.2, Carbohydrate: 22.5},
}

var recipes = []seedRecipe{
	{
		Name:        "omelette",
		Description: "Plain fluffy omelette.",
		CookingTime: 10, Servings: 1,
		Instructions: "Beat the eggs with milk, season, and cook in butter over medium heat.",
		Ingredients: []seedIngredient{
			{Food: "egg", Quantity: "2"},
			{Food: "milk", Quantity: "30ml"},
			{Food: "butter", Quantity: "10g"},
		},
	},
	{
		Name:        "chicken curry",
		Description: "Weeknight curry with chicken and root vegetables.",
		CookingTime: 40, Servings: 4,
		Instructions: "Brown the chicken, add chopped vegetables and water, simmer, then season.",
		Ingredients: []seedIngredient{
			{Food: "chicken thigh", Quantity: "300g"},
			{Food: "onion", Quantity: "2"},
			{Food: "carrot", Quantity: "1"},
			{Food: "potato", Quantity: "2"},
			{Food: "rice", Quantity: "2 cups"},
		},
	},
	{
		Name:        "pork stir fry",
		Description: "Pork belly and cabbage stir fry.",
		CookingTime: 15, Servings: 2,
		Instructions: "Stir fry the pork, add cabbage and onion, finish with soy sauce.",
		Ingredients: []seedIngredient{
			{Food: "pork belly", Quantity: "200g"},
			{Food: "cabbage", Quantity: "1/4 head"},
			{Food: "onion", Quantity: "1/2"},
			{Food: "soy sauce", Quantity: "1 tbsp"},
		},
	},
	{
		Name:        "grilled salmon",
		Description: "Salted salmon fillet with rice.",
		CookingTime: 15, Servings: 1,
		Instructions: "Salt the fillet, rest, then grill until the skin crisps.",
		Ingredients: []seedIngredient{
			{Food: "salmon", Quantity: "1 fillet"},
			{Food: "rice", Quantity: "1 cup"},
		},
	},
	{
		Name:        "tomato udon",
		Description: "Udon in a light tomato broth with tofu.",
		CookingTime: 20, Servings: 2,
		Instructions: "Simmer tomato and tofu in broth, add boiled udon, season with soy sauce.",
		Ingredients: []seedIngredient{
			{Food: "udon noodles", Quantity: "2 bundles"},
			{Food: "tomato", Quantity: "2"},
			{Food: "tofu", Quantity: "1/2 block"},
			{Food: "soy sauce", Quantity: "1 tbsp"},
		},
	},
}

var ledgerCategories = []model.TransactionCategory{
	{Name: model.FoodCategoryName, Color: "#e8a838"},
	{Name: "daily goods", Color: "#61cdbb"},
	{Name: "utilities", Color: "#97e3d5"},
	{Name: "transport", Color: "#f47560"},
	{Name: "salary", Color: "#e8c1a0"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Allergen{},
		&model.Food{},
		&model.Recipe{},
		&model.RecipeFood{},
		&model.TransactionCategory{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(gormDB); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed completed")
}

// seed upserts the built-in catalog. Rows are matched by name so the
// script can be re-run safely.
func seed(gormDB *gorm.DB) error {
	categoryIDs := map[string]uint{}
	for i := range categories {
		row := categories[i]
		if err := gormDB.Where(model.Category{Name: row.Name}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		categoryIDs[row.Name] = row.ID
	}
	log.Printf("Seeded %d categories", len(categories))

	allergenIDs := map[string]uint{}
	for _, name := range allergens {
		row := model.Allergen{Name: name}
		if err := gormDB.Where(model.Allergen{Name: name}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		allergenIDs[name] = row.ID
	}
	log.Printf("Seeded %d allergens", len(allergens))

	foodIDs := map[string]uint{}
	for _, item := range foods {
		row := model.Food{
			Name:         item.Name,
			CategoryID:   categoryIDs[item.Category],
			Calories:     item.Calories,
			Protein:      item.Protein,
			Fat:          item.Fat,
			Carbohydrate: item.Carbohydrate,
		}
		// Master foods carry no owner.
		if err := gormDB.Where("name = ? AND user_id IS NULL", item.Name).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		foodIDs[item.Name] = row.ID

		links := make([]model.Allergen, 0, len(item.Allergens))
		for _, name := range item.Allergens {
			links = append(links, model.Allergen{ID: allergenIDs[name]})
		}
		if err := gormDB.Model(&row).Association("Allergens").Replace(links); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d master foods", len(foods))

	for _, item := range recipes {
		row := model.Recipe{
			Name:         item.Name,
			Description:  item.Description,
			CookingTime:  item.CookingTime,
			Servings:     item.Servings,
			Instructions: item.Instructions,
		}
		if err := gormDB.Where(model.Recipe{Name: item.Name}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
		for _, ing := range item.Ingredients {
			link := model.RecipeFood{
				RecipeID: row.ID,
				FoodID:   foodIDs[ing.Food],
				Quantity: ing.Quantity,
			}
			if err := gormDB.Where(model.RecipeFood{RecipeID: row.ID, FoodID: link.FoodID}).
				FirstOrCreate(&link).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d recipes", len(recipes))

	for i := range ledgerCategories {
		row := ledgerCategories[i]
		// Global ledger categories carry no owner.
		if err := gormDB.Where("name = ? AND user_id IS NULL", row.Name).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d ledger categories", len(ledgerCategories))

	return nil
}
