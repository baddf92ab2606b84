package factories

import (
	"math/rand"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/jaswdr/faker"
)

var staples = []string{"Espresso Beans", "Decaf Beans", "Whole Milk", "Oat Milk", "Almond Milk", "Heavy Cream", "Cane Sugar", "Vanilla Syrup", "Caramel Syrup", "Cocoa Powder", "Matcha Powder", "Chai Concentrate", "Flour", "Butter", "Eggs", "Bagels", "Sourdough Loaf", "Cheddar", "Cream Cheese", "Greek Yogurt", "Rolled Oats", "Tortillas", "Avocados", "Paper Cups"}

type IngredientFactory struct {
	fake faker.Faker
}

func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

func (f *IngredientFactory) CreateIngredient(id int64) models.Ingredient {
	var name string
	switch f.fake.IntBetween(0, 3) {
	case 0:
		name = f.fake.Food().Fruit()
	case 1:
		name = f.fake.Food().Vegetable()
	default:
		name = f.fake.RandomStringElement(staples)
	}
	return models.Ingredient{
		ID:         id,
		Name:       name,
		QtyPerUnit: f.fake.IntBetween(1, 3),
	}
}

// CreateIngredients returns n ingredients with ids 1..n.
func (f *IngredientFactory) CreateIngredients(n int) []models.Ingredient {
	ingredients := make([]models.Ingredient, n)
	for i := range ingredients {
		ingredients[i] = f.CreateIngredient(int64(i + 1))
	}
	return ingredients
}
