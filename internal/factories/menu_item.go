package factories

import (
	"math/rand"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/jaswdr/faker"
)

const (
	minPriceCents = 250
	maxPriceCents = 750 // exclusive
	priceStep     = 5
)

var (
	drinks   = []string{"Drip Coffee", "Americano", "Espresso", "Cortado", "Cappuccino", "Latte", "Flat White", "Mocha", "Cold Brew", "Chai Latte", "Matcha Latte", "Hot Chocolate"}
	pastries = []string{"Muffin", "Scone", "Danish", "Tart", "Loaf Slice"}
	plates   = []string{"Breakfast Burrito", "Avocado Toast", "Bagel & Cream Cheese", "Egg Sandwich", "Grilled Cheese", "Yogurt Parfait", "Oatmeal Bowl"}
)

// MenuItemFactory builds placeholder menu rows. The same seed always yields
// the same menu.
type MenuItemFactory struct {
	fake faker.Faker
}

func NewMenuItemFactory(seed int64) *MenuItemFactory {
	return &MenuItemFactory{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

func (mf *MenuItemFactory) CreateMenuItem(id int64) models.MenuItem {
	return models.MenuItem{
		ID:         id,
		Name:       mf.generateRandomMenuItem(),
		PriceCents: mf.generatePrice(),
	}
}

// CreateMenu returns n items with ids 1..n.
func (mf *MenuItemFactory) CreateMenu(n int) []models.MenuItem {
	menu := make([]models.MenuItem, n)
	for i := range menu {
		menu[i] = mf.CreateMenuItem(int64(i + 1))
	}
	return menu
}

func (mf *MenuItemFactory) generateRandomMenuItem() string {
	switch mf.fake.IntBetween(0, 2) {
	case 0:
		return mf.fake.RandomStringElement(drinks)
	case 1:
		return mf.fake.Food().Fruit() + " " + mf.fake.RandomStringElement(pastries)
	default:
		return mf.fake.RandomStringElement(plates)
	}
}

func (mf *MenuItemFactory) generatePrice() int64 {
	steps := mf.fake.IntBetween(minPriceCents/priceStep, maxPriceCents/priceStep-1)
	return int64(steps * priceStep)
}
