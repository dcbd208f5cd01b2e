package store

import (
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DefaultStaff los tres registros de staff con los que arranca el directorio.
func DefaultStaff() []entity.UserProfile {
	return []entity.UserProfile{
		{ID: "super-id", Name: "Master Super", Email: "super", Password: "super", Role: entity.RoleSuperAdmin, IsAdmin: true, OrderHistory: []string{}},
		{ID: "admin-id", Name: "Store Admin", Email: "admin", Password: "admin", Role: entity.RoleAdmin, IsAdmin: true, OrderHistory: []string{}},
		{ID: "manager-id", Name: "Day Manager", Email: "manager", Password: "manager", Role: entity.RoleManager, IsAdmin: false, OrderHistory: []string{}},
	}
}

// defaultSuperAdmin registro que se inyecta si un snapshot cargado no tiene super-admin.
func defaultSuperAdmin() entity.UserProfile {
	for _, u := range DefaultStaff() {
		if u.Role == entity.RoleSuperAdmin {
			return u
		}
	}
	panic("store: DefaultStaff sin super-admin")
}

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultMenu catálogo inicial de la tienda.
func DefaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID: 1, Name: "Classic Zinger Burger",
			Description: "Crispy chicken fillet with spicy mayo and fresh lettuce.",
			Price:       decimal.RequireFromString("5.99"), Category: entity.CategoryBurger,
			Rating: decimal.RequireFromString("4.8"), Reviews: 1240,
			Image:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?q=80&w=600&h=400&fit=crop",
			Discount: pct(10), IsPopular: true,
		},
		{
			ID: 2, Name: "Double Cheese Burger",
			Description: "Two beef patties with extra melted cheddar cheese.",
			Price:       decimal.RequireFromString("7.50"), Category: entity.CategoryBurger,
			Rating: decimal.RequireFromString("4.9"), Reviews: 850,
			Image:     "https://images.unsplash.com/photo-1550547660-d9450f859349?q=80&w=600&h=400&fit=crop",
			IsPopular: true,
		},
		{
			ID: 3, Name: "BBQ Chicken Pizza",
			Description: "Grilled chicken, smoky BBQ sauce, and mozzarella.",
			Price:       decimal.RequireFromString("12.99"), Category: entity.CategoryPizza,
			Rating: decimal.RequireFromString("4.7"), Reviews: 620,
			Image:    "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=600&h=400&fit=crop",
			Discount: pct(15),
		},
		{
			ID: 4, Name: "Party Platter Special",
			Description: "Mixed basket of wings, sliders, and specialty mocktails.",
			Price:       decimal.RequireFromString("19.99"), Category: entity.CategoryMoreFun,
			Rating: decimal.RequireFromString("4.9"), Reviews: 320,
			Image:     "https://images.unsplash.com/photo-1541544741938-0af808871cc0?q=80&w=600&h=400&fit=crop",
			IsPopular: true,
		},
		{
			ID: 5, Name: "Large Cheese Fries",
			Description: "Golden fries topped with house-made cheese sauce.",
			Price:       decimal.RequireFromString("4.99"), Category: entity.CategoryFries,
			Rating: decimal.RequireFromString("4.8"), Reviews: 2100,
			Image:     "https://images.unsplash.com/photo-1518013431117-eb1465fa5752?q=80&w=600&h=400&fit=crop",
			IsPopular: true,
		},
		{
			ID: 6, Name: "Midnight Munchies Mix",
			Description: "Crispy chicken strips, curly fries, and a chilled blueberry soda.",
			Price:       decimal.RequireFromString("14.50"), Category: entity.CategoryMoreFun,
			Rating: decimal.RequireFromString("4.9"), Reviews: 412,
			Image:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?q=80&w=600&h=400&fit=crop",
			Discount: pct(5), IsPopular: true,
		},
		{
			ID: 7, Name: "Fresh Fruit Mojito",
			Description: "Refreshing minty drink with lime and seasonal berries.",
			Price:       decimal.RequireFromString("6.50"), Category: entity.CategoryDrinks,
			Rating: decimal.RequireFromString("4.6"), Reviews: 290,
			Image: "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?q=80&w=600&h=400&fit=crop",
		},
		{
			ID: 8, Name: "Loaded Nacho Bucket",
			Description: "Corn chips with jalapeños, salsa, and triple cheese dip.",
			Price:       decimal.RequireFromString("8.99"), Category: entity.CategoryFries,
			Rating: decimal.RequireFromString("4.7"), Reviews: 580,
			Image: "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?q=80&w=600&h=400&fit=crop",
		},
		{
			ID: 9, Name: "The Hangout Deal",
			Description: "2 Burgers, 1 Pizza, 1 Large Fries, and 1.5L Coke.",
			Price:       decimal.RequireFromString("34.99"), Category: entity.CategoryDeals,
			Rating: decimal.RequireFromString("5.0"), Reviews: 120,
			Image:    "https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=600&h=400&fit=crop",
			Discount: pct(20),
		},
		{
			ID: 10, Name: "Family Fiesta Mix",
			Description: "A combination of large fries, 2 coke bottles, and popcorn chicken.",
			Price:       decimal.RequireFromString("24.50"), Category: entity.CategoryMoreFun,
			Rating: decimal.RequireFromString("4.8"), Reviews: 180,
			Image:    "https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?q=80&w=600&h=400&fit=crop",
			Discount: pct(10),
		},
	}
}
