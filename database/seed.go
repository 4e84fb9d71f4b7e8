package database

import (
	"fmt"
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData inserts baseline records when they do not exist yet. Safe to run
// on every boot.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Name: "Administrator", Email: "admin@restaurant.local", PasswordHash: hashPassword, Role: constants.ROLE_ADMIN, Active: true},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	for i := 1; i <= 8; i++ {
		table := model.Table{Name: fmt.Sprintf("Mesa %02d", i), Status: constants.TABLE_FREE}
		if err := db.Where(model.Table{Name: table.Name}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Name, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Entradas", SortOrder: 1, Active: true},
		{Name: "Pratos Principais", SortOrder: 2, Active: true},
		{Name: "Bebidas", SortOrder: 3, Active: true},
		{Name: "Sobremesas", SortOrder: 4, Active: true},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	dishes := []model.Dish{
		{Name: "Caldinho de Feijão", Price: 12.00, CategoryId: categories[0].ID, Active: true},
		{Name: "Panelada", Description: "Prato da casa", Price: 35.00, CategoryId: categories[1].ID, Active: true},
		{Name: "Baião de Dois", Price: 28.00, CategoryId: categories[1].ID, Active: true},
		{Name: "Suco de Laranja", Price: 8.00, CategoryId: categories[2].ID, Active: true},
		{Name: "Refrigerante Lata", Price: 6.00, CategoryId: categories[2].ID, Active: true},
		{Name: "Pudim", Price: 10.00, CategoryId: categories[3].ID, Active: true},
	}
	for _, dish := range dishes {
		dish.Slug = slug.Make(dish.Name)
		if err := db.Where(model.Dish{Slug: dish.Slug}).FirstOrCreate(&dish).Error; err != nil {
			log.Println("failed to seed dish:", dish.Name, "error:", err)
		}
	}
}
