package main

import (
	"flag"
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
)

// Creates or updates an admin user from the command line, for first-run
// setup and password recovery.
func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "plain password, will be hashed")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: createadmin -email admin@example.com -password secret [-name Name]")
	}

	database.ConnectDB()
	db := database.DB

	hash, err := helper.HashPassword(*password)
	if err != nil {
		log.Fatal("hash password:", err)
	}

	var user model.User
	err = db.Where("email = ?", *email).First(&user).Error
	if err == nil {
		user.Name = *name
		user.PasswordHash = hash
		user.Role = constants.ROLE_ADMIN
		user.Active = true
		if err := db.Save(&user).Error; err != nil {
			log.Fatal("update admin:", err)
		}
		log.Printf("admin %s updated (id=%d)", user.Email, user.ID)
		return
	}

	user = model.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		Role:         constants.ROLE_ADMIN,
		Active:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("create admin:", err)
	}
	log.Printf("admin %s created (id=%d)", user.Email, user.ID)
}
