package main

import (
	"flag"
	"fmt"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func main() {
	firstName := flag.String("first-name", "", "user's first name")
	lastName := flag.String("last-name", "", "user's last name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	role := flag.String("role", "admin", "role to assign")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first-name <name>] [-last-name <name>] [-role <role>]")
		return
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	// Create user
	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	if err := database.AssignUserRole(db, user.ID, *role); err != nil {
		fmt.Printf("Error assigning role: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n", user.FirstName, user.LastName, user.Email, *role)
}
