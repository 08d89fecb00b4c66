// Command seed clears the social-network tables and inserts demo data.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	// Confirm
	fmt.Print("\nWARNING: This operation will CLEAR ALL DATA in tables [friendship, user, city, region]!\n")
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	clearTables(db)
	seedData(db)

	fmt.Println("\nDone")
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	return &config
}

func clearTables(db *sql.DB) {
	// Children first to respect foreign keys
	for _, table := range []string{"friendship", "user", "city", "region"} {
		if _, err := db.Exec("DELETE FROM `" + table + "`"); err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
		fmt.Printf("Cleared table %s\n", table)
	}
}

func seedData(db *sql.DB) {
	regions := []string{"Московская область", "Ленинградская область", "Свердловская область"}
	for i, name := range regions {
		if _, err := db.Exec("INSERT INTO region (id, name) VALUES (?, ?)", i+1, name); err != nil {
			log.Fatalf("Failed to seed region %q: %v", name, err)
		}
	}
	fmt.Printf("Seeded %d regions\n", len(regions))

	cities := []struct {
		name     string
		regionID int
	}{
		{"Москва", 1},
		{"Подольск", 1},
		{"Санкт-Петербург", 2},
		{"Выборг", 2},
		{"Екатеринбург", 3},
	}
	for i, city := range cities {
		if _, err := db.Exec("INSERT INTO city (id, name, region_id) VALUES (?, ?, ?)",
			i+1, city.name, city.regionID); err != nil {
			log.Fatalf("Failed to seed city %q: %v", city.name, err)
		}
	}
	fmt.Printf("Seeded %d cities\n", len(cities))

	users := []struct {
		name, surname, birthDate, gender, interests string
		cityID                                      int
	}{
		{"Маша", "Иванова", "1990-02-14", "F", "книги", 1},
		{"Иван", "Машин", "1988-07-01", "M", "футбол", 1},
		{"Анна", "Петрова", "1995-11-23", "F", "музыка", 3},
		{"Пётр", "Сидоров", "1979-04-09", "M", "рыбалка", 5},
	}
	for i, u := range users {
		if _, err := db.Exec(
			"INSERT INTO user (id, name, surname, birth_date, gender, interests, city_id, created_at, updated_at) "+
				"VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())",
			i+1, u.name, u.surname, u.birthDate, u.gender, u.interests, u.cityID); err != nil {
			log.Fatalf("Failed to seed user %q: %v", u.name, err)
		}
	}
	fmt.Printf("Seeded %d users\n", len(users))

	friendships := [][2]int{{1, 2}, {1, 3}}
	for _, edge := range friendships {
		if _, err := db.Exec(
			"INSERT INTO friendship (user_id, friend_id, created_at) VALUES (?, ?, NOW())",
			edge[0], edge[1]); err != nil {
			log.Fatalf("Failed to seed friendship %v: %v", edge, err)
		}
	}
	fmt.Printf("Seeded %d friendships\n", len(friendships))
}
