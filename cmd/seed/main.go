package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/acmehq/finance-api/config"
	"github.com/acmehq/finance-api/pkg/helpers"
)

type seedCustomer struct {
	id       string
	name     string
	email    string
	imageURL string
}

type seedInvoice struct {
	customer int // index into customers
	amount   int64
	status   string
	date     string
}

var customers = []seedCustomer{
	{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"3958dc9e-712f-4377-85e9-fec4b6a6442a", "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"3958dc9e-742f-4377-85e9-fec4b6a6442a", "Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"76d65c26-f784-44a2-ac19-586678f7c2f2", "Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"cc27c14a-0acf-4f4a-a6c9-d45682c144b9", "Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"13d07535-c59e-4157-a011-f8d2ef4e0cbb", "Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{0, 15795, "pending", "2022-12-06"},
	{1, 20348, "pending", "2022-11-14"},
	{4, 3040, "paid", "2022-10-29"},
	{3, 44800, "paid", "2023-09-10"},
	{5, 34577, "pending", "2023-08-05"},
	{2, 54246, "pending", "2023-07-16"},
	{0, 666, "pending", "2023-06-27"},
	{3, 32545, "paid", "2023-06-09"},
	{4, 1250, "paid", "2023-06-17"},
	{5, 8546, "paid", "2023-06-07"},
	{1, 500, "paid", "2023-08-19"},
	{5, 8945, "paid", "2023-06-03"},
	{2, 1000, "paid", "2022-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Demo user
	email := "user@nextmail.com"
	hash, err := helpers.HashPassword("123456")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, "User", email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s\n", userID, email)

	for _, c := range customers {
		if _, err := db.Exec(`
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, email=EXCLUDED.email, image_url=EXCLUDED.image_url
		`, c.id, c.name, c.email, c.imageURL); err != nil {
			log.Fatalf("failed to seed customer %s: %v", c.name, err)
		}
	}
	fmt.Printf("seeded %d customers\n", len(customers))

	for _, inv := range invoices {
		if _, err := db.Exec(`
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)
		`, customers[inv.customer].id, inv.amount, inv.status, inv.date); err != nil {
			log.Fatalf("failed to seed invoice: %v", err)
		}
	}
	fmt.Printf("seeded %d invoices\n", len(invoices))

	for month, rev := range revenue {
		if _, err := db.Exec(`
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO UPDATE SET revenue=EXCLUDED.revenue
		`, month, rev); err != nil {
			log.Fatalf("failed to seed revenue for %s: %v", month, err)
		}
	}
	fmt.Printf("seeded %d revenue months\n", len(revenue))
}
