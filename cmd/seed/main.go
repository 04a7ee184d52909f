// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"barstock/internal/core/id"
	"barstock/internal/infrastructure/storage/postgres"
	"barstock/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	adminUserID, err := seedAdminUser(ctx, pool, log)
	if err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoVenue(ctx, pool, log, adminUserID); err != nil {
			log.Fatalw("failed to seed demo venue", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@barstock.io"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, is_active, is_admin, version)
		VALUES ($1, $2, $3, 'System Admin', true, true, 1)
	`, userID, adminEmail, string(passwordHash))
	if err != nil {
		return id.Nil(), fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)

	return userID, nil
}

// seedDemoVenue creates a demo venue with a small bar layout: two areas,
// shelves in each, a supplier, a handful of products enrolled as inventory
// items and empty placements ready for a first count.
func seedDemoVenue(ctx context.Context, pool *postgres.Pool, log *logger.Logger, adminUserID id.ID) error {
	log.Info("seeding demo venue...")

	venueID := id.New()
	tag, err := pool.Pool.Exec(ctx, `
		INSERT INTO venues (id, name, address, phone, version)
		VALUES ($1, 'Demo Bar', '1 High Street', '+44 20 0000 0000', 1)
		ON CONFLICT DO NOTHING
	`, venueID)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Info("demo venue already exists, skipping")
		return nil
	}

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO venue_members (user_id, venue_id, role, granted_by)
		VALUES ($1, $2, 'owner', NULL)
		ON CONFLICT (user_id, venue_id) DO NOTHING
	`, adminUserID, venueID)
	if err != nil {
		return fmt.Errorf("link admin to venue: %w", err)
	}

	type areaSeed struct {
		name     string
		sections []string
	}
	areas := []areaSeed{
		{"Main Bar", []string{"Back Shelf", "Speed Rail", "Fridge"}},
		{"Cellar", []string{"Spirits Rack", "Wine Rack"}},
	}

	var sectionIDs []id.ID
	var sectionAreas []id.ID
	for pos, a := range areas {
		areaID := id.New()
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_areas (id, venue_id, name, position, version)
			VALUES ($1, $2, $3, $4, 1)
		`, areaID, venueID, a.name, pos)
		if err != nil {
			return fmt.Errorf("insert area %q: %w", a.name, err)
		}
		for spos, s := range a.sections {
			sectionID := id.New()
			_, err := pool.Pool.Exec(ctx, `
				INSERT INTO cat_sections (id, venue_id, area_id, name, position, version)
				VALUES ($1, $2, $3, $4, $5, 1)
			`, sectionID, venueID, areaID, s, spos)
			if err != nil {
				return fmt.Errorf("insert section %q: %w", s, err)
			}
			sectionIDs = append(sectionIDs, sectionID)
			sectionAreas = append(sectionAreas, areaID)
		}
	}

	supplierID := id.New()
	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO cat_suppliers (id, venue_id, name, email, version)
		VALUES ($1, $2, 'Demo Drinks Ltd', 'orders@demodrinks.example', 1)
	`, supplierID, venueID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}

	type productSeed struct {
		name      string
		category  string
		costPrice string
		salePrice string
		unitSize  float64
		unit      string
	}
	products := []productSeed{
		{"London Dry Gin", "Spirits", "18.50", "3.80", 700, "ml"},
		{"Blanco Tequila", "Spirits", "22.00", "4.20", 700, "ml"},
		{"House Red Wine", "Wine", "7.20", "5.50", 750, "ml"},
		{"Pale Ale", "Beer", "1.10", "4.80", 330, "ml"},
		{"Tonic Water", "Soft Drinks", "0.45", "1.90", 200, "ml"},
	}

	var itemIDs []id.ID
	for _, p := range products {
		productID := id.New()
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_products (
				id, venue_id, name, type, category, supplier_id,
				cost_price, sale_price, unit_size, unit, count_as_full, version
			)
			VALUES ($1, $2, $3, 'beverage', $4, $5, $6, $7, $8, $9, 1.0, 1)
		`, productID, venueID, p.name, p.category, supplierID, p.costPrice, p.salePrice, p.unitSize, p.unit)
		if err != nil {
			return fmt.Errorf("insert product %q: %w", p.name, err)
		}

		itemID := id.New()
		_, err = pool.Pool.Exec(ctx, `
			INSERT INTO cat_items (id, venue_id, name, product_id, version)
			VALUES ($1, $2, $3, $4, 1)
		`, itemID, venueID, p.name, productID)
		if err != nil {
			return fmt.Errorf("insert item %q: %w", p.name, err)
		}
		itemIDs = append(itemIDs, itemID)
	}

	// Placements: every item in every section, zero volume. Bulk loaded
	// via COPY inside one transaction.
	txManager := postgres.NewTxManager(pool)
	inserter := postgres.NewBatchInserter(txManager)

	count := 0
	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		rows := make(chan []any, 64)
		go func() {
			defer close(rows)
			now := time.Now().UTC()
			for i, itemID := range itemIDs {
				for j, sectionID := range sectionIDs {
					rows <- []any{
						id.New(), venueID, itemID, sectionAreas[j], sectionID,
						0.0, i, 1, now, now,
					}
				}
			}
		}()

		inserted, err := inserter.CopyFromRows(txCtx, "placements",
			[]string{
				"id", "venue_id", "item_id", "area_id", "section_id",
				"volume", "position", "version", "created_at", "updated_at",
			}, rows)
		if err != nil {
			return fmt.Errorf("copy placements: %w", err)
		}
		count = int(inserted)
		return nil
	})
	if err != nil {
		return err
	}

	log.Infow("demo venue seeded",
		"venue_id", venueID,
		"items", len(itemIDs),
		"placements", count,
	)

	return nil
}
