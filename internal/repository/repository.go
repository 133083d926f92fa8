package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

var ErrProductNotFound = errors.New("product not found")

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// RunMigrations applies the catalog schema and seed. An empty path uses the
// migrations compiled into the binary.
func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	var m *migrate.Migrate
	if migrationsPath == "" {
		src, err := iofs.New(embeddedMigrations, "migrations")
		if err != nil {
			return fmt.Errorf("could not open embedded migrations: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance for %s: %w", migrationsPath, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply catalog migrations: %w", err)
	}
	return nil
}

const productColumns = `id, name, category, price, rating, description, ingredients, usage_instructions`

// GetAllProducts returns the catalog in its configured display order.
func (r *Repository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for i := range products {
		if err := r.loadDetails(ctx, &products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	if err := r.loadDetails(ctx, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p        domain.Product
		category string
		price    string
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&category,
		&price,
		&p.Rating,
		&p.Description,
		&p.Ingredients,
		&p.Usage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, err
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}

	p.Category = domain.Category(category)
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price %q for product %s: %w", price, p.ID, err)
	}
	return p, nil
}

func (r *Repository) loadDetails(ctx context.Context, p *domain.Product) error {
	var err error
	if p.Images, err = r.queryStrings(ctx,
		`SELECT url FROM product_images WHERE product_id = ? ORDER BY position`, p.ID); err != nil {
		return fmt.Errorf("failed to load images for %s: %w", p.ID, err)
	}
	if p.Benefits, err = r.queryStrings(ctx,
		`SELECT benefit FROM product_benefits WHERE product_id = ? ORDER BY position`, p.ID); err != nil {
		return fmt.Errorf("failed to load benefits for %s: %w", p.ID, err)
	}
	if p.Reviews, err = r.queryReviews(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to load reviews for %s: %w", p.ID, err)
	}
	return nil
}

func (r *Repository) queryStrings(ctx context.Context, query, productID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) queryReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT review_id, user_name, rating, body
		FROM product_reviews
		WHERE product_id = ?
		ORDER BY position
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.User, &rv.Rating, &rv.Text); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
