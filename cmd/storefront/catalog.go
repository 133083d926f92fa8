package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/repository"
)

var (
	catalogQuery     string
	catalogCategory  string
	catalogProductID string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the products visible for a search query and category, or one product with --id",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if catalogProductID != "" {
			p, err := lookupProduct(cmd.Context(), cfg, catalogProductID)
			if err != nil {
				return err
			}
			return printProduct(cmd.OutOrStdout(), p)
		}

		c, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
		for _, p := range c.Visible(catalogQuery, domain.Category(catalogCategory)) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, cart.FormatMoney(p.Price))
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogQuery, "query", "q", "", "Search text matched against name, description and benefits")
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", string(domain.CategoryAll), "Category to show")
	catalogCmd.Flags().StringVar(&catalogProductID, "id", "", "Show the full detail of one product")
}

// lookupProduct reads a single product straight from the SQLite catalog when
// one is configured, and from the embedded fixture otherwise.
func lookupProduct(ctx context.Context, cfg *Config, id string) (domain.Product, error) {
	if cfg.CatalogDBPath == "" {
		products, err := catalog.Fixture{}.GetAllProducts(ctx)
		if err != nil {
			return domain.Product{}, err
		}
		p, ok := catalog.Find(products, id)
		if !ok {
			return domain.Product{}, fmt.Errorf("product %q: %w", id, repository.ErrProductNotFound)
		}
		return p, nil
	}

	repo, err := repository.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		return domain.Product{}, err
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		return domain.Product{}, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	p, err := repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, err)
	}
	return p, nil
}

func printProduct(w io.Writer, p domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", p.ID)
	fmt.Fprintf(tw, "NAME\t%s\n", p.Name)
	fmt.Fprintf(tw, "CATEGORY\t%s\n", p.Category)
	fmt.Fprintf(tw, "PRICE\t%s\n", cart.FormatMoney(p.Price))
	fmt.Fprintf(tw, "RATING\t%.1f (%d reviews)\n", p.Rating, len(p.Reviews))
	fmt.Fprintf(tw, "BENEFITS\t%s\n", strings.Join(p.Benefits, ", "))
	fmt.Fprintf(tw, "INGREDIENTS\t%s\n", p.Ingredients)
	fmt.Fprintf(tw, "USAGE\t%s\n", p.Usage)
	return tw.Flush()
}
