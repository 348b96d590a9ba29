package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	"github.com/foodops/weekplan/pkg/domain/repositories"
	appconfig "github.com/foodops/weekplan/pkg/infrastructure/config"
	csvrepo "github.com/foodops/weekplan/pkg/infrastructure/repositories/csv"
	"github.com/foodops/weekplan/pkg/infrastructure/repositories/gormstore"
	"github.com/foodops/weekplan/pkg/infrastructure/repositories/memory"
	"github.com/foodops/weekplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the schedule command
type Config struct {
	ConfigFile   string
	ProductsFile string
	SalesFile    string
	Week         string
	Replace      bool
	OutputDir    string
	Format       string
	Verbose      bool
	Help         bool
}

// ScheduleCommand runs one scheduling run from CSV inputs or the database
type ScheduleCommand struct {
	config Config
	log    zerolog.Logger
}

// NewScheduleCommand creates a new schedule command with the given configuration
func NewScheduleCommand(config Config, logger zerolog.Logger) *ScheduleCommand {
	return &ScheduleCommand{config: config, log: logger}
}

// Execute runs the schedule command
func (c *ScheduleCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	anchor := time.Now()
	if c.config.Week != "" {
		parsed, err := time.Parse("2006-01-02", c.config.Week)
		if err != nil {
			return fmt.Errorf("invalid -week date %q (expected YYYY-MM-DD): %w", c.config.Week, err)
		}
		anchor = parsed
	}

	cfg := appconfig.Default()
	if c.config.ConfigFile != "" {
		loaded, err := appconfig.Load(c.config.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	facility, err := cfg.FacilityConfig()
	if err != nil {
		return fmt.Errorf("facility config: %w", err)
	}

	products, sales, schedules, cleanup, err := c.buildRepositories(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	service, err := scheduling.NewService(facility, products, sales, schedules, c.log)
	if err != nil {
		return err
	}

	result, err := service.Run(ctx, scheduling.RunOptions{Anchor: anchor, Replace: c.config.Replace})
	if err != nil {
		return err
	}

	return output.Generate(result, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

// buildRepositories wires either CSV-backed in-memory repositories or the
// configured database store
func (c *ScheduleCommand) buildRepositories(cfg *appconfig.Config) (
	repositories.ProductRepository,
	repositories.SalesRepository,
	repositories.ScheduleRepository,
	func(),
	error,
) {
	if c.config.ProductsFile != "" || c.config.SalesFile != "" {
		if c.config.ProductsFile == "" || c.config.SalesFile == "" {
			return nil, nil, nil, nil, fmt.Errorf("-products and -sales must be given together")
		}

		loader := csvrepo.NewLoader()
		products, skippedProducts, err := loader.LoadProducts(c.config.ProductsFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		sales, skippedSales, err := loader.LoadSales(c.config.SalesFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if skippedProducts+skippedSales > 0 {
			c.log.Warn().
				Int("product_rows", skippedProducts).
				Int("sales_rows", skippedSales).
				Msg("skipped malformed CSV rows")
		}

		productRepo := memory.NewProductRepository(len(products))
		if err := productRepo.LoadProducts(products); err != nil {
			return nil, nil, nil, nil, err
		}
		salesRepo := memory.NewSalesRepository(len(sales))
		if err := salesRepo.LoadSales(sales); err != nil {
			return nil, nil, nil, nil, err
		}
		return productRepo, salesRepo, memory.NewScheduleRepository(), func() {}, nil
	}

	store, err := gormstore.Open(cfg.Database, c.log)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			c.log.Warn().Err(err).Msg("closing store")
		}
	}
	return store.Products(), store.Sales(), store.Schedules(), cleanup, nil
}

func (c *ScheduleCommand) showHelp() {
	fmt.Fprintf(os.Stderr, `weekplan - weekly production schedule generator

Usage:
  weekplan [flags]

Input (choose one):
  -config <file>     YAML configuration with the database connection
  -products <file>   product catalog CSV (with -sales; runs fully in memory)
  -sales <file>      sales history CSV (with -products)

Flags:
  -week <date>       any date inside the target week, YYYY-MM-DD (default: today)
  -replace           replace an existing schedule for the week
  -format <fmt>      output format: text, json, csv (default: text)
  -output <dir>      write json/csv output into this directory
  -verbose           include slot usage in text output
  -help              show this message

The engine schedules Monday through Friday of the week containing -week,
using the trailing four weeks of sales to derive weekday demand.
`)
}
