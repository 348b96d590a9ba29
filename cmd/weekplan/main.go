package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile   = flag.String("config", "", "Path to YAML configuration file")
		productsFile = flag.String("products", "", "Path to product catalog CSV file")
		salesFile    = flag.String("sales", "", "Path to sales history CSV file")
		week         = flag.String("week", "", "Any date inside the target week (YYYY-MM-DD, default today)")
		replace      = flag.Bool("replace", false, "Replace an existing schedule for the week")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json, csv")
		verbose      = flag.Bool("verbose", false, "Enable verbose output")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	config := commands.Config{
		ConfigFile:   *configFile,
		ProductsFile: *productsFile,
		SalesFile:    *salesFile,
		Week:         *week,
		Replace:      *replace,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	}

	cmd := commands.NewScheduleCommand(config, logger)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
