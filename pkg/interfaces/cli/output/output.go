package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/foodops/weekplan/pkg/application/dto"
	"github.com/foodops/weekplan/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a scheduling result in the requested format
func Generate(result *dto.ScheduleResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateTextOutput(result *dto.ScheduleResult, config Config) error {
	fmt.Printf("Production Schedule %s ~ %s\n",
		result.WeekStart.Format("2006-01-02"), result.WeekEnd.Format("2006-01-02"))
	fmt.Printf("Run %s (%v)\n\n", result.RunID, result.Elapsed)

	fmt.Printf("Entries: %d   Units: %d   Hours: %.1f\n\n",
		len(result.Entries), result.TotalUnits(), result.TotalHours())

	if len(result.Entries) > 0 {
		fmt.Printf("%-12s %-6s %-24s %8s %8s  %s\n",
			"Day", "Shift", "Product", "Qty", "Hours", "Reason")
		fmt.Printf("%-12s %-6s %-24s %8s %8s  %s\n",
			strings.Repeat("-", 12), "------", strings.Repeat("-", 24),
			"--------", "--------", strings.Repeat("-", 24))
		for _, entry := range result.Entries {
			fmt.Printf("%-12s %-6s %-24s %8d %8.1f  %s\n",
				entry.DayLabel, entry.Shift, entry.ProductName,
				entry.Quantity, entry.Hours, entry.Reason)
		}
		fmt.Println()
	} else {
		fmt.Println("No production required this week.")
	}

	if config.Verbose {
		fmt.Println("Slot usage:")
		for _, usage := range result.Usage {
			fmt.Printf("  %s %-6s %4d/%4d units  %5.1fh\n",
				entities.DayName(usage.Day), usage.Shift,
				usage.Placed, usage.Capacity, float64(usage.Seconds)/3600)
		}
		fmt.Println()
	}

	if len(result.Unmatched) > 0 {
		fmt.Printf("Not scheduled (no sales history in window): %s\n",
			strings.Join(result.Unmatched, ", "))
	}
	for _, u := range result.Unplaced {
		fmt.Printf("UNPLACED: %s needs %d more units from %s (%s)\n",
			u.Name, u.Quantity, entities.DayName(u.TargetDay), u.Reason)
	}

	return nil
}

func generateJSONOutput(result *dto.ScheduleResult, config Config) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(data))
		return nil
	}
	path := filepath.Join(config.OutputDir, "schedule.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Results written to %s\n", path)
	return nil
}

func generateCSVOutput(result *dto.ScheduleResult, config Config) error {
	out := os.Stdout
	if config.OutputDir != "" {
		path := filepath.Join(config.OutputDir, "schedule.csv")
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer file.Close()
		out = file
		defer fmt.Printf("Results written to %s\n", path)
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"week_start", "week_end", "day_of_week", "shift", "product_code", "product", "quantity", "production_time", "reason", "urgency"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, entry := range result.Entries {
		record := []string{
			entry.WeekStart.Format("2006-01-02"),
			entry.WeekEnd.Format("2006-01-02"),
			entry.DayLabel,
			entry.Shift.String(),
			string(entry.ProductCode),
			entry.ProductName,
			strconv.FormatInt(int64(entry.Quantity), 10),
			strconv.FormatFloat(entry.Hours, 'f', 1, 64),
			entry.Reason,
			strconv.Itoa(entry.Urgency),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	return nil
}
