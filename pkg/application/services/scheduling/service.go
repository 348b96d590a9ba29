package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/application/dto"
	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

// ErrWeekAlreadyScheduled is returned when a schedule already exists for the
// target week and the caller did not ask to replace it
var ErrWeekAlreadyScheduled = errors.New("schedule already exists for week")

// RunOptions controls one scheduling run
type RunOptions struct {
	// Anchor is any date inside the target week; it is normalized to Monday
	Anchor time.Time
	// Replace deletes an existing schedule for the week instead of failing
	Replace bool
}

// Service wires the engine stages to the persistence collaborators for one
// facility. A run is synchronous and stateless between invocations: it reads
// one snapshot of products and sales, computes the schedule in memory, and
// performs a single bulk write at the end.
type Service struct {
	cfg       FacilityConfig
	products  repositories.ProductRepository
	sales     repositories.SalesRepository
	schedules repositories.ScheduleRepository
	log       zerolog.Logger
}

// NewService creates a scheduling service after validating the facility
// configuration
func NewService(
	cfg FacilityConfig,
	products repositories.ProductRepository,
	sales repositories.SalesRepository,
	schedules repositories.ScheduleRepository,
	logger zerolog.Logger,
) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid facility config: %w", err)
	}
	return &Service{
		cfg:       cfg,
		products:  products,
		sales:     sales,
		schedules: schedules,
		log:       logger,
	}, nil
}

// Run executes one scheduling run for the week containing opts.Anchor and
// persists the resulting schedule. Recoverable per-product conditions
// (unmatched products, unplaceable remainders) are reported on the result;
// only persistence failures abort the run.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*dto.ScheduleResult, error) {
	started := time.Now()
	week := entities.WeekOf(opts.Anchor)
	runID := uuid.NewString()
	log := s.log.With().
		Str("run_id", runID).
		Str("week_start", week.Start.Format("2006-01-02")).
		Logger()

	catalog, err := s.products.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load product catalog: %w", err)
	}

	from, to := week.SalesWindow()
	sales, err := s.sales.GetRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("load sales window %s..%s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	log.Info().
		Int("products", len(catalog)).
		Int("sales_rows", len(sales)).
		Msg("scheduling run started")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles := AggregateDemand(sales)

	var plans []ProductPlan
	var unmatched []string
	for _, product := range catalog {
		if !product.Schedulable() {
			continue
		}
		profile, ok := profiles[product.Code]
		if !ok {
			unmatched = append(unmatched, product.Name)
			continue
		}
		plans = append(plans, Simulate(product, profile, s.cfg.SafetyFloor(product.Code), s.cfg.LookaheadDays()))
	}
	if len(unmatched) > 0 {
		log.Warn().
			Strs("products", unmatched).
			Msg("no sales history in window, excluded from run")
	}

	events := PlanEvents(plans)
	state := NewAllocationState()
	unplaced := NewAllocator(s.cfg).Allocate(events, state)

	entries, err := AssembleSchedule(week, state)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists, err := s.schedules.ExistsForWeek(week.Start)
	if err != nil {
		return nil, fmt.Errorf("check existing schedule: %w", err)
	}
	if exists {
		if !opts.Replace {
			return nil, fmt.Errorf("week %s: %w", week.Start.Format("2006-01-02"), ErrWeekAlreadyScheduled)
		}
		if err := s.schedules.DeleteWeek(week.Start); err != nil {
			return nil, fmt.Errorf("delete existing schedule: %w", err)
		}
		log.Info().Msg("replaced existing schedule")
	}

	if err := s.schedules.SaveEntries(entries); err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}

	result := &dto.ScheduleResult{
		RunID:     runID,
		WeekStart: week.Start,
		WeekEnd:   week.End(),
		Entries:   entries,
		Unmatched: unmatched,
		Unplaced:  unplaced,
		Usage:     SlotUsageReport(s.cfg, state),
		Elapsed:   time.Since(started),
	}

	log.Info().
		Int("entries", len(result.Entries)).
		Int64("units", int64(result.TotalUnits())).
		Int64("unplaced_units", int64(result.UnplacedUnits())).
		Dur("elapsed", result.Elapsed).
		Msg("scheduling run complete")

	return result, nil
}
