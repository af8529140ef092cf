package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"iris/internal/application"
	"iris/internal/domain"
	"iris/internal/ports"
)

// Report is the outcome of a ComputeCommand
type Report struct {
	Body   domain.Body
	Start  time.Time
	End    time.Time
	Result domain.Result
	// OnEarth is set when the target is Earth; presenters show
	// application.EarthMessage instead of the numbers.
	OnEarth bool
}

// ComputeCommand computes distance and velocity from raw user input
type ComputeCommand struct {
	engine  *application.Engine
	history ports.HistoryRepository
	logger  zerolog.Logger
	Body    string
	Start   string
	End     string
}

// NewComputeCommand creates a new ComputeCommand.
// history may be nil, in which case nothing is recorded.
func NewComputeCommand(engine *application.Engine, history ports.HistoryRepository, body, start, end string) *ComputeCommand {
	return &ComputeCommand{
		engine:  engine,
		history: history,
		logger:  zerolog.Nop(),
		Body:    body,
		Start:   start,
		End:     end,
	}
}

// WithLogger sets the logger used to report history failures
func (c *ComputeCommand) WithLogger(logger zerolog.Logger) *ComputeCommand {
	c.logger = logger
	return c
}

// Execute parses the input, runs the engine and records the calculation
func (c *ComputeCommand) Execute(ctx context.Context) (*Report, error) {
	in, err := application.ParseInput(c.Body, c.Start, c.End)
	if err != nil {
		return nil, err
	}

	result, err := c.engine.ComputeDistanceAndVelocity(in.Body, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Body:    in.Body,
		Start:   in.Start,
		End:     in.End,
		Result:  result,
		OnEarth: in.Body == domain.Earth,
	}

	c.logger.Debug().
		Str("body", in.Body.String()).
		Float64("distance_km", result.DistanceKm).
		Float64("velocity_km_s", result.VelocityKmS).
		Msg("computed")

	if c.history != nil {
		calc := &domain.Calculation{
			Body:     in.Body,
			Start:    in.Start,
			End:      in.End,
			Result:   result,
			Resolver: c.engine.ResolverName(),
		}
		if err := c.history.Save(ctx, calc); err != nil {
			// A failed write must not hide a valid result
			c.logger.Warn().Err(err).Msg("failed to record calculation")
		}
	}

	return report, nil
}
