// Package viz orchestrates the interactive dashboard over the immutable
// dataset snapshot: control metadata, figure recomputation, and the
// click-to-inspect echo. Every method is a pure, total reaction to a
// selection event; the dataset is never mutated after construction.
package viz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/omni-storm-viz/internal/domain"
	"github.com/couchcryptid/omni-storm-viz/internal/observability"
	"github.com/couchcryptid/omni-storm-viz/internal/render"
)

// magnitudeStep is the slider granularity, matching the original dashboard.
const magnitudeStep = 0.1

// markStride is the spacing of labeled slider marks in magnitude units.
const markStride = 5

// Meta describes the selector controls the dashboard builds: the year
// dropdown, the magnitude slider, and their defaults.
type Meta struct {
	Years            []int     `json:"years"`
	DefaultYear      int       `json:"default_year"`
	MagnitudeMin     float64   `json:"magnitude_min"`
	MagnitudeMax     float64   `json:"magnitude_max"`
	MagnitudeDefault float64   `json:"magnitude_default"`
	MagnitudeStep    float64   `json:"magnitude_step"`
	MagnitudeMarks   []float64 `json:"magnitude_marks"`
	Rows             int       `json:"rows"`
	LoadedAt         time.Time `json:"loaded_at"`
}

// Service reacts to dashboard input events against one dataset snapshot.
type Service struct {
	ds        domain.Dataset
	selection *domain.SelectionState
	opts      render.Options
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service over an already-loaded dataset.
func New(ds domain.Dataset, opts render.Options, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		ds:        ds,
		selection: domain.NewSelectionState(),
		opts:      opts,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a non-empty dataset backs the service.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.ds.Empty() {
		return errors.New("no dataset loaded")
	}
	return nil
}

// Meta returns the control metadata. Defaults follow the original dashboard:
// minimum year for the dropdown, mean magnitude for the slider.
func (s *Service) Meta() Meta {
	lo, hi := s.ds.MagnitudeRange()
	return Meta{
		Years:            s.ds.Years(),
		DefaultYear:      s.ds.MinYear(),
		MagnitudeMin:     lo,
		MagnitudeMax:     hi,
		MagnitudeDefault: s.ds.MagnitudeMean(),
		MagnitudeStep:    magnitudeStep,
		MagnitudeMarks:   magnitudeMarks(lo, hi),
		Rows:             s.ds.Len(),
		LoadedAt:         s.ds.LoadedAt,
	}
}

// Figure recomputes the 3D figure for a (year, magnitude) selection. A
// selection matching nothing yields a figure with zero points, not an error.
func (s *Service) Figure(year int, maxMagnitude float64) render.Figure {
	start := time.Now()
	records := domain.Filter(s.ds, year, maxMagnitude)
	fig := render.NewFigure(render.ToPointCloud(records), s.opts)

	s.metrics.FigureRequests.Inc()
	s.metrics.PointsRendered.Observe(float64(len(records)))
	s.metrics.FigureDuration.Observe(time.Since(start).Seconds())

	s.logger.Debug("figure rendered",
		"year", year, "max_magnitude", maxMagnitude, "points", len(records))
	return fig
}

// DescribeClick records a clicked point and returns its echo string.
func (s *Service) DescribeClick(p domain.SelectedPoint) string {
	s.metrics.SelectionClicks.Inc()
	return s.selection.Click(p)
}

// CurrentSelection returns the latest echo string, or the placeholder when
// nothing has been clicked.
func (s *Service) CurrentSelection() string {
	return s.selection.Current()
}

// magnitudeMarks labels the slider every markStride whole units across the
// magnitude range, as the original dashboard did.
func magnitudeMarks(lo, hi float64) []float64 {
	var marks []float64
	for v := int(lo); v <= int(hi); v += markStride {
		marks = append(marks, float64(v))
	}
	return marks
}
