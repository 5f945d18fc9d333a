// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/platemap/internal/catalog"
	"github.com/llehouerou/platemap/internal/coordinator"
	"github.com/llehouerou/platemap/internal/detail"
	"github.com/llehouerou/platemap/internal/gesture"
	"github.com/llehouerou/platemap/internal/keymap"
	"github.com/llehouerou/platemap/internal/logging"
	"github.com/llehouerou/platemap/internal/sheet"
	"github.com/llehouerou/platemap/internal/ui/layout"
	"github.com/llehouerou/platemap/internal/ui/mapview"
	"github.com/llehouerou/platemap/internal/ui/sheetview"
)

// Options configures the root model.
type Options struct {
	Catalog        catalog.Interface
	Sheet          sheet.Config
	Detail         detail.Config
	VelocityWindow time.Duration
	PointsPerRow   float64
	Logger         *slog.Logger
	Now            func() time.Time // clock for gesture samples (default: time.Now)
}

// Model is the root application model.
type Model struct {
	catalog catalog.Interface
	log     *slog.Logger
	now     func() time.Time

	panel   *sheet.Controller
	card    *detail.Overlay[catalog.Place]
	coord   *coordinator.Coordinator[catalog.Place]
	tracker *gesture.Tracker

	keys     *keymap.Resolver
	help     help.Model
	showHelp bool

	mapView  mapview.Model
	list     sheetview.Model
	places   []catalog.Place
	geom     layout.Geometry
	detailH  float64 // configured detail height, before clamping to the screen
	ticking  bool
	tooSmall error
	errMsg   string
}

// New builds the root model. Invalid sheet configuration is reported here,
// before the first frame.
func New(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// The real viewport arrives with the first WindowSizeMsg; start from one
	// that any valid configuration fits in.
	boot := 2*opts.Sheet.DefaultHeight + opts.Sheet.ReservedMargin
	panel, err := sheet.New(opts.Sheet, boot,
		sheet.WithLogger(log.With("component", "sheet")),
		sheet.WithSettleHandler(func(p sheet.Point) {
			log.Info("sheet settled", "snap", string(p.Name), "height", p.Height)
		}),
	)
	if err != nil {
		return Model{}, err
	}

	card := detail.New[catalog.Place](opts.Detail, log.With("component", "detail"))
	coord := coordinator.New(panel, card, log.With("component", "coordinator"))

	return Model{
		catalog: opts.Catalog,
		log:     log,
		now:     now,
		panel:   panel,
		card:    card,
		coord:   coord,
		tracker: gesture.NewTracker(opts.VelocityWindow),
		keys:    keymap.NewResolver(keymap.Bindings),
		help:    help.New(),
		mapView: mapview.New(),
		list:    sheetview.New(),
		geom:    layout.New(0, 0, opts.PointsPerRow),
		detailH: card.Height(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return LoadPlacesCmd(m.catalog)
}

// Panel returns the sheet controller.
func (m Model) Panel() *sheet.Controller { return m.panel }

// Card returns the detail overlay.
func (m Model) Card() *detail.Overlay[catalog.Place] { return m.card }

// Mode returns which component is frontmost.
func (m Model) Mode() coordinator.Mode { return m.coord.Mode() }

// Places returns the loaded places.
func (m Model) Places() []catalog.Place { return m.places }

// Error returns the message shown in the status row, if any.
func (m Model) Error() string { return m.errMsg }
