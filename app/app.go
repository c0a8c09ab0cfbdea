package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"wxdeck/config"
	"wxdeck/keys"
	"wxdeck/log"
	"wxdeck/market"
	"wxdeck/ui"
	"wxdeck/ui/layout"
	"wxdeck/ui/overlay"
	"wxdeck/watcher"
	"wxdeck/weather"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cityID string) error {
	p := tea.NewProgram(
		newDashboard(ctx, cityID),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// hintWelcome marks the first-run help screen as shown.
const hintWelcome uint32 = 1 << 0

type state int

const (
	stateDefault state = iota
	// stateCitySelect is the state when the city picker overlay is open.
	stateCitySelect
	// stateHelp is the state when the help screen is displayed.
	stateHelp
)

type fetchResultMsg struct {
	snap  *weather.Snapshot
	board *market.Market
	err   error
}

type refreshTickMsg struct{}

type resizeDebounceMsg struct{}

type hideErrMsg struct{}

type keyupMsg struct{}

type overridesChangedMsg struct{}

type dashboard struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config
	appState  *config.State

	// -- Domain --

	engine   *layout.Engine
	provider weather.Provider
	source   market.Source
	city     weather.City

	// -- State --

	state state
	// expanded tracks which widgets the user has expanded.
	expanded map[string]bool
	// dismissed tracks widgets the user removed from the grid this session.
	dismissed map[string]bool
	// focusID is the widget holding keyboard focus; empty when none placed.
	focusID string

	result  *layout.LayoutResult
	data    ui.WidgetData
	loading bool
	status  string

	// pendingResize indicates a recompute is queued (resize debouncing).
	pendingResize bool

	width, height int

	// -- UI Components --

	menu           *ui.Menu
	spinner        spinner.Model
	loadingOverlay *overlay.LoadingOverlay
	citySelector   *overlay.CitySelectorOverlay

	// -- Background Services --

	overridesWatcher *watcher.FileWatcher
	overridesCh      chan struct{}
}

func newDashboard(ctx context.Context, cityID string) *dashboard {
	appConfig := config.LoadConfig()
	appState := config.LoadState()

	if cityID == "" {
		cityID = appState.LastCity
	}
	if cityID == "" {
		cityID = appConfig.DefaultCity
	}
	city, ok := weather.CityByID(cityID)
	if !ok {
		log.WarningLog.Printf("unknown city %q, falling back to %s", cityID, weather.Cities[0].ID)
		city = weather.Cities[0]
	}

	engine, err := buildEngine(appConfig)
	if err != nil {
		log.ErrorLog.Printf("layout overrides rejected: %v", err)
		engine = layout.NewEngine()
	}

	d := &dashboard{
		ctx:       ctx,
		appConfig: appConfig,
		appState:  appState,
		engine:    engine,
		provider:  weather.NewStaticProvider(),
		source:    market.NewStaticSource(),
		city:      city,
		state:     stateDefault,
		expanded:  make(map[string]bool),
		dismissed: make(map[string]bool),
		menu:      ui.NewMenu(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		loading:   true,
	}
	d.loadingOverlay = overlay.NewLoadingOverlay("Fetching "+city.Name, &d.spinner)

	// First run opens on the key reference.
	if appState.GetHintsSeen()&hintWelcome == 0 {
		d.state = stateHelp
		d.menu.SetState(ui.StateHelp)
		if err := appState.SetHintsSeen(appState.GetHintsSeen() | hintWelcome); err != nil {
			log.WarningLog.Printf("failed to record welcome hint: %v", err)
		}
	}

	if appConfig.LayoutOverrides != "" && appConfig.WatchOverrides {
		d.overridesCh = make(chan struct{}, 1)
		w, err := watcher.WatchFile(appConfig.LayoutOverrides, watcher.DefaultDebounce, func() {
			select {
			case d.overridesCh <- struct{}{}:
			default:
			}
		})
		if err != nil {
			log.WarningLog.Printf("cannot watch layout overrides: %v", err)
		} else {
			d.overridesWatcher = w
		}
	}

	return d
}

// buildEngine folds the optional overrides file into the built-in catalog
// and min-height tables.
func buildEngine(cfg *config.Config) (*layout.Engine, error) {
	catalog := layout.DefaultCatalog()
	base := layout.DefaultMinHeights()
	expanded := layout.DefaultExpandedMinHeights()

	if cfg.LayoutOverrides != "" {
		o, err := config.LoadLayoutOverrides(cfg.LayoutOverrides)
		if err != nil {
			return nil, err
		}
		catalog, base, expanded, err = o.Apply(catalog, base, expanded)
		if err != nil {
			return nil, err
		}
	}

	return layout.NewEngine(
		layout.WithCatalog(catalog),
		layout.WithMinHeights(base, expanded),
	), nil
}

func (d *dashboard) Init() tea.Cmd {
	return tea.Batch(
		d.spinner.Tick,
		d.fetchCmd(),
		d.refreshTickCmd(),
		d.waitOverridesCmd(),
	)
}

// fetchCmd fetches the city's snapshot and bracket board off the UI loop.
func (d *dashboard) fetchCmd() tea.Cmd {
	ctx, city := d.ctx, d.city
	provider, source := d.provider, d.source
	return func() tea.Msg {
		snap, err := provider.Snapshot(ctx, city)
		if err != nil {
			return fetchResultMsg{err: err}
		}
		board, err := source.TempBrackets(ctx, city.ID)
		if err != nil {
			return fetchResultMsg{err: err}
		}
		return fetchResultMsg{snap: snap, board: board}
	}
}

func (d *dashboard) refreshTickCmd() tea.Cmd {
	interval := time.Duration(d.appConfig.RefreshSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// waitOverridesCmd blocks on the watcher channel and converts file change
// notifications into messages. Re-issued after each delivery.
func (d *dashboard) waitOverridesCmd() tea.Cmd {
	if d.overridesCh == nil {
		return nil
	}
	ch := d.overridesCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return overridesChangedMsg{}
	}
}

func hideStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return hideErrMsg{}
	})
}

func keyupCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return keyupMsg{}
	})
}

// resizeDebounce coalesces resize storms before the layout engine runs.
const resizeDebounce = 100 * time.Millisecond

func resizeDebounceCmd() tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeDebounceMsg{}
	})
}

// absentWidgets derives the widget IDs with no data this cycle, merged with
// user dismissals, sorted for cache-key stability.
func (d *dashboard) absentWidgets() []string {
	absent := make(map[string]bool, len(d.dismissed))
	for id, off := range d.dismissed {
		if off {
			absent[id] = true
		}
	}
	if d.data.Snapshot != nil {
		if len(d.data.Snapshot.Alerts) == 0 {
			absent[layout.WidgetAlerts] = true
		}
		if len(d.data.Snapshot.Nearby) == 0 {
			absent[layout.WidgetNearby] = true
		}
	}
	ids := make([]string, 0, len(absent))
	for id := range absent {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// recompute runs the layout engine for the current viewport and state and
// repairs focus if its widget left the grid.
func (d *dashboard) recompute() {
	if d.width <= 0 {
		return
	}
	viewport := d.appConfig.ViewportPx(d.width)
	d.result = d.engine.Compute(d.expanded, viewport, d.absentWidgets())

	if d.result == nil || len(d.result.AreaMap) == 0 {
		d.focusID = ""
		return
	}
	if d.focusID == "" || !d.result.Placed(d.focusID) {
		d.focusID = d.result.AreaMap[0]
	}
}

func (d *dashboard) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	first := d.width <= 0
	d.width = msg.Width
	d.height = msg.Height
	d.menu.SetSize(msg.Width, 1)
	d.loadingOverlay.SetWidth(msg.Width / 2)
	if d.citySelector != nil {
		d.citySelector.SetWidth(msg.Width / 3)
	}

	// The first size computes immediately; later resizes are debounced so a
	// drag-resize storm reaches the engine once.
	if first {
		d.recompute()
		return nil
	}
	if d.pendingResize {
		return nil
	}
	d.pendingResize = true
	return resizeDebounceCmd()
}

func (d *dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return d, d.updateHandleWindowSizeEvent(msg)
	case resizeDebounceMsg:
		d.pendingResize = false
		d.recompute()
		return d, nil
	case fetchResultMsg:
		d.loading = false
		if msg.err != nil {
			log.ErrorLog.Printf("fetch failed for %s: %v", d.city.ID, msg.err)
			d.status = "fetch failed: " + msg.err.Error()
			return d, hideStatusCmd()
		}
		d.data = ui.WidgetData{Snapshot: msg.snap, Market: msg.board}
		d.recompute()
		return d, nil
	case refreshTickMsg:
		d.loading = true
		return d, tea.Batch(d.fetchCmd(), d.refreshTickCmd())
	case overridesChangedMsg:
		engine, err := buildEngine(d.appConfig)
		if err != nil {
			log.WarningLog.Printf("layout overrides rejected: %v", err)
			d.status = "overrides rejected: " + err.Error()
			return d, tea.Batch(hideStatusCmd(), d.waitOverridesCmd())
		}
		log.InfoLog.Printf("layout overrides reloaded from %s", d.appConfig.LayoutOverrides)
		d.engine = engine
		d.recompute()
		d.status = "layout overrides reloaded"
		return d, tea.Batch(hideStatusCmd(), d.waitOverridesCmd())
	case hideErrMsg:
		d.status = ""
		return d, nil
	case keyupMsg:
		d.menu.ClearKeydown()
		return d, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.KeyMsg:
		return d.handleKeyPress(msg)
	}
	return d, nil
}

func (d *dashboard) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch d.state {
	case stateCitySelect:
		if d.citySelector.HandleKeyPress(msg) {
			selected := d.citySelector.GetSelected()
			d.citySelector = nil
			d.state = stateDefault
			d.menu.SetState(ui.StateDefault)
			if selected != "" && selected != d.city.ID {
				return d, d.switchCity(selected)
			}
		}
		return d, nil
	case stateHelp:
		d.state = stateDefault
		d.menu.SetState(ui.StateDefault)
		return d, nil
	}

	bindings := keys.GlobalkeyBindings
	switch {
	case key.Matches(msg, bindings[keys.KeyQuit]):
		d.shutdown()
		return d, tea.Quit
	case key.Matches(msg, bindings[keys.KeyHelp]):
		d.state = stateHelp
		d.menu.SetState(ui.StateHelp)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyUp]):
		d.moveFocus(0, -1)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyDown]):
		d.moveFocus(0, 1)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyLeft]):
		d.moveFocus(-1, 0)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyRight]):
		d.moveFocus(1, 0)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyTab]):
		d.cycleFocus()
		return d, nil
	case key.Matches(msg, bindings[keys.KeyEnter]):
		if d.focusID != "" {
			d.expanded[d.focusID] = !d.expanded[d.focusID]
			log.InputTrace("toggle expand %s -> %v", d.focusID, d.expanded[d.focusID])
			d.recompute()
		}
		d.menu.Keydown(keys.KeyEnter)
		return d, keyupCmd()
	case key.Matches(msg, bindings[keys.KeyCity]):
		d.citySelector = overlay.NewCitySelectorOverlay(d.city.ID)
		if d.width > 0 {
			d.citySelector.SetWidth(d.width / 3)
		}
		d.state = stateCitySelect
		d.menu.SetState(ui.StateOverlay)
		return d, nil
	case key.Matches(msg, bindings[keys.KeyCityNext]):
		return d, d.switchCity(weather.NextCity(d.city.ID).ID)
	case key.Matches(msg, bindings[keys.KeyRefresh]):
		d.loading = true
		d.menu.Keydown(keys.KeyRefresh)
		return d, tea.Batch(d.fetchCmd(), keyupCmd())
	case key.Matches(msg, bindings[keys.KeyCopy]):
		return d, d.copyLayout()
	case key.Matches(msg, bindings[keys.KeyDismiss]):
		if d.focusID != "" {
			d.dismissed[d.focusID] = true
			log.InputTrace("dismiss %s", d.focusID)
			d.recompute()
		}
		return d, nil
	case key.Matches(msg, bindings[keys.KeyRestore]):
		d.dismissed = make(map[string]bool)
		d.recompute()
		return d, nil
	}
	return d, nil
}

// switchCity persists the selection and refetches.
func (d *dashboard) switchCity(cityID string) tea.Cmd {
	city, ok := weather.CityByID(cityID)
	if !ok {
		return nil
	}
	d.city = city
	d.loading = true
	d.loadingOverlay = overlay.NewLoadingOverlay("Fetching "+city.Name, &d.spinner)
	if d.width > 0 {
		d.loadingOverlay.SetWidth(d.width / 2)
	}
	if err := d.appState.SetLastCity(city.ID); err != nil {
		log.WarningLog.Printf("failed to save last city: %v", err)
	}
	return d.fetchCmd()
}

// copyLayout puts the grid-template serialization on the system clipboard.
func (d *dashboard) copyLayout() tea.Cmd {
	if d.result == nil {
		return nil
	}
	if err := clipboard.WriteAll(d.result.Grid.TemplateString()); err != nil {
		log.ErrorLog.Printf("clipboard write failed: %v", err)
		d.status = "clipboard unavailable"
	} else {
		d.status = "layout copied to clipboard"
	}
	return hideStatusCmd()
}

// cycleFocus advances focus through the placement order.
func (d *dashboard) cycleFocus() {
	if d.result == nil || len(d.result.AreaMap) == 0 {
		return
	}
	for i, id := range d.result.AreaMap {
		if id == d.focusID {
			d.focusID = d.result.AreaMap[(i+1)%len(d.result.AreaMap)]
			return
		}
	}
	d.focusID = d.result.AreaMap[0]
}

// moveFocus moves focus to the nearest widget in the given direction, using
// the grid rectangle centers.
func (d *dashboard) moveFocus(dx, dy int) {
	if d.result == nil || d.focusID == "" {
		return
	}
	rects := ui.Placements(d.result.Grid.AreaTemplate)
	cur, ok := rects[d.focusID]
	if !ok {
		return
	}
	curCX := cur.Col*2 + cur.Cols
	curCY := cur.Row*2 + cur.Rows

	best := ""
	bestDist := -1
	for id, r := range rects {
		if id == d.focusID {
			continue
		}
		cx := r.Col*2 + r.Cols
		cy := r.Row*2 + r.Rows
		if dx < 0 && cx >= curCX {
			continue
		}
		if dx > 0 && cx <= curCX {
			continue
		}
		if dy < 0 && cy >= curCY {
			continue
		}
		if dy > 0 && cy <= curCY {
			continue
		}
		dist := (cx-curCX)*(cx-curCX) + (cy-curCY)*(cy-curCY)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	if best != "" {
		d.focusID = best
	}
}

func (d *dashboard) shutdown() {
	if d.overridesWatcher != nil {
		if err := d.overridesWatcher.Close(); err != nil {
			log.WarningLog.Printf("watcher close: %v", err)
		}
	}
}

func (d *dashboard) View() string {
	start := time.Now()
	frame := d.render()
	log.GetProfiler().RecordFrame(time.Since(start))
	return frame
}

func (d *dashboard) render() string {
	if d.width <= 0 || d.height <= 0 {
		return "loading..."
	}

	switch d.state {
	case stateCitySelect:
		return lipgloss.JoinVertical(lipgloss.Left,
			overlay.PlaceCentered(d.width, d.height-1, d.citySelector.Render()),
			d.menu.String(),
		)
	case stateHelp:
		return lipgloss.JoinVertical(lipgloss.Left,
			overlay.PlaceCentered(d.width, d.height-1, d.helpView()),
			d.menu.String(),
		)
	}

	if d.result == nil || (d.loading && d.data.Snapshot == nil) {
		return overlay.PlaceCentered(d.width, d.height, d.loadingOverlay.Render())
	}

	// Two rows are reserved below the grid: status, then menu.
	gridHeight := d.height - 2
	if gridHeight < 3 {
		gridHeight = 3
	}
	metrics := ui.MetricsFor(d.result, d.width, gridHeight)
	grid := ui.RenderGrid(d.result, metrics, func(id string, w, h int) string {
		return ui.RenderWidget(id, d.data, ui.WidgetState{
			Focused:  id == d.focusID,
			Expanded: d.expanded[id],
		}, w, h)
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		grid,
		d.statusLine(),
		d.menu.String(),
	)
}

func (d *dashboard) statusLine() string {
	parts := []string{
		ui.TextStyles.Accent.Render(d.city.Name),
		ui.StatusBarStyle.Render(d.result.Breakpoint.String()),
	}
	if d.loading {
		parts = append(parts, d.spinner.View())
	}
	if n := len(d.result.HiddenWidgets); n > 0 {
		parts = append(parts, ui.KeyHintStyle.Render(fmt.Sprintf("%d hidden", n)))
	}
	if d.status != "" {
		parts = append(parts, ui.StatusBarStyle.Render(d.status))
	}
	line := strings.Join(parts, ui.KeyHintStyle.Render(" • "))
	return lipgloss.NewStyle().Width(d.width).MaxWidth(d.width).Render(line)
}

func (d *dashboard) helpView() string {
	order := []keys.KeyName{
		keys.KeyUp, keys.KeyDown, keys.KeyLeft, keys.KeyRight, keys.KeyTab,
		keys.KeyEnter, keys.KeyCity, keys.KeyCityNext, keys.KeyRefresh,
		keys.KeyCopy, keys.KeyDismiss, keys.KeyRestore, keys.KeyQuit,
	}
	var sb strings.Builder
	sb.WriteString(ui.TitleStyle.Render("wxdeck keys"))
	sb.WriteString("\n\n")
	for _, k := range order {
		h := keys.GlobalkeyBindings[k].Help()
		sb.WriteString(fmt.Sprintf("%-4s %s\n",
			ui.TextStyles.Accent.Render(h.Key),
			ui.TextStyles.Secondary.Render(h.Desc)))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Primary).
		Padding(1, 2)
	return box.Render(sb.String())
}
