package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/AndKlet/gridpath/astar"
	"github.com/AndKlet/gridpath/gridmap"
	"github.com/AndKlet/gridpath/mapfile"
	"github.com/AndKlet/gridpath/render"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// Command-line flags for sim.
var (
	simMapPath   string
	simStartRow  int
	simStartCol  int
	simGoalRow   int
	simGoalCol   int
	simEndRow    int
	simEndCol    int
	simHeuristic string
	simInterval  time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Animate re-planning against a goal that wanders to a destination",
	Long: `sim loads a CSV map and runs a full-screen animation. Every interval
the goal takes its scheduled wander step toward the end position, then a
fresh A* search runs from scratch and the new path is drawn. The goal
steps without looking at obstacles; while it sits on one the searcher
waits. Quit with q, Esc or Ctrl-C.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&simMapPath, "map", "", "Path to the CSV map file.")
	simCmd.Flags().IntVar(&simStartRow, "start-row", 0, "Searcher row.")
	simCmd.Flags().IntVar(&simStartCol, "start-col", 0, "Searcher column.")
	simCmd.Flags().IntVar(&simGoalRow, "goal-row", -1, "Initial goal row. Negative means the last row.")
	simCmd.Flags().IntVar(&simGoalCol, "goal-col", -1, "Initial goal column. Negative means the last column.")
	simCmd.Flags().IntVar(&simEndRow, "end-row", 0, "Row the goal wanders toward.")
	simCmd.Flags().IntVar(&simEndCol, "end-col", 0, "Column the goal wanders toward.")
	simCmd.Flags().StringVar(&simHeuristic, "heuristic", "manhattan", "Heuristic: manhattan or euclidean2.")
	simCmd.Flags().DurationVar(&simInterval, "interval", 300*time.Millisecond, "Time between goal ticks.")
	_ = simCmd.MarkFlagRequired("map")
	_ = simCmd.MarkFlagRequired("end-row")
	_ = simCmd.MarkFlagRequired("end-col")

	rootCmd.AddCommand(simCmd)
}

func runSim(cmd *cobra.Command, args []string) error {
	grid, err := mapfile.Load(simMapPath)
	if err != nil {
		return err
	}
	heuristic, err := parseHeuristic(simHeuristic)
	if err != nil {
		return err
	}

	start := gridmap.Pos{Row: simStartRow, Col: simStartCol}
	goal := resolveCorner(grid, simGoalRow, simGoalCol)
	end := gridmap.Pos{Row: simEndRow, Col: simEndCol}

	m, err := gridmap.New(grid, start, goal, gridmap.WithEndGoal(end))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	s := &simulation{screen: screen, m: m, heuristic: heuristic}
	if err := s.replan(); err != nil {
		return err
	}
	s.draw()

	return s.run(simInterval)
}

// simulation holds the live animation state: the map carries the goal's
// wander schedule, res the most recent search.
type simulation struct {
	screen    tcell.Screen
	m         *gridmap.GridMap
	heuristic astar.HeuristicMode
	res       *astar.Result
	blocked   bool // goal currently parked on an obstacle
}

// run drives the animation: input events and goal ticks interleave on a
// single select loop.
func (s *simulation) run(interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !s.handleInput(ev) {
				return nil
			}

		case <-ticker.C:
			s.m.AdvanceGoal()
			if err := s.replan(); err != nil {
				return err
			}
			s.draw()
		}
	}
}

// replan runs a fresh search against the goal's current position. A goal
// parked on an obstacle is a waiting state, not a failure.
func (s *simulation) replan() error {
	res, err := astar.Search(s.m, s.m.Start(), s.m.Goal(), astar.WithHeuristic(s.heuristic))
	if err != nil {
		if errors.Is(err, gridmap.ErrInvalidPosition) {
			s.res, s.blocked = nil, true
			return nil
		}
		return err
	}
	s.res, s.blocked = res, false
	return nil
}

func (s *simulation) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

// draw paints the symbol grid, the current path over it, and the status
// lines. Two screen columns per cell keeps the aspect roughly square.
func (s *simulation) draw() {
	s.screen.Clear()

	symbols := s.m.Symbols()
	var style tcell.Style
	for row, line := range symbols {
		for col, sym := range line {
			style = tcell.StyleDefault.Foreground(cellColor(sym))
			s.screen.SetContent(col*2, row, sym, nil, style)
		}
	}

	if s.res != nil && s.res.Found {
		pathStyle := tcell.StyleDefault.Foreground(cellColor(gridmap.SymbolPath))
		for _, p := range interior(s.res.Path) {
			s.screen.SetContent(p.Col*2, p.Row, gridmap.SymbolPath, nil, pathStyle)
		}
	}

	s.drawStatus(len(symbols))
	s.screen.Show()
}

func (s *simulation) drawStatus(rows int) {
	var status string
	switch {
	case s.blocked:
		status = fmt.Sprintf("tick %d  goal %s parked on an obstacle, waiting", s.m.Tick(), s.m.Goal())
	case s.res == nil || !s.res.Found:
		status = fmt.Sprintf("tick %d  goal %s unreachable", s.m.Tick(), s.m.Goal())
	default:
		status = fmt.Sprintf("tick %d  goal %s  cost %d  steps %d  expanded %d",
			s.m.Tick(), s.m.Goal(), s.res.Cost, len(s.res.Path)-1, s.res.Expanded)
	}
	if s.m.GoalReachedEnd() {
		status += "  (goal arrived)"
	}

	drawText(s.screen, 0, rows+1, tcell.StyleDefault, status)
	drawText(s.screen, 0, rows+2, tcell.StyleDefault.Foreground(tcell.ColorGray), "q or Esc quits")
}

// interior strips the endpoints off a path, matching what MarkPath keeps
// visible: start and goal markers always win over path marks.
func interior(path []gridmap.Pos) []gridmap.Pos {
	if len(path) < 3 {
		return nil
	}
	return path[1 : len(path)-1]
}

// cellColor converts a palette color to the terminal's color space, so
// the animation and PNG exports agree.
func cellColor(sym rune) tcell.Color {
	c := render.ColorFor(sym)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
