package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

// demoGridWidth is the synthetic pixel width the demo uses when converting
// key presses into gesture samples. Only the ratios matter; the TUI itself
// draws in cells.
const demoGridWidth = 1200.0

// demoCommand creates the demo command: an interactive terminal grid editor
// that drives every edit through the same gesture resolvers the replay
// pipeline uses.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		file       string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactive terminal grid editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(configFile)
			if err != nil {
				return err
			}
			cfg := demoDefaultConfig(fc)
			if file != "" {
				loaded, err := readConfigFile(file)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			p := tea.NewProgram(newDemoModel(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "grid config file (JSON), defaults to a sample layout")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (TOML) for grid geometry defaults")
	return cmd
}

// demoDefaultConfig is the sample layout shown when no file is given, using
// the grid geometry from the TOML config.
func demoDefaultConfig(fc fileConfig) grid.Config {
	// The sample layout needs 12 columns.
	return grid.Config{
		Cols:      max(fc.Grid.Cols, 12),
		RowHeight: fc.Grid.RowHeight,
		Gap:       fc.Grid.Gap,
		Layout: grid.Layout{
			{ID: "a", X: 0, Y: 0, W: 4, H: 2},
			{ID: "b", X: 4, Y: 0, W: 4, H: 2},
			{ID: "c", X: 8, Y: 0, W: 4, H: 4},
			{ID: "d", X: 0, Y: 2, W: 8, H: 2},
			{ID: "e", X: 0, Y: 4, W: 6, H: 2},
		},
	}
}

// Demo TUI styles.
var (
	demoCellEmpty    = lipgloss.NewStyle().Foreground(colorDim)
	demoCellItem     = lipgloss.NewStyle().Foreground(colorWhite)
	demoCellSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	demoStatusOn     = lipgloss.NewStyle().Foreground(colorGreen)
	demoStatusOff    = lipgloss.NewStyle().Foreground(colorDim)
)

// demoModel is the bubbletea model for the grid editor. Every move and
// resize is synthesized into a pointer gesture and run through ResolveDrag
// or ResolveResize, so the demo exercises the exact production path.
type demoModel struct {
	cfg    grid.Config
	eng    engine.Engine
	sel    int  // index into cfg.Layout of the selected item
	resize bool // arrows resize instead of move
	status string
}

func newDemoModel(cfg grid.Config) demoModel {
	return demoModel{cfg: cfg, eng: engine.New()}
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		if len(m.cfg.Layout) > 0 {
			m.sel = (m.sel + 1) % len(m.cfg.Layout)
		}
	case "shift+tab":
		if len(m.cfg.Layout) > 0 {
			m.sel = (m.sel + len(m.cfg.Layout) - 1) % len(m.cfg.Layout)
		}
	case "r":
		m.resize = !m.resize
	case "p":
		m.cfg.PreventCollision = !m.cfg.PreventCollision
	case "s":
		m.cfg.EnableSwap = !m.cfg.EnableSwap
	case "m":
		m.cfg.CompactMode = nextCompactMode(m.cfg.Mode())
	case "up", "k":
		m = m.step(0, -1)
	case "down", "j":
		m = m.step(0, 1)
	case "left", "h":
		m = m.step(-1, 0)
	case "right", "l":
		m = m.step(1, 0)
	}
	return m, nil
}

// nextCompactMode cycles vertical → horizontal → none.
func nextCompactMode(mode string) string {
	switch mode {
	case grid.CompactVertical:
		return grid.CompactHorizontal
	case grid.CompactHorizontal:
		return grid.CompactNone
	default:
		return grid.CompactVertical
	}
}

// step applies one cell of movement (or resize) to the selected item by
// synthesizing a gesture sample.
func (m demoModel) step(dx, dy int) demoModel {
	if len(m.cfg.Layout) == 0 {
		return m
	}
	it := m.cfg.Layout[m.sel]

	var res gesture.Result
	if m.resize {
		w, h := max(it.W+dx, 1), max(it.H+dy, 1)
		res = gesture.ResolveResize(m.eng, m.cfg, it.ID, m.resizeSample(it, w, h))
		m.status = fmt.Sprintf("resize %s to %dx%d", it.ID, w, h)
	} else {
		x, y := max(it.X+dx, 0), max(it.Y+dy, 0)
		res = gesture.ResolveDrag(m.eng, m.cfg, it.ID, m.dragSample(it, x, y))
		m.status = fmt.Sprintf("move %s to (%d,%d)", it.ID, x, y)
	}

	m.cfg.Layout = res.Layout
	// Replace may have reordered the slice; keep the same item selected.
	for i := range m.cfg.Layout {
		if m.cfg.Layout[i].ID == it.ID {
			m.sel = i
			break
		}
	}
	return m
}

// rowHeight resolves the pixel row height, deriving it from the grid height
// when the config uses the auto sentinel.
func (m demoModel) rowHeight() float64 {
	if m.cfg.RowHeight == grid.RowHeightAuto {
		return gesture.RowHeightForFit(m.cfg.Layout, m.cfg.GridHeight, m.cfg.Gap)
	}
	return m.cfg.RowHeight
}

// itemRect computes the item's current pixel rectangle in the demo geometry.
func (m demoModel) itemRect(it grid.Item) grid.Rect {
	return grid.Rect{
		Left:   gesture.GridXToScreenX(it.X, m.cfg.Cols, demoGridWidth, m.cfg.Gap),
		Top:    gesture.GridYToScreenY(it.Y, m.rowHeight(), m.cfg.Gap),
		Width:  gesture.GridWToScreenW(it.W, m.cfg.Cols, demoGridWidth, m.cfg.Gap),
		Height: gesture.GridHToScreenH(it.H, m.rowHeight(), m.cfg.Gap),
	}
}

// gridRect is the demo grid's pixel frame, tall enough that resize limits
// never bind on the frame.
func (m demoModel) gridRect() grid.Rect {
	rows := m.cfg.Layout.Rows() + 8
	return grid.Rect{
		Left:   0,
		Top:    0,
		Width:  demoGridWidth,
		Height: gesture.GridHToScreenH(rows, m.rowHeight(), m.cfg.Gap),
	}
}

// dragSample synthesizes one pointer-move that drops the item at cell (x, y):
// the pointer went down on the item's top-left corner and now sits on the
// target cell's top-left corner.
func (m demoModel) dragSample(it grid.Item, x, y int) gesture.Dragging {
	rect := m.itemRect(it)
	return gesture.Dragging{
		PointerDown: grid.Point{X: rect.Left, Y: rect.Top},
		Pointer: grid.Point{
			X: gesture.GridXToScreenX(x, m.cfg.Cols, demoGridWidth, m.cfg.Gap),
			Y: gesture.GridYToScreenY(y, m.rowHeight(), m.cfg.Gap),
		},
		GridRect: m.gridRect(),
		ItemRect: rect,
	}
}

// resizeSample synthesizes one pointer-move that sizes the item to w x h
// cells: the pointer went down on the item's bottom-right corner and now sits
// where that corner would be at the target size.
func (m demoModel) resizeSample(it grid.Item, w, h int) gesture.Dragging {
	rect := m.itemRect(it)
	return gesture.Dragging{
		PointerDown: grid.Point{X: rect.Left + rect.Width, Y: rect.Top + rect.Height},
		Pointer: grid.Point{
			X: rect.Left + gesture.GridWToScreenW(w, m.cfg.Cols, demoGridWidth, m.cfg.Gap),
			Y: rect.Top + gesture.GridHToScreenH(h, m.rowHeight(), m.cfg.Gap),
		},
		GridRect: m.gridRect(),
		ItemRect: rect,
	}
}

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridlock Demo"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab select  arrows move  r resize  m mode  p collisions  s swap  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	mode := "move"
	if m.resize {
		mode = "resize"
	}
	b.WriteString(StyleDim.Render("  mode: ") + StyleHighlight.Render(mode))
	b.WriteString(StyleDim.Render("  compact: ") + StyleValue.Render(m.cfg.Mode()))
	b.WriteString(StyleDim.Render("  collisions: ") + demoToggle(m.cfg.PreventCollision))
	b.WriteString(StyleDim.Render("  swap: ") + demoToggle(m.cfg.EnableSwap))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(StyleDim.Render("  " + m.status))
		b.WriteString("\n")
	}

	return b.String()
}

func demoToggle(on bool) string {
	if on {
		return demoStatusOn.Render("on")
	}
	return demoStatusOff.Render("off")
}

// renderGrid draws the layout as a cell raster, two characters per column so
// the aspect ratio is roughly square in most terminals.
func (m demoModel) renderGrid() string {
	rows := m.cfg.Layout.Rows()
	if rows < 4 {
		rows = 4
	}

	selected := ""
	if m.sel < len(m.cfg.Layout) {
		selected = m.cfg.Layout[m.sel].ID
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteString("  ")
		for x := 0; x < m.cfg.Cols; x++ {
			cell := demoCellEmpty.Render("· ")
			for _, it := range m.cfg.Layout {
				if x >= it.X && x < it.X+it.W && y >= it.Y && y < it.Y+it.H {
					label := demoCellLabel(it.ID)
					if it.ID == selected {
						cell = demoCellSelected.Render(label)
					} else {
						cell = demoCellItem.Render(label)
					}
					break
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// demoCellLabel renders an item's first rune as a two-character cell.
func demoCellLabel(id string) string {
	r := []rune(id)
	if len(r) == 0 {
		return "? "
	}
	return string(r[0]) + " "
}
