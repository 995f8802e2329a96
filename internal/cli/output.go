package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/tilegame-go/internal/api/response"
	"github.com/mcoot/tilegame-go/internal/config"
	"github.com/mcoot/tilegame-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple status message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(MessageResult{Message: msg})
	} else {
		o.printf("%s\n", msg)
	}
}

// MessageResult is the JSON shape of a status message
type MessageResult struct {
	Message string `json:"message"`
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.Board:
		o.printBoard(v)
	case response.Turn:
		o.printTurn(v)
	case response.Check:
		o.printCheck(v)
	case RulesInfo:
		o.printRules(v)
	case HealthResult:
		if v.Server != "" {
			o.printf("Server: %s\n", v.Server)
		}
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult is the health endpoint's reply, tagged with the server asked
type HealthResult struct {
	Status string `json:"status"`
	Server string `json:"server,omitempty"`
}

// RulesInfo summarises a rules file
type RulesInfo struct {
	Source            string   `json:"source"`
	Path              string   `json:"path,omitempty"`
	Shape             string   `json:"shape"`
	Wrap              bool     `json:"wrap"`
	Height            int      `json:"height"`
	Width             int      `json:"width"`
	ScoringDirections []string `json:"scoring_directions"`
	MaxValues         []int    `json:"max_values"`
	Combos            int      `json:"combos"`
	StockSize         int      `json:"stock_size"`
	HandSize          int      `json:"hand_size"`
	Clones            int      `json:"clones"`
	BonusPercent      int      `json:"bonus_percent"`
}

// RulesInfoFromLoaded describes a loaded rules file
func RulesInfoFromLoaded(l *config.Loaded) RulesInfo {
	c := l.Config
	grid := c.Rules.Grid
	return RulesInfo{
		Source:            string(l.Source),
		Path:              l.Path,
		Shape:             string(grid.Shape),
		Wrap:              grid.Wrap,
		Height:            grid.Height,
		Width:             grid.Width,
		ScoringDirections: lo.Map(grid.ScoringDirections(), func(d model.Direction, _ int) string { return d.String() }),
		MaxValues:         c.Rules.Tiles.MaxValues,
		Combos:            c.Rules.Tiles.ComboCount(),
		StockSize:         c.StockSize(),
		HandSize:          c.HandSize,
		Clones:            c.Clones,
		BonusPercent:      c.BonusPercent,
	}
}

func extent(n int) string {
	if n == model.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", n)
}

func (o *Output) printRules(r RulesInfo) {
	if r.Path != "" {
		o.printf("Rules: %s (%s)\n", r.Path, r.Source)
	} else {
		o.printf("Rules: %s\n", r.Source)
	}
	o.printf("Shape: %s\n", r.Shape)
	o.printf("Height: %s\n", extent(r.Height))
	o.printf("Width: %s\n", extent(r.Width))
	o.printf("Wrap: %t\n", r.Wrap)
	o.printf("Scoring directions: %s\n", strings.Join(r.ScoringDirections, ", "))
	o.printf("Attributes: %d (max values %v)\n", len(r.MaxValues), r.MaxValues)
	o.printf("Distinct tiles: %d\n", r.Combos)
	o.printf("Stock: %d tiles (%d clones)\n", r.StockSize, r.Clones)
	o.printf("Hand size: %d\n", r.HandSize)
	if r.BonusPercent > 0 {
		o.printf("Bonus tiles: %d%%\n", r.BonusPercent)
	}
}

func (o *Output) printGame(g response.Game) {
	o.printf("Game: %s\n", g.ID)
	o.printf("State: %s\n", g.State)
	o.printf("Turn: %d\n", g.Turn)
	o.printf("Shape: %s\n", g.Rules.Grid.Shape)
	o.printf("Stock: %d tiles\n", g.StockCount)
	if g.CurrentPlayer != "" {
		o.printf("To move: %s\n", g.CurrentPlayer)
	}

	o.printf("\nPlayers:\n")
	for _, p := range g.Players {
		hand := lo.Map(g.Hands[p], func(t model.Tile, _ int) string { return t.String() })
		o.printf("  %s: %d points  hand: %s\n", p, g.Scores[p], strings.Join(hand, " "))
	}

	if g.Winner != nil {
		o.printf("\nWinner: %s\n", *g.Winner)
	} else if g.State == string(model.GameStateComplete) {
		o.printf("\nDraw\n")
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	for _, id := range l.Games {
		o.printf("%s\n", id)
	}
}

// printBoard draws the occupied area with north at the top. Cells that do
// not exist on the grid are left blank and empty cells are dots.
func (o *Output) printBoard(b response.Board) {
	if len(b.Tiles) == 0 {
		o.printf("Empty board (%s)\n", b.Rules.Grid.Shape)
		return
	}

	labels := make(map[model.Cell]string, len(b.Tiles))
	width := 1
	for _, p := range b.Tiles {
		label := p.Tile.Combo.String()
		if p.Tile.Bonus {
			label += "*"
		}
		labels[p.Cell] = label
		width = max(width, len(label))
	}

	e := b.Extremes
	grid := b.Rules.Grid
	o.printf("%5s", "")
	for col := e.West; col <= e.East; col++ {
		o.printf(" %*d", width, col)
	}
	o.printf("\n")
	for row := e.North; row >= e.South; row-- {
		o.printf("%4d ", row)
		for col := e.West; col <= e.East; col++ {
			c := model.NewCell(row, col)
			switch label, ok := labels[c]; {
			case ok:
				o.printf(" %*s", width, label)
			case grid.IsValidCell(c):
				o.printf(" %*s", width, ".")
			default:
				o.printf(" %*s", width, "")
			}
		}
		o.printf("\n")
	}
}

func (o *Output) printTurn(t response.Turn) {
	if t.Score != nil {
		o.printf("Scored %d\n", t.Score.Total)
		for _, l := range t.Score.Lines {
			complete := ""
			if l.Complete {
				complete = " (complete)"
			}
			o.printf("  %s %s-%s: %d%s\n", l.Direction, l.First, l.Last, l.Score, complete)
		}
	}
	if len(t.Drawn) > 0 {
		drawn := lo.Map(t.Drawn, func(tile model.Tile, _ int) string { return tile.String() })
		o.printf("Drew: %s\n", strings.Join(drawn, " "))
	}
	o.printf("\n")
	o.printGame(t.Game)
}

func (o *Output) printCheck(c response.Check) {
	if c.Legal {
		o.printf("Legal\n")
		return
	}
	o.printf("Illegal: %s (%s)\n", c.Message, c.Reason)
}
