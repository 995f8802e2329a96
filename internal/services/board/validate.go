package board

import (
	"slices"

	"github.com/mcoot/tilegame-go/internal/model"
)

// validate runs the legality checks in order, stopping at the first failure
func validate(board *model.Board, move model.Move) error {
	if move.IsPass() {
		return nil
	}
	if move.RepeatsTile() {
		return model.ErrRepeatTile
	}
	if move.InvolvesSwap() {
		if !move.IsPureSwap() {
			return model.ErrSwap
		}
		return nil
	}
	if move.RepeatsCell() {
		return model.ErrRepeatCell
	}

	grid := board.Topology()
	cells := move.Cells()
	for _, c := range cells {
		if !grid.IsValidCell(c) {
			return model.ErrInvalidCell
		}
	}
	for _, c := range cells {
		if !board.IsEmpty(c) {
			return model.ErrEmpty
		}
	}

	var lines []model.Direction
	if len(cells) > 1 {
		if lines = sharedLines(grid, cells); len(lines) == 0 {
			return model.ErrRowColumn
		}
	}

	if err := connectsToStart(board, cells); err != nil {
		return err
	}

	// Gaps and compatibility are judged with the move in place
	scratch := board.Clone()
	for _, p := range move.Placements() {
		scratch.PlayOnCell(p.Cell, p.Tile)
	}

	if len(cells) > 1 && !slices.ContainsFunc(lines, func(line model.Direction) bool {
		return hasNoGaps(scratch, cells, line)
	}) {
		return model.ErrGap
	}
	// A play touching an isolated group would leave holes between it and
	// the rest of the board
	if !isConnected(scratch) {
		return model.ErrGap
	}

	return checkCompatibility(scratch, cells)
}

// sharedLines returns the scoring directions along which every cell lies on
// one line. On a wrapped board the same cells can share more than one.
func sharedLines(grid model.GridTopology, cells []model.Cell) []model.Direction {
	var lines []model.Direction
	for _, dir := range grid.ScoringDirections() {
		group := grid.Group(cells[0], dir)
		sameLine := true
		for _, c := range cells[1:] {
			if grid.Group(c, dir) != group {
				sameLine = false
				break
			}
		}
		if sameLine {
			lines = append(lines, dir)
		}
	}
	return lines
}

// connectsToStart flood-fills through occupied and played cells and succeeds
// once a played cell is reached. An empty board is entered from the start
// cell; otherwise from the tiles already on it, which are themselves joined
// to the start cell.
func connectsToStart(board *model.Board, cells []model.Cell) error {
	played := make(map[model.Cell]bool, len(cells))
	for _, c := range cells {
		played[c] = true
	}

	var seeds []model.Cell
	failure := model.ErrNeighbor
	if board.HasTiles() {
		seeds = board.Cells()
	} else {
		failure = model.ErrStart
		if played[model.StartCell] {
			seeds = []model.Cell{model.StartCell}
		}
	}

	reached := floodFill(board.Topology(), seeds, func(c model.Cell) bool {
		return played[c] || !board.IsEmpty(c)
	}, func(c model.Cell) bool {
		return played[c]
	})
	if reached {
		return nil
	}
	return failure
}

// isConnected returns true if every tile on the board can be reached from
// the start cell
func isConnected(board *model.Board) bool {
	if !board.HasTiles() {
		return true
	}
	if board.IsEmpty(model.StartCell) {
		return false
	}
	seen := 0
	floodFill(board.Topology(), []model.Cell{model.StartCell}, func(c model.Cell) bool {
		return !board.IsEmpty(c)
	}, func(model.Cell) bool {
		seen++
		return false
	})
	return seen == board.Count()
}

// floodFill walks from the seeds through cells accepted by filled, calling
// visit on each. It stops early and returns true once visit returns true.
func floodFill(grid model.GridTopology, seeds []model.Cell, filled, visit func(model.Cell) bool) bool {
	seen := make(map[model.Cell]bool, len(seeds))
	stack := make([]model.Cell, 0, len(seeds))
	for _, c := range seeds {
		if !seen[c] {
			seen[c] = true
			stack = append(stack, c)
		}
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visit(c) {
			return true
		}
		for _, n := range grid.Neighbors(c) {
			if !seen[n] && filled(n) {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// hasNoGaps checks that the run through the first played cell along the
// move's line contains every played cell
func hasNoGaps(scratch *model.Board, cells []model.Cell, line model.Direction) bool {
	run := make(map[model.Cell]bool)
	for _, c := range scratch.RunCells(cells[0], line) {
		run[c] = true
	}
	for _, c := range cells {
		if !run[c] {
			return false
		}
	}
	return true
}

// checkCompatibility checks every run through a played cell, once per run.
// A wrapped line can hold two separate runs, so runs are told apart by the
// cells they cover rather than by line.
func checkCompatibility(scratch *model.Board, cells []model.Cell) error {
	for _, dir := range scratch.Topology().ScoringDirections() {
		checked := make(map[model.Cell]bool)
		for _, c := range cells {
			if checked[c] {
				continue
			}
			run := scratch.RunCells(c, dir)
			for _, rc := range run {
				checked[rc] = true
			}
			if !runIsCompatible(scratch, run) {
				return compatReason(dir)
			}
		}
	}
	return nil
}

// runIsCompatible requires every pair of tiles in the run to share exactly
// one attribute, and that attribute to be the same for the whole run. This
// is stricter than comparing neighbors only: 0-0 0-1 1-1 passes that check
// but is refused here, which lets a scored run name one shared attribute.
func runIsCompatible(board *model.Board, run []model.Cell) bool {
	if len(run) < 2 {
		return true
	}
	tiles := make([]model.Tile, len(run))
	for i, c := range run {
		tiles[i], _ = board.Get(c)
	}

	common, ok := tiles[0].Combo.CommonAttribute(tiles[1].Combo)
	if !ok {
		return false
	}
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			attr, ok := tiles[i].Combo.CommonAttribute(tiles[j].Combo)
			if !ok || attr != common {
				return false
			}
		}
	}
	return true
}

func compatReason(dir model.Direction) error {
	switch dir {
	case model.North:
		return model.ErrColumnCompat
	case model.East:
		return model.ErrRowCompat
	default:
		return model.ErrDiagCompat
	}
}
