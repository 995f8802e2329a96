package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/tilegame-go/internal/api/request"
	"github.com/mcoot/tilegame-go/internal/api/response"
	"github.com/mcoot/tilegame-go/internal/config"
	"github.com/mcoot/tilegame-go/internal/model"
	"github.com/mcoot/tilegame-go/internal/services/game"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameBoardCmd())
	cmd.AddCommand(newGameCheckCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameSwapCmd())
	cmd.AddCommand(newGamePassCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "create <player>...",
		Short: "Create a game for the given players, in turn order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{}
			for _, p := range args {
				req.Players = append(req.Players, model.PlayerID(p))
			}

			if rulesPath != "" {
				loaded, err := config.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				req.Config = &loaded.Config
			}

			var result response.Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rules file (default: the server's rules)")
	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Get game state, hands and scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Get(gamePath(args[0], ""), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game and its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath(args[0], "")); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Game " + args[0] + " deleted")
			return nil
		},
	}
}

func newGameBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board <game-id>",
		Short: "Show the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Board
			if err := client.Get(gamePath(args[0], "/board"), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <game-id> <tile@row,col>...",
		Short: "Check whether a play is legal without making it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := playRequest(args[1:])
			if err != nil {
				return err
			}

			var result response.Check
			if err := client.Post(gamePath(args[0], "/check"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <game-id> <tile@row,col>...",
		Short: "Play tiles from your hand onto the board",
		Long: `Play tiles from your hand onto the board.

Each play is a tile ID and a cell, e.g. "play GAMEID 14@0,0 22@0,1".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := playRequest(args[1:])
			if err != nil {
				return err
			}

			var result response.Turn
			if err := client.Post(gamePath(args[0], "/play"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <game-id> <tile>...",
		Short: "Swap tiles from your hand with the stock bag",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			req := request.SwapRequest{PlayerID: model.PlayerID(player)}
			for _, arg := range args[1:] {
				id, err := parseTileID(arg)
				if err != nil {
					return err
				}
				req.TileIDs = append(req.TileIDs, id)
			}

			var result response.Turn
			if err := client.Post(gamePath(args[0], "/swap"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <game-id>",
		Short: "Pass your turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := cfg.RequirePlayer()
			if err != nil {
				return err
			}

			var result response.Turn
			req := request.PassRequest{PlayerID: model.PlayerID(player)}
			if err := client.Post(gamePath(args[0], "/pass"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func gamePath(id, suffix string) string {
	return fmt.Sprintf("/api/v1/games/%s%s", id, suffix)
}

func playRequest(args []string) (request.PlayRequest, error) {
	player, err := cfg.RequirePlayer()
	if err != nil {
		return request.PlayRequest{}, err
	}

	req := request.PlayRequest{PlayerID: model.PlayerID(player)}
	for _, arg := range args {
		p, err := parsePlay(arg)
		if err != nil {
			return request.PlayRequest{}, err
		}
		req.Plays = append(req.Plays, p)
	}
	return req, nil
}

// parsePlay reads "tile@row,col", e.g. "14@-1,2"
func parsePlay(s string) (game.Play, error) {
	tilePart, cellPart, ok := strings.Cut(s, "@")
	if !ok {
		return game.Play{}, fmt.Errorf("invalid play %q: want tile@row,col", s)
	}
	id, err := parseTileID(tilePart)
	if err != nil {
		return game.Play{}, err
	}

	rowPart, colPart, ok := strings.Cut(cellPart, ",")
	if !ok {
		return game.Play{}, fmt.Errorf("invalid cell %q: want row,col", cellPart)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil {
		return game.Play{}, fmt.Errorf("invalid row %q: %w", rowPart, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil {
		return game.Play{}, fmt.Errorf("invalid column %q: %w", colPart, err)
	}

	return game.Play{TileID: id, Cell: model.NewCell(row, col)}, nil
}

func parseTileID(s string) (model.TileID, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid tile ID %q", s)
	}
	return model.TileID(id), nil
}
