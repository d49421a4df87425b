package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"dicechess/internal/board"
	appcfg "dicechess/internal/config"
	"dicechess/internal/dicechess"
	"dicechess/internal/msgcat"
	"dicechess/internal/obslog"
	"dicechess/internal/render"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer obslog.Sync()

	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	game, err := dicechess.NewGame(dicechess.Config{
		FEN:    cfg.StartFEN,
		Seed:   cfg.Seed,
		Logger: obslog.L(),
	})
	if err != nil {
		log.Fatalf("game init error: %v", err)
	}

	if err := run(game, catalog, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("game loop error: %v", err)
	}
}

// run plays rolls until a king is captured or the input closes. Each roll
// either offers a numbered move menu or passes the turn when no piece
// matches the dice.
func run(game *dicechess.Game, catalog *msgcat.Catalog, cfg *appcfg.AppConfig, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	console := &console{catalog: catalog, out: out}

	for {
		game.RollDice()
		console.say("game.roll", map[string]any{"Dice": game.Dice().String()})

		moves, err := game.LegalMoves()
		if err != nil {
			return err
		}
		for len(moves) > 0 {
			console.say("game.remaining", map[string]any{"Dice": game.Dice().String()})
			fmt.Fprintln(out, game)
			console.say("game.moves_header", nil)
			for i, m := range moves {
				console.say("game.move_item", map[string]any{"Index": i + 1, "SAN": game.SAN(m)})
			}

			choice := 0
			for choice < 1 || choice > len(moves) {
				console.say("game.prompt", map[string]any{"Count": len(moves)})
				if !scanner.Scan() {
					return scanner.Err()
				}
				n, convErr := strconv.Atoi(strings.TrimSpace(scanner.Text()))
				if convErr != nil {
					continue
				}
				choice = n
			}

			move := moves[choice-1]
			gameOver := game.IsGameEnding(move)
			game.Apply(move, true)
			if cfg.SnapshotEveryMove {
				saveMoveSnapshot(game, move, cfg.SnapshotDir)
			}
			if gameOver {
				fmt.Fprintln(out, game)
				console.say("game.win", map[string]any{"Winner": game.Turn().String()})
				logGameOver(game)
				saveFinalSnapshot(game, move, cfg.SnapshotDir, console)
				return nil
			}
			moves, err = game.LegalMoves()
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(out, game)
		console.say("game.pass", nil)
		game.EndTurn()
	}
}

// console renders catalog messages to the player. A template failure is
// logged and the raw key printed so the game stays playable under a broken
// override file.
type console struct {
	catalog *msgcat.Catalog
	out     io.Writer
}

func (c *console) say(key string, data map[string]any) {
	text, err := c.catalog.Render(key, data)
	if err != nil {
		obslog.L().Warn("message_render_failed", zap.String("key", key), zap.Error(err))
		text = key
	}
	fmt.Fprintln(c.out, text)
}

func logGameOver(game *dicechess.Game) {
	history := game.History()
	sans := make([]string, len(history))
	for i, rec := range history {
		sans[i] = rec.SAN
	}
	obslog.L().Info("game_over",
		zap.String("game_id", game.ID()),
		zap.String("winner", game.Turn().String()),
		zap.Int("moves", len(history)),
		zap.Strings("san", sans),
	)
}

func renderBoardPNG(game *dicechess.Game, last board.Move, caption string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return render.NewRenderer().RenderPNG(ctx, game.Position(), render.Options{
		Highlight: &render.MoveHighlight{From: last.From, To: last.To},
		Caption:   caption,
	})
}

func writeSnapshot(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func saveFinalSnapshot(game *dicechess.Game, last board.Move, dir string, console *console) {
	if dir == "" {
		return
	}
	data, err := renderBoardPNG(game, last, game.Turn().String()+" wins")
	if err != nil {
		obslog.L().Warn("snapshot_render_failed", zap.String("game_id", game.ID()), zap.Error(err))
		return
	}
	path, err := writeSnapshot(dir, game.ID()+".png", data)
	if err != nil {
		obslog.L().Warn("snapshot_write_failed", zap.String("dir", dir), zap.Error(err))
		return
	}
	console.say("game.snapshot", map[string]any{"Path": path})
}

// saveMoveSnapshot writes a numbered frame after an applied move; the caption
// shows the dice still to spend. Failures are logged, never surfaced to the
// player.
func saveMoveSnapshot(game *dicechess.Game, last board.Move, dir string) {
	if dir == "" {
		return
	}
	data, err := renderBoardPNG(game, last, game.Dice().String())
	if err != nil {
		obslog.L().Warn("snapshot_render_failed", zap.String("game_id", game.ID()), zap.Error(err))
		return
	}
	name := fmt.Sprintf("%s-%03d.png", game.ID(), len(game.History()))
	if _, err := writeSnapshot(dir, name, data); err != nil {
		obslog.L().Warn("snapshot_write_failed", zap.String("dir", dir), zap.Error(err))
	}
}
