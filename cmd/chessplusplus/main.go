// Command chessplusplus is a thin, non-interactive line-mode collaborator
// driving the engine: it reproduces the original program's top-level
// command loop (game/benchmark/help/exit) and its human/bot game-setup
// menu shape, at collaborator depth only — no interactive TUI, no
// OpenMP-cancellation startup dance (the original's main() re-execs itself
// under an OpenMP runtime purely to get a cancellable parallel region,
// which this port's single goroutine + context.Context cancellation model
// has no use for).
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chessplusplus/corechess/internal/cache"
	"github.com/chessplusplus/corechess/internal/config"
	"github.com/chessplusplus/corechess/internal/engine"
	"github.com/chessplusplus/corechess/internal/search"
)

func main() {
	cfg := config.Load()
	engine.DebugAssertions = cfg.DebugAssertions

	fmt.Println("chessplusplus")
	fmt.Println(`Commands: "game", "benchmark", "help", "exit"`)

	in := bufio.NewScanner(os.Stdin)
	c := cache.New(context.Background(), cfg.CacheMB)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		switch strings.TrimSpace(in.Text()) {
		case "exit":
			return
		case "help":
			printHelp()
		case "benchmark":
			runBenchmark()
		case "game":
			runGame(in, cfg, c)
		default:
			fmt.Println("unrecognized command; try \"help\"")
		}
	}
}

func printHelp() {
	fmt.Println(`game       play a game against the engine (or watch engine vs engine)
benchmark  run the perft node-count suite against known positions
help       show this text
exit       quit`)
}

// benchmarkPositions mirrors the four standard perft fixtures used to
// validate the move generator: start position, Kiwipete, and positions 3
// and 4 from the Chess Programming Wiki's perft results page.
var benchmarkPositions = []struct {
	name  string
	fen   string
	depth int
	want  uint64
}{
	{"startpos", engine.StartingFEN, 5, 4865609},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
}

func runBenchmark() {
	for _, bp := range benchmarkPositions {
		pos, err := engine.FromFEN(bp.fen)
		if err != nil {
			fmt.Printf("%-10s FEN error: %v\n", bp.name, err)
			continue
		}
		start := time.Now()
		got := engine.Perft(pos, bp.depth)
		elapsed := time.Since(start)
		status := "ok"
		if got != bp.want {
			status = "MISMATCH"
		}
		fmt.Printf("%-10s depth=%d nodes=%d want=%d [%s] (%s)\n", bp.name, bp.depth, got, bp.want, status, elapsed)
	}
}

// runGame drives one game loop: a human-vs-human, human-vs-engine or
// engine-vs-engine session, reproducing the original's setupGame/
// configureAI prompt shape.
func runGame(in *bufio.Scanner, cfg config.Config, c *cache.Cache) {
	fmt.Println("1) human vs human  2) human vs engine  3) engine vs engine  (\"cancel\" to abort)")
	fmt.Print("> ")
	if !in.Scan() {
		return
	}
	mode := strings.TrimSpace(in.Text())
	if mode == "cancel" {
		return
	}

	pos := engine.NewPosition()
	s := search.NewSearcher(c, cfg.MaxSearchDepth)

	humanWhite, humanBlack := true, true
	switch mode {
	case "2":
		fmt.Print("engine plays which color? (w/b) > ")
		if in.Scan() && strings.TrimSpace(in.Text()) == "w" {
			humanWhite = false
		} else {
			humanBlack = false
		}
	case "3":
		humanWhite, humanBlack = false, false
	}

	for {
		state := pos.GameState()
		if state != engine.Active {
			fmt.Println(pos.ToFEN())
			fmt.Println(describeTerminal(state))
			return
		}

		humanTurn := (pos.SideToMove == engine.White && humanWhite) || (pos.SideToMove == engine.Black && humanBlack)
		if humanTurn {
			fmt.Printf("%s to move> ", pos.SideToMove)
			if !in.Scan() {
				return
			}
			from, to, err := engine.ParseCoordinateMove(strings.TrimSpace(in.Text()))
			if err != nil {
				fmt.Println(err)
				continue
			}
			if _, err := pos.Make(from, to, engine.Queen); err != nil {
				fmt.Println(err)
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.MoveTimeLimit)
		result := s.SelectMove(ctx, pos)
		cancel()
		mv := result.Move
		pos.MakeMove(&mv)
		fmt.Printf("engine plays %s (score %d, depth %d)\n", mv, result.Score, result.Depth)
	}
}

func describeTerminal(state engine.GameState) string {
	switch state {
	case engine.WhiteMated:
		return "checkmate: black wins"
	case engine.BlackMated:
		return "checkmate: white wins"
	default:
		return "draw"
	}
}
