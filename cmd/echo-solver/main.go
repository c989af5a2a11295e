package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
	"github.com/behrlich/echo-solver/pkg/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "estimate":
		err = runEstimate(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "echo-solver: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: echo-solver <train|estimate|inspect> [flags]\n")
}

// defaultBattlefields is the sequence used whenever -battlefields isn't
// given: Mountain, Glade and Urban plus the neutral Plains (Night is not
// included), a reasonable default match setup.
var defaultBattlefields = [4]game.Battlefield{game.Mountain, game.Glade, game.Urban, game.Plains}

func parseBattlefields(s string) ([4]game.Battlefield, error) {
	if s == "" {
		return defaultBattlefields, nil
	}
	names := strings.Split(s, ",")
	if len(names) != 4 {
		return [4]game.Battlefield{}, fmt.Errorf("expected 4 comma-separated battlefields, got %d", len(names))
	}
	var out [4]game.Battlefield
	for i, name := range names {
		bf, ok := parseBattlefieldName(strings.TrimSpace(name))
		if !ok {
			return [4]game.Battlefield{}, fmt.Errorf("unknown battlefield %q", name)
		}
		out[i] = bf
	}
	return out, nil
}

func parseBattlefieldName(name string) (game.Battlefield, bool) {
	candidates := []game.Battlefield{game.Mountain, game.Glade, game.Urban, game.Night, game.LastStrand, game.Plains}
	for _, bf := range candidates {
		if strings.EqualFold(bf.String(), name) {
			return bf, true
		}
	}
	return 0, false
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	iterations := fs.Int("iterations", 10000, "Number of CFR iterations to run")
	parallel := fs.Bool("parallel", false, "Run iterations across multiple workers (TrainParallel)")
	battlefields := fs.String("battlefields", "", "Comma-separated battlefield sequence (default: Mountain,Glade,Urban,Plains)")
	turns := fs.Int("turns", solver.UnlimitedTurns, "Rounds to explore before truncating into unexplored leaves (-1 for the whole match)")
	saveFile := fs.String("save", "", "Save the trained tree to a JSON file")
	quiet := fs.Bool("quiet", false, "Suppress the progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bfSeq, err := parseBattlefields(*battlefields)
	if err != nil {
		return err
	}
	state := game.NewKnownState(bfSeq)

	root := solver.Generator{State: state, Turns: *turns}.Generate()
	cfr := solver.NewCFR(root, state)

	if *parallel {
		var bar *progressbar.ProgressBar
		if !*quiet {
			bar = progressbar.Default(int64(*iterations))
		}
		_, err := cfr.TrainParallel(context.Background(), *iterations, func(completed int) {
			if bar != nil {
				bar.Add(completed)
			}
		})
		if err != nil {
			return fmt.Errorf("training: %w", err)
		}
	} else {
		cfr.Train(*iterations)
	}

	fmt.Printf("Trained %d iterations over %s\n", *iterations, solver.EstimateTree(state, *turns))

	if *saveFile != "" {
		if err := solver.SaveToFile(*saveFile, state, *turns, cfr.Root()); err != nil {
			return fmt.Errorf("saving tree: %w", err)
		}
		fmt.Printf("Saved trained tree to %s\n", *saveFile)
	}
	return nil
}

func runEstimate(args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	battlefields := fs.String("battlefields", "", "Comma-separated battlefield sequence (default: Mountain,Glade,Urban,Plains)")
	turns := fs.Int("turns", solver.UnlimitedTurns, "Rounds to estimate before truncating into unexplored leaves (-1 for the whole match)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bfSeq, err := parseBattlefields(*battlefields)
	if err != nil {
		return err
	}
	state := game.NewKnownState(bfSeq)

	stats := solver.EstimateTree(state, *turns)
	fmt.Println(stats.String())
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	loadFile := fs.String("load", "", "Load a trained tree from a JSON file (required)")
	playerFlag := fs.Int("player", 0, "Which player's root strategy to print (0=Me, 1=You)")
	hiddenFlag := fs.Int("hidden", 0, "Hidden-state index to print the strategy for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *loadFile == "" {
		return fmt.Errorf("-load is required")
	}

	state, root, err := solver.LoadFromFile(*loadFile)
	if err != nil {
		return fmt.Errorf("loading tree: %w", err)
	}

	player := game.Player(*playerFlag)
	node := root.Matrices.Node(player, indexing.HiddenIndex(*hiddenFlag))

	fmt.Printf("Loaded tree for state with score %d\n", state.Score)
	fmt.Printf("Root phase: %s\n", phase.NewMainPhase().Tag())
	if node == nil {
		fmt.Printf("Player %s at hidden index %d has no real decision here (trivial: always plays choice 0)\n", player, *hiddenFlag)
		return nil
	}

	avg := node.AverageStrategy()
	fmt.Printf("Average strategy for %s at hidden index %d:\n", player, *hiddenFlag)
	for i, p := range avg {
		fmt.Printf("  choice %d: %.4f\n", i, p)
	}
	return nil
}
