package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/polytopia/polyname/internal/config"
	"github.com/polytopia/polyname/internal/library"
	"github.com/polytopia/polyname/internal/name"
	"github.com/polytopia/polyname/internal/off"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [args]

Commands:
  build [regime] <seed> <op>...     fold operations into a canonical name
  info <file>                       show a geometry file's stored name
  annotate [regime] <file> <seed> <op>...
                                    derive a name and write it into the file
  index <dir> [db]                  scan a directory into the library index
  search rank|facets <n> [db]       query the library index

Regimes: abs, con32, con64 (default from polyname.yaml, else con64).
Seeds: any serialized name, e.g. point, dyad, polygon[5,irr].
Ops: pyramid prism tegum antiprism dual ditope hosotope petrial
     small great stellated
`, os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	if os.Args[1] == "help" || os.Args[1] == "-help" || os.Args[1] == "--help" {
		printUsage()
		return
	}

	cfg, err := loadConfig()
	if err == nil {
		switch os.Args[1] {
		case "build":
			err = cmdBuild(cfg, os.Args[2:])
		case "info":
			err = cmdInfo(os.Args[2:])
		case "annotate":
			err = cmdAnnotate(cfg, os.Args[2:])
		case "index":
			err = cmdIndex(cfg, os.Args[2:])
		case "search":
			err = cmdSearch(cfg, os.Args[2:])
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
		os.Exit(1)
	}
}

// splitRegime peels an optional leading regime tag off the args.
func splitRegime(cfg Config, args []string) (string, []string) {
	if len(args) > 0 {
		switch args[0] {
		case config.RegimeTagAbstract, config.RegimeTagSingle, config.RegimeTagDouble:
			return args[0], args[1:]
		}
	}
	return cfg.Regime, args
}

func cmdBuild(cfg Config, args []string) error {
	regime, ops := splitRegime(cfg, args)
	if len(ops) == 0 {
		return errors.New("build: missing seed name")
	}
	switch regime {
	case config.RegimeTagAbstract:
		return buildAndShow[name.Abs](ops)
	case config.RegimeTagSingle:
		return buildAndShow[name.Con32](ops)
	case config.RegimeTagDouble:
		return buildAndShow[name.Con64](ops)
	default:
		return fmt.Errorf("unknown regime %q", regime)
	}
}

func buildAndShow[R name.Regime](ops []string) error {
	n, err := buildName[R](ops)
	if err != nil {
		return err
	}
	showName(name.Tag[R](), name.Print(n), n)
	return nil
}

// buildName parses the seed and folds each operation into it in order.
func buildName[R name.Regime](ops []string) (name.Name[R], error) {
	n, err := name.Parse[R](ops[0])
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", ops[0], err)
	}
	for _, op := range ops[1:] {
		n, err = applyOp(n, op)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func applyOp[R name.Regime](n name.Name[R], op string) (name.Name[R], error) {
	switch op {
	case "pyramid":
		return name.MakePyramid(n), nil
	case "prism":
		return name.MakePrism(n), nil
	case "tegum":
		return name.MakeTegum(n), nil
	case "antiprism":
		return name.MakeAntiprism(n), nil
	case "petrial":
		return name.MakePetrial(n), nil
	case "small":
		return name.MakeSmall(n), nil
	case "great":
		return name.MakeGreat(n), nil
	case "stellated":
		return name.MakeStellated(n), nil
	case "dual":
		return name.MakeDual(n, name.CenterAt[R](originFor(n))), nil
	case "ditope", "hosotope":
		rank, ok := name.Rank(n)
		if !ok {
			return nil, fmt.Errorf("%s: rank of %s is not derivable", op, name.Print(n))
		}
		if op == "ditope" {
			return name.MakeDitope(n, rank+1), nil
		}
		return name.MakeHosotope(n, rank+1), nil
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// originFor is the dualizing center used by the build command: the origin
// of the space the polytope spans.
func originFor[R name.Regime](n name.Name[R]) name.Vec {
	rank, ok := name.Rank(n)
	if !ok || rank < 0 {
		rank = 0
	}
	return make(name.Vec, rank)
}

func showName[R name.Regime](regime, text string, n name.Name[R]) {
	fmt.Printf("%s %s\n", cyan("name:"), bold(text))
	fmt.Printf("%s %s\n", cyan("regime:"), regime)
	if rank, ok := name.Rank(n); ok {
		fmt.Printf("%s %d\n", cyan("rank:"), rank)
	} else {
		fmt.Printf("%s unknown\n", cyan("rank:"))
	}
	if facets, ok := name.FacetCount(n); ok {
		fmt.Printf("%s %d\n", cyan("facets:"), facets)
	} else {
		fmt.Printf("%s unknown\n", cyan("facets:"))
	}
}

func cmdInfo(args []string) error {
	if len(args) != 1 {
		return errors.New("info: expected exactly one file")
	}
	path := args[0]

	// The header carries its own regime tag, so try each in turn.
	if n, _, err := off.ReadName[name.Abs](path); err != nil {
		return err
	} else if n != nil {
		showName(config.RegimeTagAbstract, name.Print(n), n)
		return nil
	}
	if n, _, err := off.ReadName[name.Con32](path); err != nil {
		return err
	} else if n != nil {
		showName(config.RegimeTagSingle, name.Print(n), n)
		return nil
	}
	n, label, err := off.ReadName[name.Con64](path)
	if err != nil {
		return err
	}
	if n != nil {
		showName(config.RegimeTagDouble, name.Print(n), n)
		return nil
	}
	fmt.Printf("%s %s\n", cyan("label:"), bold(label))
	fmt.Printf("%s no stored name\n", cyan("name:"))
	return nil
}

func cmdAnnotate(cfg Config, args []string) error {
	regime, rest := splitRegime(cfg, args)
	if len(rest) < 2 {
		return errors.New("annotate: expected a file, a seed and operations")
	}
	path, ops := rest[0], rest[1:]
	switch regime {
	case config.RegimeTagAbstract:
		return annotate[name.Abs](path, ops)
	case config.RegimeTagSingle:
		return annotate[name.Con32](path, ops)
	case config.RegimeTagDouble:
		return annotate[name.Con64](path, ops)
	default:
		return fmt.Errorf("unknown regime %q", regime)
	}
}

func annotate[R name.Regime](path string, ops []string) error {
	n, err := buildName[R](ops)
	if err != nil {
		return err
	}
	if err := off.WriteName(path, n); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", green("wrote:"), off.EncodeHeader(n))
	return nil
}

func cmdIndex(cfg Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("index: expected a directory and an optional database path")
	}
	dir, db := args[0], cfg.Database
	if len(args) == 2 {
		db = args[1]
	}

	ctx := context.Background()
	store, err := library.Open(ctx, db)
	if err != nil {
		return err
	}
	defer store.Close()

	var count int
	switch cfg.Regime {
	case config.RegimeTagAbstract:
		count, err = library.Scan[name.Abs](ctx, store, dir)
	case config.RegimeTagSingle:
		count, err = library.Scan[name.Con32](ctx, store, dir)
	default:
		count, err = library.Scan[name.Con64](ctx, store, dir)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s %d files into %s\n", green("indexed:"), count, db)
	return nil
}

func cmdSearch(cfg Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("search: expected 'rank <n>' or 'facets <n>' and an optional database path")
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("search: bad number %q", args[1])
	}
	db := cfg.Database
	if len(args) == 3 {
		db = args[2]
	}

	ctx := context.Background()
	store, err := library.Open(ctx, db)
	if err != nil {
		return err
	}
	defer store.Close()

	var entries []library.Entry
	switch args[0] {
	case "rank":
		entries, err = store.ByRank(ctx, value)
	case "facets":
		entries, err = store.ByFacetCount(ctx, value)
	default:
		return fmt.Errorf("search: unknown field %q", args[0])
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, e := range entries {
		if e.Name != "" {
			fmt.Printf("%s  %s  %s\n", bold(e.Label), e.Name, e.Path)
		} else {
			fmt.Printf("%s  %s\n", bold(e.Label), e.Path)
		}
	}
	return nil
}
