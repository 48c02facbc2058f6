package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"dungeoncrawl/pkg/engine/input"
	"dungeoncrawl/pkg/engine/pathfind"
	"dungeoncrawl/pkg/engine/terminal"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/config"
	"dungeoncrawl/pkg/game/devtools"
	"dungeoncrawl/pkg/game/generator"
	"dungeoncrawl/pkg/game/session"
)

type options struct {
	seed       string
	input      string
	moves      string
	chase      bool
	ticks      int
	configPath string
	dumpDir    string
	screenshot string
	path       string
	colour     string
	lang       string
	locales    string
	logLevel   string
	dev        bool
	saveTo     string
	resumeFrom string
	interact   bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.seed, "seed", "", "dungeon seed, as 123 or n123s (default: current time)")
	flag.StringVar(&o.input, "input", "", "seed and moves in one string, e.g. n123swwdd")
	flag.StringVar(&o.moves, "moves", "", "movement symbols to apply (w/a/s/d, k, v)")
	flag.BoolVar(&o.chase, "chase", false, "let the enemy take a turn after every symbol")
	flag.IntVar(&o.ticks, "ticks", 0, "extra enemy turns after the moves")
	flag.StringVar(&o.configPath, "config", "", "JSON config file")
	flag.StringVar(&o.dumpDir, "dump", "", "write a debug map.txt into this directory")
	flag.StringVar(&o.screenshot, "screenshot", "", "write an HTML screenshot into this directory")
	flag.StringVar(&o.path, "path", "", "print a shortest path, as x1,y1:x2,y2")
	flag.StringVar(&o.colour, "color", "auto", "colour output: auto, always or never")
	flag.StringVar(&o.lang, "lang", "en", "language for CLI messages")
	flag.StringVar(&o.locales, "locales", "locales", "directory holding gettext catalogues")
	flag.StringVar(&o.logLevel, "log-level", "", "log level (overrides the config file)")
	flag.BoolVar(&o.dev, "dev", false, "use the fixed developer test map")
	flag.StringVar(&o.saveTo, "save", "", "write a session snapshot to this JSON file")
	flag.StringVar(&o.resumeFrom, "resume", "", "resume from a session snapshot JSON file")
	flag.BoolVar(&o.interact, "interactive", false, "play from the keyboard after applying -moves")
	flag.Parse()
	return o
}

func initGettext(locales, lang string) {
	gotext.Configure(locales, lang, "default")
}

func newLogger(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)
	return logger
}

func main() {
	o := parseFlags()
	initGettext(o.locales, o.lang)

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			newLogger(logrus.InfoLevel).WithError(err).Fatal("loading config")
		}
		cfg = loaded
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		newLogger(logrus.InfoLevel).WithError(err).Fatal("invalid configuration")
	}
	logger := newLogger(cfg.Level())

	s, moves, err := buildSession(o, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("starting session")
	}

	play(s, moves, o)

	colour := useColour(o.colour)
	if o.interact {
		if err := interactive(s, o, colour); err != nil {
			logger.WithError(err).Fatal("reading keyboard")
		}
	}
	printSession(s, colour)

	if o.path != "" {
		if err := printPath(s.Map(), o.path, colour); err != nil {
			logger.WithError(err).Fatal("finding path")
		}
	}
	if o.dumpDir != "" {
		name, err := devtools.DumpToFile(s, o.dumpDir)
		if err != nil {
			logger.WithError(err).Fatal("writing map dump")
		}
		fmt.Println(gotext.Get("Map dump written to %s", name))
	}
	if o.screenshot != "" {
		name, err := devtools.SaveScreenshotHTML(s, o.screenshot)
		if err != nil {
			logger.WithError(err).Fatal("writing screenshot")
		}
		fmt.Println(gotext.Get("Screenshot written to %s", name))
	}
	if o.saveTo != "" {
		if err := saveSnapshot(s.Snapshot(), o.saveTo); err != nil {
			logger.WithError(err).Fatal("saving snapshot")
		}
	}
}

// buildSession resumes a snapshot or starts a new session from the seed flags.
// It also returns the movement symbols still to be played.
func buildSession(o options, cfg config.Config, logger logrus.FieldLogger) (*session.Session, string, error) {
	var builder session.Builder
	if o.dev {
		builder = devtools.DevMap{}
	} else {
		g, err := generator.NewRoomGenerator(cfg.Generation)
		if err != nil {
			return nil, "", err
		}
		builder = g.WithLogger(logger)
	}

	if o.resumeFrom != "" {
		snap, err := loadSnapshot(o.resumeFrom)
		if err != nil {
			return nil, "", err
		}
		s, err := session.Resume(snap, builder, cfg.Session, logger)
		return s, o.moves, err
	}

	seed := time.Now().UnixNano()
	moves := o.moves
	switch {
	case o.input != "":
		var inputMoves string
		var err error
		seed, inputMoves, err = config.ParseInput(o.input)
		if err != nil {
			return nil, "", err
		}
		moves = inputMoves + moves
	case o.seed != "":
		var err error
		seed, err = config.ParseSeed(o.seed)
		if err != nil {
			return nil, "", err
		}
	}

	s, err := session.New(seed, builder, cfg.Session, logger)
	return s, moves, err
}

// play applies moves, giving the enemy a turn after each symbol when chasing
func play(s *session.Session, moves string, o options) {
	for _, r := range moves {
		if s.Over() {
			break
		}
		s.Apply(r)
		if o.chase {
			s.EnemyTickRandom()
		}
	}
	for i := 0; i < o.ticks && !s.Over(); i++ {
		s.EnemyTickRandom()
	}
}

// interactive reads one key at a time until the game ends or the player quits.
// The enemy takes a turn after every recognised key.
func interactive(s *session.Session, o options, colour bool) error {
	if !terminal.IsTerminal(os.Stdin) {
		return errors.New("stdin is not a terminal")
	}
	keys := input.NewKeyReader(os.Stdin)
	for !s.Over() {
		printSession(s, colour)
		fmt.Println(gotext.Get("Move with %s, q to quit", "w/a/s/d"))

		restore, err := input.MakeRaw()
		if err != nil {
			return err
		}
		code, err := keys.ReadCode()
		restore()
		if errors.Is(err, input.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		act := input.MapCode(code)
		switch act {
		case input.ActionNone:
			continue
		case input.ActionQuit:
			return nil
		case input.ActionScreenshot:
			dir := o.screenshot
			if dir == "" {
				dir = "."
			}
			if name, err := devtools.SaveScreenshotHTML(s, dir); err == nil {
				s.AddMessage(gotext.Get("Screenshot written to %s", name))
			}
			continue
		case input.ActionWait:
		default:
			s.Apply(act.Symbol())
		}
		s.EnemyTickRandom()
	}
	return nil
}

func useColour(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.ColourEnabled(os.Stdout)
	}
}

func printSession(s *session.Session, colour bool) {
	m := s.Map()
	fmt.Println(gotext.Get("Seed: %d", s.Seed))
	fmt.Println(gotext.Get("Rooms: %d  Hallways: %d", len(s.Dungeon.Rooms), len(s.Dungeon.Hallways)))
	if !terminal.Fits(m.Width(), m.Height()+6) {
		fmt.Println(gotext.Get("(map is wider than the terminal)"))
	}
	fmt.Println()

	devtools.WriteMap(os.Stdout, m, devtools.SessionView(s, colour))

	fmt.Println()
	fmt.Println(gotext.Get("Lives: %d  Collectibles left: %d", s.Lives(), len(s.Remaining())))
	for _, msg := range s.Messages {
		fmt.Println("- " + msg)
	}
	switch {
	case s.Won():
		fmt.Println(gotext.Get("All collectibles found. You won!"))
	case s.Lost():
		fmt.Println(gotext.Get("Caught with no lives left. You lost."))
	}
}

// printPath answers a "x1,y1:x2,y2" query against the current map
func printPath(m *world.TileMap, query string, colour bool) error {
	src, dst, err := parsePathQuery(query)
	if err != nil {
		return err
	}
	path, ok := pathfind.FindPath(m, src, dst)
	if !ok {
		fmt.Println(gotext.Get("No path from %d,%d to %d,%d", src.X, src.Y, dst.X, dst.Y))
		return nil
	}
	fmt.Println(gotext.Get("Path of %d moves: %s", path.Moves(), path.Symbols()))
	return devtools.WriteMap(os.Stdout, m, devtools.View{Path: path, Colour: colour})
}

func parsePathQuery(q string) (world.Point, world.Point, error) {
	ends := strings.Split(q, ":")
	if len(ends) != 2 {
		return world.Point{}, world.Point{}, fmt.Errorf("path %q: want x1,y1:x2,y2", q)
	}
	src, err := parsePoint(ends[0])
	if err != nil {
		return world.Point{}, world.Point{}, fmt.Errorf("path source: %w", err)
	}
	dst, err := parsePoint(ends[1])
	if err != nil {
		return world.Point{}, world.Point{}, fmt.Errorf("path destination: %w", err)
	}
	return src, dst, nil
}

func parsePoint(s string) (world.Point, error) {
	xy := strings.Split(strings.TrimSpace(s), ",")
	if len(xy) != 2 {
		return world.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
	if err != nil {
		return world.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
	if err != nil {
		return world.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return world.Point{X: x, Y: y}, nil
}

func saveSnapshot(snap session.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", path, err)
	}
	return nil
}

func loadSnapshot(path string) (session.Snapshot, error) {
	var snap session.Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("reading snapshot %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("parsing snapshot %q: %w", path, err)
	}
	return snap, nil
}
