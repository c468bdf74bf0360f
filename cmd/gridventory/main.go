// Command gridventory replays a scripted sequence of pointer frames against an
// inventory grid and prints the grid after each frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gravitas-games/gridventory/internal/config"
	"github.com/gravitas-games/gridventory/internal/debugdraw"
	"github.com/gravitas-games/gridventory/internal/harness"
	"github.com/gravitas-games/gridventory/internal/logging"
	"github.com/gravitas-games/gridventory/pkg/geom"
	"github.com/gravitas-games/gridventory/pkg/gridventory"
	"github.com/gravitas-games/gridventory/pkg/models"
)

var (
	configPath = flag.String("config", defaultConfigPath(), "Path to the YAML configuration")
	quiet      = flag.Bool("quiet", false, "Only print the final grid")
)

func defaultConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./configs/gridventory.yaml"
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("path", *configPath),
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int("items", len(cfg.Items)),
		zap.Int("frames", len(cfg.Script)))

	if err := run(cfg, logger, os.Stdout, !*quiet); err != nil {
		logger.Fatal("replay failed", zap.Error(err))
	}
}

// run replays cfg.Script and writes the grid to out.
func run(cfg *config.Config, logger *zap.Logger, out io.Writer, everyFrame bool) error {
	inv, err := gridventory.New[*models.Item](cfg.Grid.Width, cfg.Grid.Height,
		gridventory.WithCapacity(cfg.Grid.Capacity),
		gridventory.WithLogger(logger.Named("inventory")))
	if err != nil {
		return fmt.Errorf("create inventory: %w", err)
	}
	mapper, err := gridventory.NewMapper(cfg.Placement.Separation)
	if err != nil {
		return fmt.Errorf("create mapper: %w", err)
	}
	pose := geom.Pose{
		Position: cfg.Placement.Position.R3(),
		Up:       cfg.Placement.Up.R3(),
		Right:    cfg.Placement.Right.R3(),
	}

	var lines debugdraw.Recorder
	ctrl := harness.NewController(inv, mapper, pose, catalog(cfg.Items, logger),
		harness.WithLogger(logger.Named("harness")),
		harness.WithDrawer(&lines))

	camera := cfg.Placement.Camera.R3()
	for i, step := range cfg.Script {
		lines.Reset()
		f := ctrl.Update(harness.Input{
			Ray:    geom.Ray{Origin: camera, Direction: r3.Sub(step.Aim.R3(), camera)},
			Rotate: step.Rotate,
			Place:  step.Place,
			Remove: step.Remove,
		})
		logger.Debug("frame",
			zap.Int("index", i),
			zap.Stringer("tile", f.Tile),
			zap.Bool("on_plane", f.OnPlane),
			zap.Int("rotation", f.Rotation),
			zap.Bool("candidate_free", f.CandidateFree),
			zap.Int("debug_lines", len(lines.Lines)))

		if !everyFrame {
			continue
		}
		if _, err := fmt.Fprintf(out, "frame %d: %s\n", i, describe(f)); err != nil {
			return err
		}
		if err := debugdraw.Text(out, inv, f.Candidate); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "final (%d placed, %d pending):\n", inv.Len(), len(ctrl.Pending())); err != nil {
		return err
	}
	if err := debugdraw.Text(out, inv, nil); err != nil {
		return err
	}
	for _, e := range inv.Items() {
		if _, err := fmt.Fprintf(out, "  %-24s %s rot=%d\n", e.Item, e.Rect, e.Rotation); err != nil {
			return err
		}
	}
	return nil
}

// catalog builds the pending stack so that the first configured item is
// placed first. Invalid items are logged and skipped.
func catalog(items []config.ItemConfig, logger *zap.Logger) []*models.Item {
	out := make([]*models.Item, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		it := models.NewItem(items[i].Name, items[i].Width, items[i].Height)
		it.Category = items[i].Category
		if !it.IsValid() {
			logger.Warn("skipping invalid catalog item",
				zap.Int("index", i), zap.String("name", it.Name), zap.Stringer("footprint", it.Footprint))
			continue
		}
		out = append(out, it)
	}
	return out
}

func describe(f harness.Frame) string {
	switch {
	case f.Placed != nil:
		return fmt.Sprintf("placed %s at %s", f.Placed.Item, f.Placed.Rect)
	case f.Removed != nil:
		return fmt.Sprintf("removed %s from %s", f.Removed.Item, f.Removed.Rect)
	case f.Pending != nil:
		return fmt.Sprintf("hovering %s with %s", f.Tile, f.Pending)
	default:
		return fmt.Sprintf("hovering %s", f.Tile)
	}
}
