package factory

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/samsoft/brickrun/archetypes"
	"github.com/samsoft/brickrun/components"
	cfg "github.com/samsoft/brickrun/config"
	"github.com/samsoft/brickrun/engine"
	"github.com/samsoft/brickrun/leveldata"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton for a level. The physics world
// comes either from a TMX file (when -levels is set) or from the seeded
// procedural generator, so the same level number always builds the same map.
func CreateSession(e *ecs.ECS, level int) (*donburi.Entry, error) {
	built, err := buildWorld(level)
	if err != nil {
		return nil, fmt.Errorf("building level %d: %w", level, err)
	}

	body := engine.NewBody(built.spawnX, built.spawnY, cfg.Level.BodyWidth, cfg.Level.BodyHeight)
	session := engine.NewSession(built.world, body, tuning(), built.tileSize)

	entry := archetypes.Session.Spawn(e)
	components.Session.Set(entry, &components.SessionData{
		Session:    session,
		Clock:      engine.NewFixedStep(cfg.Sim.TickRate),
		LevelIndex: level,
	})
	components.Cleared.Set(entry, &components.ClearedData{})
	return entry, nil
}

// builtLevel bundles the world with its spawn point and tile size. TMX maps
// may use a different tile size than the procedural generator.
type builtLevel struct {
	world    *engine.StaticWorld
	spawnX   int
	spawnY   int
	tileSize int
}

func buildWorld(level int) (builtLevel, error) {
	if cfg.Debug.LevelDir != "" {
		return loadTiledWorld(level)
	}

	goal := engine.Rect{
		X: cfg.Level.Width - cfg.Level.FlagOffsetX,
		Y: cfg.Level.FlagY,
		W: cfg.Level.FlagWidth,
		H: cfg.Level.FlagHeight,
	}
	spec := engine.LevelSpec{
		Width:          cfg.Level.Width,
		Height:         cfg.C.Height,
		TileSize:       cfg.Level.TileSize,
		PlatformCount:  cfg.Level.PlatformCount,
		PlatformMargin: cfg.Level.PlatformMargin,
		PlatformBands:  cfg.Level.PlatformBands,
		Goal:           goal,
		QueryMargin:    cfg.Level.QueryMargin,
	}

	rng := rand.New(rand.NewSource(int64(level) + cfg.Debug.Seed))
	return builtLevel{
		world:    engine.BuildWorld(spec, rng),
		spawnX:   cfg.Level.SpawnX,
		spawnY:   cfg.Level.SpawnY,
		tileSize: cfg.Level.TileSize,
	}, nil
}

// loadTiledWorld maps the level number onto the sorted TMX file list and
// assembles a StaticWorld from the map's solid rects.
func loadTiledWorld(level int) (builtLevel, error) {
	fsys := os.DirFS(cfg.Debug.LevelDir)
	levels, names, err := leveldata.LoadAllLevels(fsys, ".")
	if err != nil {
		return builtLevel{}, err
	}
	if len(names) == 0 {
		return builtLevel{}, fmt.Errorf("no tmx levels in %s", cfg.Debug.LevelDir)
	}
	data := levels[names[(level-1)%len(names)]]

	width := data.MapWidth
	height := data.MapHeight

	goal := engine.Rect{
		X: width - cfg.Level.FlagOffsetX,
		Y: cfg.Level.FlagY,
		W: cfg.Level.FlagWidth,
		H: cfg.Level.FlagHeight,
	}
	if data.Goal != nil {
		goal = engine.Rect{X: data.Goal.X, Y: data.Goal.Y, W: data.Goal.W, H: data.Goal.H}
	}

	w := engine.NewWorld(width, height, data.TileWidth, cfg.Level.QueryMargin, goal)
	for _, r := range data.SolidRects {
		w.AddTile(engine.TileBrick, engine.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}

	spawnX, spawnY := cfg.Level.SpawnX, cfg.Level.SpawnY
	if data.Spawn != nil {
		spawnX, spawnY = data.Spawn.X, data.Spawn.Y
	}
	return builtLevel{
		world:    w,
		spawnX:   spawnX,
		spawnY:   spawnY,
		tileSize: data.TileHeight,
	}, nil
}

// tuning assembles the engine constants from config. The engine never reads
// config itself.
func tuning() engine.Tuning {
	return engine.Tuning{
		Gravity:           cfg.Physics.Gravity,
		JumpVelocity:      cfg.Physics.JumpVelocity,
		MaxFallSpeed:      cfg.Physics.MaxFallSpeed,
		WalkAccel:         cfg.Physics.WalkAccel,
		RunAccel:          cfg.Physics.RunAccel,
		Friction:          cfg.Physics.Friction,
		MaxWalkSpeed:      cfg.Physics.MaxWalkSpeed,
		MaxRunSpeed:       cfg.Physics.MaxRunSpeed,
		ClearDescentSpeed: cfg.Clear.DescentSpeed,
		ClearWalkSpeed:    cfg.Clear.WalkSpeed,
		CompletionOffset:  cfg.Clear.CompletionOffset,
	}
}
