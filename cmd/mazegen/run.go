package main

import (
	"math/rand"

	"go.uber.org/zap"

	"mazegen/internal/generate"
	"mazegen/internal/runlog"
	"mazegen/internal/scene"
)

// buildMaze generates one layout with the configured settings. seed 0
// lets the generator pick one unless --seed 0 was given explicitly.
func (a *app) buildMaze(seed int64) (*generate.Maze, error) {
	mc := a.cfg.MazeConfig()
	mc.Seed = seed
	if seed == 0 && a.zeroSeed {
		mc.Rand = rand.New(rand.NewSource(0))
	}
	m, err := generate.New(mc)
	if err != nil {
		return nil, err
	}
	m.Generate()
	a.logger.Debug("maze generated",
		zap.Int64("seed", m.Seed()),
		zap.Int("width", m.Width()),
		zap.Int("walls", len(m.Walls())),
		zap.Int("rooms", len(m.Rooms())))
	return m, nil
}

// export writes m into the scene document and records the run.
func (a *app) export(m *generate.Maze) error {
	e := &scene.Exporter{
		Path:   a.cfg.Scene.Path,
		Output: a.cfg.Scene.Output,
		Indent: a.cfg.Scene.Indent,
		Logger: a.logger,
	}
	if err := e.Export(m); err != nil {
		return err
	}
	a.record(m)
	return nil
}

// record appends the run to the history. Failures are only logged.
func (a *app) record(m *generate.Maze) {
	if !a.cfg.History.Enabled {
		return
	}
	store, err := runlog.Open(a.cfg.History.Dir, a.logger)
	if err != nil {
		a.logger.Warn("run log: cannot determine data dir", zap.Error(err))
		return
	}
	rl := runlog.New()
	rl.Seed = m.Seed()
	rl.Width = m.Width()
	rl.Orientation = a.cfg.Orientation
	rl.Boundary = m.Boundary().Corners
	rl.Walls = len(m.Walls())
	rl.Rooms = len(m.Rooms())
	rl.Scene = a.sceneOutput()
	// Save logs its own failures.
	store.Save(rl)
}

func (a *app) sceneOutput() string {
	if a.cfg.Scene.Output != "" {
		return a.cfg.Scene.Output
	}
	return a.cfg.Scene.Path
}

// generateOnce is the generate-then-persist sequence shared by generate
// and watch.
func (a *app) generateOnce() (*generate.Maze, error) {
	m, err := a.buildMaze(a.cfg.Seed)
	if err != nil {
		return nil, err
	}
	if err := a.export(m); err != nil {
		return nil, err
	}
	return m, nil
}
