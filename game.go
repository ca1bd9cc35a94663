package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/blockdash/common"
	"github.com/milk9111/blockdash/config"
	"github.com/milk9111/blockdash/ecs"
	"github.com/milk9111/blockdash/ecs/component"
	"github.com/milk9111/blockdash/ecs/entity"
	"github.com/milk9111/blockdash/ecs/system"
	"github.com/milk9111/blockdash/levels"
	"github.com/milk9111/blockdash/logging"
	"github.com/milk9111/blockdash/prefabs"
)

type Game struct {
	cfg   config.Config
	world *ecs.World
	res   *system.Resources

	render   *system.RenderSystem
	physics  *system.PhysicsSystem
	hud      *system.HUDSystem
	editorUI *system.EditorUISystem

	watcher *levels.Watcher
	log     *logrus.Entry
}

func NewGame(cfg config.Config) (*Game, error) {
	res, err := system.LoadResources(cfg.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	start := component.ModeEditor
	if cfg.StartMode == "level" {
		start = component.ModeLevel
	}

	world := ecs.NewWorld()
	selected := 0
	if len(res.Catalog.Blocks) > 0 {
		selected = res.Catalog.Blocks[0].ID
	}
	if _, err := entity.NewGameState(world, start, selected); err != nil {
		return nil, err
	}

	hud, err := system.NewHUDSystem()
	if err != nil {
		return nil, err
	}
	editorUI, err := system.NewEditorUISystem()
	if err != nil {
		return nil, err
	}

	world.AddSystem(ecs.StageInput, system.NewInputSystem(system.EbitenInput{}))
	world.AddSystem(ecs.StageMode, system.NewModeSystem(res))
	world.AddSystem(ecs.StageEditor, editorUI)
	world.AddSystem(ecs.StageEditor, system.NewEditorIOSystem(res, &system.SystemClipboard{}))
	world.AddSystem(ecs.StageEditor, system.NewPlacementSystem(res))
	world.AddSystem(ecs.StageMovement, system.NewRunSystem())
	physics := system.NewPhysicsSystem()
	world.AddSystem(ecs.StagePhysics, physics)
	world.AddSystem(ecs.StageCollision, system.NewCollisionSystem())
	world.AddSystem(ecs.StagePlayer, system.NewJumpSystem())
	world.AddSystem(ecs.StageRespawn, system.NewRespawnSystem(res))
	world.AddSystem(ecs.StageCamera, system.NewCameraSystem(res))
	world.AddSystem(ecs.StageCamera, hud)

	g := &Game{
		cfg:      cfg,
		world:    world,
		res:      res,
		render:   system.NewRenderSystem(res),
		physics:  physics,
		hud:      hud,
		editorUI: editorUI,
		log:      logging.System("game"),
	}

	if cfg.Watch {
		if err := g.startWatcher(); err != nil {
			g.log.WithError(err).Warn("file watching disabled")
		}
	}
	return g, nil
}

func (g *Game) startWatcher() error {
	dirs := []string{}
	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		dirs = append(dirs, prefabs.Dir)
	}
	levelPath := g.res.Store.Path
	if levelPath != "" {
		levelDir := filepath.Dir(levelPath)
		if info, err := os.Stat(levelDir); err == nil && info.IsDir() && levelDir != prefabs.Dir {
			dirs = append(dirs, levelDir)
		}
	}
	if len(dirs) == 0 {
		return fmt.Errorf("nothing to watch")
	}

	w, err := levels.NewWatcher(levels.MatchLevelOrSpec(levelPath), dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	g.log.WithField("dirs", dirs).Info("watching for changes")
	return nil
}

// drainWatcher turns file changes into a resource reload and a Level
// rebuild. It never blocks.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.WithError(err).Warn("watcher error")
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	g.log.WithField("files", changed).Info("files changed")

	fresh, err := system.LoadResources(g.cfg.LevelPath)
	if err != nil {
		g.log.WithError(err).Error("reload resources")
		return
	}
	*g.res = *fresh
	system.RequestReload(g.world)
}

func (g *Game) Update() error {
	if ft, ok := ecs.Get(g.world, g.world.MustFirst(component.GameStateTagComponent.Kind()), component.FrameTimeComponent.Kind()); ok {
		ft.Delta = 1.0 / float64(ebiten.TPS())
	}
	g.drainWatcher()
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)
	g.editorUI.Draw(screen)

	if g.cfg.Debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawPlayerStateDebug(g.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  entities: %d", ebiten.ActualFPS(), g.world.Count()), 8, common.BaseHeight-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
