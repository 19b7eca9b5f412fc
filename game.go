package main

import (
	"context"
	"fmt"
	"log"
	"time"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shopfront/ecs"
	"github.com/milk9111/shopfront/ecs/component"
	"github.com/milk9111/shopfront/ecs/entity"
	"github.com/milk9111/shopfront/ecs/system"
	"github.com/milk9111/shopfront/overlay"
	"github.com/milk9111/shopfront/prefabs"
	"github.com/milk9111/shopfront/sound"
	"github.com/milk9111/shopfront/state"
	"github.com/milk9111/shopfront/timer"
)

const (
	tickRate = 60
	tick     = time.Second / tickRate
)

type GameOptions struct {
	Debug   bool
	Mute    bool
	Restore bool
	Watch   bool
	// Sound acquires the ambient track; nil keeps the controller silent.
	Sound sound.Loader
}

type Game struct {
	debug bool

	sched    *timer.Scheduler
	store    *state.Store
	world    *ecs.World
	viewport *system.Viewport
	camera   ecs.Entity

	picking *system.PickingSystem
	render  *system.RenderSystem

	loading *overlay.Loading
	panel   *overlay.Panel
	ui      *overlayUI

	ambient *sound.Ambient
	watcher *prefabs.Watcher

	scene  prefabs.SceneSpec
	closed bool
}

func NewGame(opts GameOptions) (*Game, error) {
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	if opts.Restore {
		camSpec.RestorePose = true
	}
	sceneSpec, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	sections, err := prefabs.LoadSectionsSpec()
	if err != nil {
		return nil, err
	}
	props, err := prefabs.RunProps(sceneSpec.PropsScript)
	if err != nil {
		// The scene is usable without decorations.
		log.Printf("game: props: %v", err)
		props = nil
	}

	sched := timer.New()
	store := state.NewStore(sched, state.Options{
		TransitionDuration: time.Duration(camSpec.TransitionMS) * time.Millisecond,
		LoadingDuration:    time.Duration(camSpec.LoadingMS) * time.Millisecond,
	})

	world := ecs.NewWorld()
	if err := entity.BuildScene(world, sceneSpec, props); err != nil {
		return nil, err
	}
	cam, err := entity.NewCamera(world, camSpec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:    opts.Debug,
		sched:    sched,
		store:    store,
		world:    world,
		viewport: &system.Viewport{},
		camera:   cam,
		render:   system.NewRenderSystem(),
		loading:  overlay.NewLoading(store),
		ambient:  sound.NewAmbient(opts.Mute),
		scene:    sceneSpec,
	}

	platform := overlay.DefaultPlatform()
	g.panel = overlay.NewPanel(store, sections, platform)
	g.ui = newOverlayUI(store, sections.Social, platform)

	pointer := &system.EbitenPointer{OverUI: g.pointerBlocked}
	g.picking = system.NewPickingSystem(store, g.viewport)
	world.AddSystem(system.NewInputSystem(pointer))
	world.AddSystem(g.picking)
	world.AddSystem(system.NewCameraSystem(store, 1.0/tickRate))
	world.AddSystem(system.NewOrbitSystem(store))

	g.ambient.PlayOnSelect(store)

	if opts.Sound != nil {
		g.ambient.Mount(context.Background(), opts.Sound)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskRoot)
		if err != nil {
			log.Printf("game: watch %s: %v", prefabs.DiskRoot, err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// pointerBlocked reports whether the scene should ignore the pointer this
// frame.
func (g *Game) pointerBlocked() bool {
	return ebuiinput.UIHovered || g.panel.Blocking() || g.loading.Visible()
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.Close()
		return ebiten.Termination
	}

	g.sched.Advance(tick)

	dt := 1.0 / tickRate
	g.loading.Update(dt)

	g.ui.sync(g.store, g.loading.Visible())
	g.ui.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.store.Section() != state.SectionNone {
		g.store.DeselectSection()
	}

	cx, cy := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	w, h := g.viewport.Width, g.viewport.Height
	g.panel.Update(overlay.PanelInput{
		X:       float64(cx),
		Y:       float64(cy),
		Clicked: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && !ebuiinput.UIHovered,
		Wheel:   wheel,
	}, w, h)

	g.world.Update()

	hovered := g.picking.Hovered()
	g.render.SetHoverGlow(hovered)
	if hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	g.reload()
	return nil
}

// reload applies prefab edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		if err := g.apply(c); err != nil {
			log.Printf("game: reload %s: %v", c.Name, err)
			continue
		}
		log.Printf("game: reloaded %s", c.Name)
	}
}

func (g *Game) apply(c prefabs.Change) error {
	switch {
	case c.Script || c.Name == prefabs.SceneFile:
		spec := g.scene
		if !c.Script {
			s, err := prefabs.LoadSceneSpec()
			if err != nil {
				return err
			}
			spec = s
		}
		props, err := prefabs.RunProps(spec.PropsScript)
		if err != nil {
			return err
		}
		if c.Script {
			return entity.ReplaceProps(g.world, props, mgl64.Vec3(spec.GroupOffset))
		}
		entity.ClearScene(g.world)
		if err := entity.BuildScene(g.world, spec, props); err != nil {
			return err
		}
		g.scene = spec
	case c.Name == prefabs.SectionsFile:
		spec, err := prefabs.LoadSectionsSpec()
		if err != nil {
			return err
		}
		g.panel.SetContent(spec)
	case c.Name == prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			return err
		}
		cam, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind())
		if !ok {
			return fmt.Errorf("game: camera entity missing")
		}
		cam.Offset = mgl64.Vec3(spec.FocusOffset)
		if spec.SmoothingRate > 0 {
			cam.Rate = spec.SmoothingRate
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.panel.Draw(screen)
	g.ui.ui.Draw(screen)
	g.loading.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  section: %s  transitioning: %v  loading: %v",
			ebiten.ActualFPS(), g.store.Section(), g.store.Transitioning(), g.store.Loading()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.viewport.Set(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close cancels pending timers and releases the ambient track. Safe to call
// more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.store.Close()
	if err := g.ambient.Close(); err != nil {
		log.Printf("game: close sound: %v", err)
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
