package scenes

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/kaboom/assets"
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/shared/leveldata"
	"github.com/automoto/kaboom/systems"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/automoto/kaboom/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxOptions configures the offline sandbox.
type SandboxOptions struct {
	Level      string
	Tuning     cfg.BarrelProps
	TuningPath string // watched for changes when set
	Settings   *systems.SavedSettings
}

// SandboxScene simulates the level locally with full authority.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         SandboxOptions
	level        *leveldata.LevelData
	base         cfg.BarrelProps
	toolbar      *ui.Toolbar
	view         *ebiten.Image
	tuningCh     chan cfg.BarrelProps
	cancel       context.CancelFunc
	once         sync.Once
}

func NewSandboxScene(sc SceneChanger, opts SandboxOptions) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, opts: opts}
}

func (s *SandboxScene) configure() {
	preloadAllSFX()

	level, err := assets.LoadLevel(s.opts.Level)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	s.level = level

	settings := components.SandboxData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		Level:     s.opts.Level,
	}
	s.base = s.opts.Tuning
	if saved := s.opts.Settings; saved != nil {
		settings.SFXVolume = saved.SFXVolume
		settings.Muted = saved.Muted
		settings.ShowRadius = saved.ShowBlastRadius
		s.base.ExplodeAllInSameTick = saved.ExplodeAllInSameTick
	}
	settings.ExplodeAll = s.base.ExplodeAllInSameTick

	ecs := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorldState(ecs, true)
	factory.CreatePresenter(ecs, settings)
	if err := factory.BuildLevel(ecs, level, s.base); err != nil {
		panic("failed to build level: " + err.Error())
	}

	systems.AddGameplaySystems(ecs)

	ecs.AddRenderer(cfg.Default, systems.DrawProps)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawBlastRadii)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = ecs
	s.view = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	s.toolbar = ui.NewToolbar([]ui.ToolbarAction{
		{Label: "Chain", OnClick: s.toggleExplodeAll},
		{Label: "Radii", OnClick: s.toggleRadius},
		{Label: "Reset", OnClick: s.reset},
		{Label: "Mute", OnClick: s.toggleMute},
	})

	s.watchTuning()
}

// watchTuning reloads the level whenever the tuning file changes. The
// watcher only hands values over; the level is rebuilt in Update.
func (s *SandboxScene) watchTuning() {
	if s.opts.TuningPath == "" {
		return
	}
	s.tuningCh = make(chan cfg.BarrelProps, 1)
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	err := cfg.WatchTuning(ctx, s.opts.TuningPath, cfg.Barrel.Defaults, func(p cfg.BarrelProps) {
		select { // drain stale, push latest
		case <-s.tuningCh:
		default:
		}
		s.tuningCh <- p
	})
	if err != nil {
		log.Printf("[sandbox] tuning hot reload disabled: %v", err)
	}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)

	select {
	case props := <-s.tuningCh:
		props.ExplodeAllInSameTick = s.base.ExplodeAllInSameTick
		s.base = props
		s.reset()
		s.setStatus("tuning reloaded")
	default:
	}

	s.toolbar.Update()
	s.handleInput()
	s.ecs.Update()
	s.present()
}

func (s *SandboxScene) handleInput() {
	systems.UpdateInput(s.ecs)

	mx, my := systems.Cursor(s.ecs)
	wx, wy := float64(mx), float64(my-ui.Height)
	inWorld := wy >= 0

	if inWorld && systems.ActionJustPressed(s.ecs, cfg.ActionShoot) {
		systems.ShootAt(s.ecs, wx, wy, cfg.Sandbox.ShotDamage)
	}
	if inWorld && systems.ActionJustPressed(s.ecs, cfg.ActionSpawnBarrel) {
		factory.CreateBarrel(s.ecs, wx-cfg.Barrel.Width/2, wy-cfg.Barrel.Height/2, s.base)
	}

	if systems.ActionJustPressed(s.ecs, cfg.ActionToggleChain) {
		s.toggleExplodeAll()
	}
	if systems.ActionJustPressed(s.ecs, cfg.ActionToggleRadius) {
		s.toggleRadius()
	}
	if systems.ActionJustPressed(s.ecs, cfg.ActionReset) {
		s.reset()
	}
	if systems.ActionJustPressed(s.ecs, cfg.ActionMute) {
		s.toggleMute()
	}
}

// present plays queued sounds and shakes the screen for explosions.
func (s *SandboxScene) present() {
	sb := systems.Settings(s.ecs)
	for _, cue := range systems.DrainSFX(s.ecs) {
		if !sb.Muted {
			playSFX(cue.Sound, sb.SFXVolume)
		}
	}
	for range systems.DrainExplosions(s.ecs) {
		systems.TriggerScreenShake(s.ecs, cfg.Explosion.ShakeAmount, cfg.Explosion.ShakeFrames)
	}
	s.toolbar.SetStatus(sb.Status)
}

func (s *SandboxScene) toggleExplodeAll() {
	sb := systems.Settings(s.ecs)
	sb.ExplodeAll = !sb.ExplodeAll
	s.base.ExplodeAllInSameTick = sb.ExplodeAll
	systems.SetExplodeAll(s.ecs, sb.ExplodeAll)
	if sb.ExplodeAll {
		s.setStatus("chains go off in the same tick")
	} else {
		s.setStatus("chains advance one link per tick")
	}
	s.save()
}

func (s *SandboxScene) toggleRadius() {
	sb := systems.Settings(s.ecs)
	sb.ShowRadius = !sb.ShowRadius
	s.save()
}

func (s *SandboxScene) toggleMute() {
	sb := systems.Settings(s.ecs)
	sb.Muted = !sb.Muted
	if sb.Muted {
		s.setStatus("muted")
	} else {
		s.setStatus("")
	}
	s.save()
}

func (s *SandboxScene) reset() {
	if err := systems.ReloadLevel(s.ecs, s.level, s.base); err != nil {
		log.Printf("[sandbox] reset failed: %v", err)
		s.setStatus(fmt.Sprintf("reset failed: %v", err))
		return
	}
	s.setStatus("level reset")
}

func (s *SandboxScene) setStatus(msg string) {
	systems.Settings(s.ecs).Status = msg
}

func (s *SandboxScene) save() {
	sb := systems.Settings(s.ecs)
	err := systems.SaveSettings(&systems.SavedSettings{
		SFXVolume:            sb.SFXVolume,
		Muted:                sb.Muted,
		ExplodeAllInSameTick: sb.ExplodeAll,
		ShowBlastRadius:      sb.ShowRadius,
		Level:                sb.Level,
	})
	if err != nil {
		log.Printf("[sandbox] could not save settings: %v", err)
	}
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Sky)

	if s.ecs == nil {
		return
	}

	s.view.Fill(cfg.Sky)
	s.ecs.Draw(s.view)

	worldOp.GeoM.Reset()
	worldOp.GeoM.Translate(0, ui.Height)
	screen.DrawImage(s.view, worldOp)

	s.toolbar.Draw(screen)
}

// Close stops the tuning watcher.
func (s *SandboxScene) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}
