package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/kaboom/assets"
	"github.com/automoto/kaboom/components"
	cfg "github.com/automoto/kaboom/config"
	"github.com/automoto/kaboom/fonts"
	"github.com/automoto/kaboom/network"
	"github.com/automoto/kaboom/shared/messages"
	"github.com/automoto/kaboom/shared/netcomponents"
	"github.com/automoto/kaboom/systems"
	"github.com/automoto/kaboom/systems/factory"
	"github.com/automoto/kaboom/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpectatorScene mirrors a server's props. It never simulates; clicks are
// sent to the server as requests.
type SpectatorScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	fallback     SandboxOptions
	toolbar      *ui.Toolbar
	view         *ebiten.Image
	presentIDs   map[esync.NetworkId]bool
	configured   bool
}

// NewSpectatorScene watches the server client is connected to. When the
// connection drops the scene falls back to a local sandbox with fallback.
func NewSpectatorScene(sc SceneChanger, client *network.Client, fallback SandboxOptions) *SpectatorScene {
	return &SpectatorScene{
		sceneChanger: sc,
		netClient:    client,
		fallback:     fallback,
		presentIDs:   make(map[esync.NetworkId]bool),
	}
}

func (ss *SpectatorScene) Update() {
	state := ss.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		if err := ss.netClient.LastError(); err != nil {
			log.Printf("[spectator] %v, starting local sandbox", err)
		} else {
			log.Println("[spectator] disconnected, starting local sandbox")
		}
		ss.netClient.Disconnect()
		ss.sceneChanger.ChangeScene(NewSandboxScene(ss.sceneChanger, ss.fallback))
		return
	}
	if state != network.StateJoined {
		return
	}
	if !ss.configured {
		ss.configure()
	}

	if snap := ss.netClient.LatestSnapshot(); snap != nil {
		ss.applySnapshot(*snap)
	}
	ss.presentEvents()

	ss.toolbar.Update()
	ss.handleInput()
	ss.ecsWorld.Update()
}

func (ss *SpectatorScene) configure() {
	ss.configured = true
	preloadAllSFX()

	ss.ecsWorld = ecs.NewECS(donburi.NewWorld())
	factory.CreateWorldState(ss.ecsWorld, false)

	settings := components.SandboxData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
		Level:     ss.netClient.Level(),
		Status:    "watching " + ss.netClient.ServerName(),
	}
	if saved := ss.fallback.Settings; saved != nil {
		settings.SFXVolume = saved.SFXVolume
		settings.Muted = saved.Muted
		settings.ShowRadius = saved.ShowBlastRadius
	}
	factory.CreatePresenter(ss.ecsWorld, settings)

	// Solids are not replicated; load the server's level locally.
	if level, err := assets.LoadLevel(ss.netClient.Level()); err != nil {
		log.Printf("[spectator] level %q not available locally: %v", ss.netClient.Level(), err)
		factory.CreateSpace(ss.ecsWorld, cfg.C.Width, cfg.C.Height, cfg.C.TileSize, cfg.C.TileSize)
	} else {
		factory.BuildSolids(ss.ecsWorld, level)
	}

	ss.ecsWorld.AddSystem(systems.NewNetInterpSystem(ss.netClient.TickRate))
	ss.ecsWorld.AddSystem(systems.UpdateEffects)
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawProps)
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawNetProps)
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawParticles)
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawBlastRadii)
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawHUD)

	ss.view = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	ss.toolbar = ui.NewToolbar([]ui.ToolbarAction{
		{Label: "Radii", OnClick: ss.toggleRadius},
		{Label: "Mute", OnClick: ss.toggleMute},
		{Label: "Leave", OnClick: ss.netClient.Disconnect},
	})
}

func (ss *SpectatorScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ss.ecsWorld.World

	clear(ss.presentIDs)

	for _, ent := range snapshot {
		ss.presentIDs[ent.Id] = true

		var props []netcomponents.NetPropData
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			if v, ok := instance.(netcomponents.NetPropData); ok {
				props = append(props, v)
			}
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(netcomponents.NetProp, components.NetInterp)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := world.Entry(entity)
		for _, p := range props {
			systems.ApplyNetProp(entry, p)
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ss.presentIDs[*id] {
			entry.Remove()
		}
	})
}

// presentEvents turns server events into local particles, shake and sound.
func (ss *SpectatorScene) presentEvents() {
	sb := systems.Settings(ss.ecsWorld)

	for _, ex := range ss.netClient.DrainExplosions() {
		factory.SpawnExplosion(ss.ecsWorld, ex.X, ex.Y, ex.Radius)
		systems.TriggerScreenShake(ss.ecsWorld, cfg.Explosion.ShakeAmount, cfg.Explosion.ShakeFrames)
	}
	// The particles above recorded explosions of their own; nobody else wants them.
	systems.DrainExplosions(ss.ecsWorld)

	for _, evt := range ss.netClient.DrainSounds() {
		if !sb.Muted {
			playSFX(cfg.SoundID(evt.Sound), sb.SFXVolume)
		}
	}

	ss.toolbar.SetStatus(sb.Status)
}

func (ss *SpectatorScene) handleInput() {
	systems.UpdateInput(ss.ecsWorld)

	mx, my := systems.Cursor(ss.ecsWorld)
	wx, wy := float64(mx), float64(my-ui.Height)
	inWorld := wy >= 0

	if inWorld && systems.ActionJustPressed(ss.ecsWorld, cfg.ActionShoot) {
		ss.send(messages.ShootRequest{X: wx, Y: wy, Damage: cfg.Sandbox.ShotDamage})
	}
	if inWorld && systems.ActionJustPressed(ss.ecsWorld, cfg.ActionSpawnBarrel) {
		ss.send(messages.SpawnBarrelRequest{X: wx - cfg.Barrel.Width/2, Y: wy - cfg.Barrel.Height/2})
	}
	if systems.ActionJustPressed(ss.ecsWorld, cfg.ActionToggleRadius) {
		ss.toggleRadius()
	}
	if systems.ActionJustPressed(ss.ecsWorld, cfg.ActionMute) {
		ss.toggleMute()
	}
}

func (ss *SpectatorScene) send(msg any) {
	if err := ss.netClient.SendMessage(msg); err != nil {
		log.Printf("[spectator] send failed: %v", err)
	}
}

func (ss *SpectatorScene) toggleRadius() {
	sb := systems.Settings(ss.ecsWorld)
	sb.ShowRadius = !sb.ShowRadius
}

func (ss *SpectatorScene) toggleMute() {
	sb := systems.Settings(ss.ecsWorld)
	sb.Muted = !sb.Muted
}

func (ss *SpectatorScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	if ss.ecsWorld == nil {
		msg := fmt.Sprintf("%s...", ss.netClient.State())
		text.Draw(screen, msg, fonts.HUDLarge.Get(), 20, 40, cfg.White)
		return
	}

	ss.view.Fill(cfg.Sky)
	ss.ecsWorld.Draw(ss.view)

	worldOp.GeoM.Reset()
	worldOp.GeoM.Translate(0, ui.Height)
	screen.DrawImage(ss.view, worldOp)

	ss.toolbar.Draw(screen)
}
