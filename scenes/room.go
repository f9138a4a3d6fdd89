package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/assets"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/logging"
	"github.com/pr-poehali-dev/realistic-horror-game/systems"
	"github.com/pr-poehali-dev/realistic-horror-game/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoomScene is the playable dark room.
type RoomScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewRoomScene creates the room scene
func NewRoomScene(sc SceneChanger) *RoomScene {
	return &RoomScene{sceneChanger: sc}
}

func (rs *RoomScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	// Quit-to-menu selected from the pause menu
	if pause := systems.GetOrCreatePause(rs.ecs); pause.QuitToMenu {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger))
		return
	}
}

func (rs *RoomScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RoomScene) configure() {
	// The lighting shader and the procedural textures are needed before
	// the first frame
	if err := assets.LoadShaders(); err != nil {
		logging.Logger.Fatal().Err(err).Msg("could not load shaders")
	}
	assets.LoadTextures()

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateJoystick))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFlashlight))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLook))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOverlay))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRender))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.UpdateDebug)

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawRoom)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawOverlay)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	rs.ecs = e

	_, room := factory.CreateLevel(rs.ecs)
	factory.CreatePlayer(rs.ecs, room.Spawn)
	factory.CreateProps(rs.ecs, room)
	factory.CreateRenderer(rs.ecs)
	factory.CreateJoystick(rs.ecs)
	factory.CreateFlashlight(rs.ecs)
	factory.CreateLook(rs.ecs)
	factory.CreateOverlay(rs.ecs)
}
