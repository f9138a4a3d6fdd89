package systems

import (
	"image"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pr-poehali-dev/realistic-horror-game/assets"
	"github.com/pr-poehali-dev/realistic-horror-game/components"
	cfg "github.com/pr-poehali-dev/realistic-horror-game/config"
	"github.com/pr-poehali-dev/realistic-horror-game/gamemath"
	"github.com/pr-poehali-dev/realistic-horror-game/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	// Cache 1px texture columns to prevent repeated SubImage allocations
	columnCache = map[*ebiten.Image][]*ebiten.Image{}

	propQueue []propDraw
)

const sideShade = 0.72

// UpdateRender advances the slow fog breathing phase.
func UpdateRender(ecs *ecs.ECS) {
	entry, ok := components.Render.First(ecs.World)
	if !ok {
		return
	}
	render := components.Render.Get(entry)
	render.FogPhase += getOrCreateTime(ecs).Delta
	if render.FogPhase > 3600 {
		render.FogPhase -= 3600
	}
}

// DrawRoom raycasts the wall grid into the offscreen frame, billboards the
// props against the column depth buffer, then composites the frame to the
// screen through the flashlight shader.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	renderEntry, ok := components.Render.First(ecs.World)
	if !ok {
		return
	}
	render := components.Render.Get(renderEntry)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	room := components.Level.Get(levelEntry).Room

	frame := render.Frame
	h := frame.Bounds().Dy()

	dir := gamemath.Forward(player.Yaw)
	plane := gamemath.Right(player.Yaw).Scale(math.Tan(cfg.Render.FOV / 2))
	horizon := float64(h)/2 + player.Pitch*cfg.Render.PitchPixels + player.BobOffset

	drawBackground(frame, render.Background, horizon)
	drawWalls(frame, render, room, player.Position, dir, plane, horizon)
	drawProps(ecs, frame, render, player.Position, dir, plane, horizon)

	compose(ecs, screen, frame, render, horizon)
}

// drawBackground places the prebuilt ceiling/floor gradient so its seam
// sits on the current horizon.
func drawBackground(frame, background *ebiten.Image, horizon float64) {
	if background == nil {
		frame.Fill(cfg.NearBlack)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(0, horizon-float64(background.Bounds().Dy())/2)
	frame.DrawImage(background, drawOp)
}

func drawWalls(frame *ebiten.Image, render *components.RenderData, room *leveldata.Room, pos, dir, plane gamemath.Vec2, horizon float64) {
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	texSize := cfg.Render.TextureSize

	for x := 0; x < w; x++ {
		cameraX := 2*float64(x)/float64(w) - 1
		ray := gamemath.Vec2{X: dir.X + plane.X*cameraX, Y: dir.Y + plane.Y*cameraX}

		perp, tile, side, wallX := castRay(room, pos, ray)
		render.Depth[x] = perp
		if tile == 0 {
			continue
		}

		texX := int(wallX * float64(texSize))
		if texX >= texSize {
			texX = texSize - 1
		}
		if (side == 0 && ray.X > 0) || (side == 1 && ray.Y < 0) {
			texX = texSize - 1 - texX
		}

		lineHeight := cfg.Render.WallScale * float64(h) / perp
		shade := fogFactor(perp, render.FogPhase)
		if side == 1 {
			shade *= sideShade
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(1, lineHeight/float64(texSize))
		drawOp.GeoM.Translate(float64(x), horizon-lineHeight/2)
		drawOp.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
		frame.DrawImage(textureColumn(assets.WallTexture(tile), texX), drawOp)
	}
}

// castRay runs a DDA over the wall grid. It returns the perpendicular
// distance (fisheye-corrected), the wall tile hit (0 for none within the
// view distance), which grid side was struck, and the fractional hit
// position along the wall face.
func castRay(room *leveldata.Room, pos, ray gamemath.Vec2) (perp float64, tile, side int, wallX float64) {
	mapX, mapY := int(math.Floor(pos.X)), int(math.Floor(pos.Y))

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if ray.X != 0 {
		deltaX = math.Abs(1 / ray.X)
	}
	if ray.Y != 0 {
		deltaY = math.Abs(1 / ray.Y)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if ray.X < 0 {
		stepX = -1
		sideX = (pos.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - pos.X) * deltaX
	}
	if ray.Y < 0 {
		stepY = -1
		sideY = (pos.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - pos.Y) * deltaY
	}

	for {
		if sideX < sideY {
			perp = sideX
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			perp = sideY
			sideY += deltaY
			mapY += stepY
			side = 1
		}
		// Rays can leave the grid entirely since movement is unconstrained
		if perp > cfg.Render.MaxViewDistance {
			return cfg.Render.MaxViewDistance, 0, side, 0
		}
		if tile = room.WallAt(mapX, mapY); tile != 0 {
			break
		}
	}

	if perp < 1e-4 {
		perp = 1e-4
	}
	if side == 0 {
		wallX = pos.Y + perp*ray.Y
	} else {
		wallX = pos.X + perp*ray.X
	}
	wallX -= math.Floor(wallX)
	return perp, tile, side, wallX
}

type propDraw struct {
	tex   *ebiten.Image
	kind  string
	tx    float64 // camera-space lateral offset
	depth float64 // camera-space forward distance
}

func drawProps(ecs *ecs.ECS, frame *ebiten.Image, render *components.RenderData, pos, dir, plane gamemath.Vec2, horizon float64) {
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	texSize := cfg.Render.TextureSize

	invDet := 1 / (plane.X*dir.Y - dir.X*plane.Y)

	propQueue = propQueue[:0]
	components.Prop.Each(ecs.World, func(e *donburi.Entry) {
		prop := components.Prop.Get(e)
		tex := assets.PropTexture(prop.Kind)
		if tex == nil {
			return
		}
		rel := prop.Position.Sub(pos)
		depth := invDet * (-plane.Y*rel.X + plane.X*rel.Y)
		if depth <= 0.05 || depth > cfg.Render.MaxViewDistance {
			return
		}
		propQueue = append(propQueue, propDraw{
			tex:   tex,
			kind:  prop.Kind,
			tx:    invDet * (dir.Y*rel.X - dir.X*rel.Y),
			depth: depth,
		})
	})

	// Far to near so closer props paint over farther ones
	sort.Slice(propQueue, func(i, j int) bool { return propQueue[i].depth > propQueue[j].depth })

	for _, p := range propQueue {
		screenX := float64(w) / 2 * (1 + p.tx/p.depth)
		fullHeight := cfg.Render.WallScale * float64(h) / p.depth
		spriteH := fullHeight * propScale(p.kind)
		spriteW := spriteH
		left := screenX - spriteW/2
		top := horizon + fullHeight/2 - spriteH

		startX, endX := int(left), int(left+spriteW)
		if startX < 0 {
			startX = 0
		}
		if endX > w {
			endX = w
		}

		shade := fogFactor(p.depth, render.FogPhase)
		for sx := startX; sx < endX; sx++ {
			if p.depth >= render.Depth[sx] {
				continue
			}
			texX := int((float64(sx) - left) / spriteW * float64(texSize))
			if texX < 0 {
				texX = 0
			}
			if texX >= texSize {
				texX = texSize - 1
			}

			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Scale(1, spriteH/float64(texSize))
			drawOp.GeoM.Translate(float64(sx), top)
			drawOp.ColorScale.Scale(float32(shade), float32(shade), float32(shade), 1)
			frame.DrawImage(textureColumn(p.tex, texX), drawOp)
		}
	}
}

// compose runs the flashlight shader over the frame, or blits it straight
// through when the shader is unavailable.
func compose(ecs *ecs.ECS, screen, frame *ebiten.Image, render *components.RenderData, horizon float64) {
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()

	if assets.FlashlightShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(frame, drawOp)
		return
	}

	var on, intensity float32
	if entry, ok := components.Flashlight.First(ecs.World); ok {
		flashlight := components.Flashlight.Get(entry)
		if flashlight.On {
			on = 1
			intensity = float32(flashlight.Intensity)
		}
	}

	shaderOp.Images[0] = frame
	shaderOp.Uniforms = map[string]any{
		"LightPos":   []float32{float32(w) / 2, float32(horizon)},
		"LightOn":    on,
		"Intensity":  intensity,
		"BeamRadius": float32(cfg.Flashlight.BeamRadius),
		"Ambient":    float32(cfg.Flashlight.Ambient),
		"Time":       float32(render.FogPhase),
		"ScreenSize": []float32{float32(w), float32(h)},
	}
	screen.DrawRectShader(w, h, assets.FlashlightShader, shaderOp)
}

// fogFactor darkens with squared distance, with a slow ambient breathing.
func fogFactor(dist, phase float64) float64 {
	fog := 1 / (1 + dist*dist*cfg.Render.FogDensity)
	fog *= 1 + 0.04*math.Sin(phase*0.7)
	if fog > 1 {
		fog = 1
	}
	return fog
}

func propScale(kind string) float64 {
	switch kind {
	case "barrel":
		return 0.68
	default:
		return 0.55
	}
}

func textureColumn(tex *ebiten.Image, x int) *ebiten.Image {
	cols, ok := columnCache[tex]
	if !ok {
		cols = make([]*ebiten.Image, tex.Bounds().Dx())
		columnCache[tex] = cols
	}
	if cols[x] == nil {
		b := tex.Bounds()
		cols[x] = tex.SubImage(image.Rect(b.Min.X+x, b.Min.Y, b.Min.X+x+1, b.Max.Y)).(*ebiten.Image)
	}
	return cols[x]
}
