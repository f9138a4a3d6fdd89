package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// FlashlightShader darkens the rendered room and carves out the
	// warm beam cone, plus film grain and vignette.
	FlashlightShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/flashlight.kage")
	if err != nil {
		return fmt.Errorf("read flashlight shader: %w", err)
	}
	FlashlightShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile flashlight shader: %w", err)
	}

	return nil
}
