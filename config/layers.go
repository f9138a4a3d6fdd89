package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer used by all renderers.
var Default = ecs.LayerID(0)
