// Package leveldata provides TMX room parsing for the raycaster.
// It has no dependency on ebitengine or donburi so tests can load rooms headless.
package leveldata

// Room holds everything parsed from a TMX room file. Coordinates are in
// world cells (1 cell = 1 meter); the TMX tile size is only used to
// convert object pixel positions.
type Room struct {
	Name   string
	Width  int // cells
	Height int // cells

	// Walls is row-major, one entry per cell: 0 for open floor, or a
	// 1-based wall texture index.
	Walls []int

	Props []PropSpawn
	Spawn PlayerSpawn
}

// PropSpawn places a billboard prop in the room.
type PropSpawn struct {
	X, Y float64 // cell coordinates of the prop center
	Kind string  // "crate", "barrel", ...
}

// PlayerSpawn is where the player starts, with the initial view yaw in
// radians.
type PlayerSpawn struct {
	X, Y float64
	Yaw  float64
}

// WallAt returns the wall texture index at a cell, or 0 when the cell is
// open or outside the room. Rays that leave the room run into the view
// distance cutoff instead of a wall.
func (r *Room) WallAt(x, y int) int {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return 0
	}
	return r.Walls[y*r.Width+x]
}

// IsWall reports whether a cell blocks sight.
func (r *Room) IsWall(x, y int) bool {
	return r.WallAt(x, y) > 0
}
