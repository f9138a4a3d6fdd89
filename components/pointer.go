package components

// PointerID identifies a pointer across frames: a touch ID from the
// platform, or MousePointer for the left mouse button.
type PointerID int

// MousePointer is the sentinel ID for the mouse cursor. Touch IDs from
// Ebitengine are always >= 0.
const MousePointer PointerID = -1
