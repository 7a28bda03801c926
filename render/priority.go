package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityWall
	PriorityItems
	PriorityTrails
	PriorityEffects
	PriorityText
	PriorityUI
	PriorityOverlay
)
