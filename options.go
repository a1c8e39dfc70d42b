package navcam

// Action enumerates the seven gated navigation operations. Keeping the set
// bounded means a lock-settings merge can never introduce unknown keys.
type Action int

const (
	ActionOrbit Action = iota
	ActionPan
	ActionZoom
	ActionRoll
	ActionFov
	ActionGotoView
	ActionWalk

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionOrbit:
		return "orbit"
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	case ActionRoll:
		return "roll"
	case ActionFov:
		return "fov"
	case ActionGotoView:
		return "gotoview"
	case ActionWalk:
		return "walk"
	}
	return "unknown"
}

// LockSettings records which actions remain enabled while navigation is
// locked. The zero value disables everything under lock.
type LockSettings struct {
	Orbit    bool
	Pan      bool
	Zoom     bool
	Roll     bool
	Fov      bool
	GotoView bool
	Walk     bool
}

func (s LockSettings) enabled(a Action) bool {
	switch a {
	case ActionOrbit:
		return s.Orbit
	case ActionPan:
		return s.Pan
	case ActionZoom:
		return s.Zoom
	case ActionRoll:
		return s.Roll
	case ActionFov:
		return s.Fov
	case ActionGotoView:
		return s.GotoView
	case ActionWalk:
		return s.Walk
	}
	return false
}

// NavigationOptions is the flat set of behavior toggles owned by a
// Navigation instance. Created with defaults at construction and mutated
// only through the explicit setters on Navigation.
type NavigationOptions struct {
	DollyTowardPivot      bool
	OrbitPastPoles        bool
	ReverseDolly          bool
	ReverseHorizontalLook bool
	ReverseVerticalLook   bool
	LeftHandedInput       bool
	AlwaysUsePivot        bool
	NavigationLocked      bool
}

func DefaultNavigationOptions() NavigationOptions {
	return NavigationOptions{
		OrbitPastPoles: true,
	}
}
