package navcam

// NavigationBuilder assembles a Navigation with its camera, toggles and log
// sink in one place.
type NavigationBuilder struct {
	camera  *Camera
	options *NavigationOptions
	locks   *LockSettings
	logger  Logger
	is2D    bool
}

func NewNavigationBuilder() *NavigationBuilder {
	return &NavigationBuilder{}
}

func (b *NavigationBuilder) WithCamera(camera *Camera) *NavigationBuilder {
	b.camera = camera
	return b
}

func (b *NavigationBuilder) WithOptions(options NavigationOptions) *NavigationBuilder {
	b.options = &options
	return b
}

func (b *NavigationBuilder) WithLockSettings(locks LockSettings) *NavigationBuilder {
	b.locks = &locks
	return b
}

func (b *NavigationBuilder) WithLogger(logger Logger) *NavigationBuilder {
	b.logger = logger
	return b
}

func (b *NavigationBuilder) Use2D() *NavigationBuilder {
	b.is2D = true
	return b
}

func (b *NavigationBuilder) Build() *Navigation {
	nav := NewNavigation(b.camera)
	if b.options != nil {
		nav.options = *b.options
	}
	if b.locks != nil {
		nav.locks = *b.locks
	}
	if b.logger != nil {
		nav.SetLogger(b.logger)
	}
	nav.Set2DMode(b.is2D)
	return nav
}
