package app

// App is the wired application handed to commands.
type App struct {
	Config *Config
	*Wire
}

// New validates cfg and wires the application.
func New(cfg *Config) (*App, error) {
	w, err := NewWire(*cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	if a == nil || a.Log == nil {
		return
	}
	_ = a.Log.Sync()
}
