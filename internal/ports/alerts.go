package ports

// AlertKind distinguishes success notices from failures.
type AlertKind int

const (
	AlertSuccess AlertKind = iota
	AlertError
)

// Alert is a user-visible notification with a human-readable message.
type Alert struct {
	Kind    AlertKind
	Title   string
	Message string
}

// Alerter surfaces alerts to the user.
type Alerter interface {
	Alert(alert Alert)
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func(Alert)

// Alert calls f.
func (f AlerterFunc) Alert(alert Alert) {
	f(alert)
}
