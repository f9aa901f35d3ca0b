package ports

import (
	"context"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
)

// Bridge is the widget host's native module. Every call may fail; callers
// convert failures into alerts at the call site. Implementations need not be
// safe under concurrent writes to the same widget id, so callers sequence
// their writes.
type Bridge interface {
	// GetAllWidgetIDs enumerates live widget instances keyed by an arbitrary
	// string. An empty mapping means no instance exists.
	GetAllWidgetIDs(ctx context.Context) (map[string]int, error)
	GetDefaultSettings(ctx context.Context) (widget.Settings, error)
	UpdateDefaultSettings(ctx context.Context, settings widget.Settings) error
	GetWidgetSettings(ctx context.Context, id int) (widget.Settings, error)
	UpdateWidgetSettings(ctx context.Context, id int, settings widget.Settings) error
	// ForceUpdateWidget asks the host to re-render instance id immediately.
	ForceUpdateWidget(ctx context.Context, id int) error
}
