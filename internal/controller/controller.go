// Package controller orchestrates loading, editing and committing widget
// settings through the widget bridge.
package controller

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/draft"
	"github.com/alexisbeaulieu97/quotewidget/internal/logger"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

// State is the lifecycle phase of a Controller.
type State int

const (
	// StateLoading is the state before Init has resolved the target widget.
	StateLoading State = iota
	// StateReady is entered once the identity and its settings are resolved.
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// Alert texts shown to the user.
const (
	MsgLoadFailed    = "Failed to load widget settings"
	MsgApplied       = "Theme applied to all widgets!"
	msgApplyPrefix   = "Failed to apply theme: "
	msgRefreshPrefix = "Failed to refresh widget: "
)

// Controller owns the draft of one target identity. Operations are expected
// to be sequenced by a single caller so bridge writes never overlap; the
// accessors are safe to call from any goroutine while one is running.
type Controller struct {
	bridge  ports.Bridge
	alerter ports.Alerter
	logger  ports.Logger
	drafts  *draft.Store

	mu        sync.RWMutex
	state     State
	identity  widget.Identity
	committed widget.Settings
	// synced is set once committed matches what the bridge stores.
	synced bool
}

// New constructs a Controller. Nil alerter or logger are replaced with
// no-op implementations.
func New(bridge ports.Bridge, alerter ports.Alerter, log ports.Logger) *Controller {
	if alerter == nil {
		alerter = ports.AlerterFunc(func(ports.Alert) {})
	}
	if log == nil {
		log = logger.NewNoOp()
	}
	defaults := widget.DefaultSettings()
	return &Controller{
		bridge:    bridge,
		alerter:   alerter,
		logger:    log.With("component", "controller"),
		drafts:    draft.NewStore(defaults),
		state:     StateLoading,
		identity:  widget.Standalone(),
		committed: defaults,
	}
}

// Init resolves the target identity and loads its settings. With no
// host-managed instance the controller runs standalone against the default
// configuration; otherwise it binds to the first instance id.
func (c *Controller) Init(ctx context.Context) error {
	c.setState(StateLoading)
	defer c.setState(StateReady)

	ids, err := c.bridge.GetAllWidgetIDs(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to enumerate widgets, running standalone", "error", err)
		ids = nil
	}

	ordered := widget.OrderedIDs(ids)
	identity := widget.Standalone()
	if len(ordered) > 0 {
		identity = widget.Bound(ordered[0])
	}
	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()
	c.logger.Info(ctx, "controller initialised", "identity", identity.String(), "instances", len(ordered))

	return c.LoadSettings(ctx, identity.ID())
}

// LoadSettings replaces the draft with the settings stored for id. A failed
// default load keeps the last known good settings and is only logged; a
// failed instance load also raises an alert. Either way the held settings do
// not change.
func (c *Controller) LoadSettings(ctx context.Context, id int) error {
	if id == widget.DefaultID {
		settings, err := c.bridge.GetDefaultSettings(ctx)
		if err != nil {
			c.logger.Warn(ctx, "failed to load default settings, keeping current", "error", err)
			return nil
		}
		c.accept(settings)
		return nil
	}

	settings, err := c.bridge.GetWidgetSettings(ctx, id)
	if err != nil {
		c.logger.Error(ctx, "failed to load widget settings", "widget_id", id, "error", err)
		c.alerter.Alert(ports.Alert{Kind: ports.AlertError, Title: "Error", Message: MsgLoadFailed})
		return qwerrors.NewBridgeError("getWidgetSettings", id, err)
	}
	c.accept(settings)
	return nil
}

// Reload re-reads the settings of the current identity, discarding the draft.
func (c *Controller) Reload(ctx context.Context) error {
	return c.LoadSettings(ctx, c.Identity().ID())
}

// Commit writes settings to the default configuration and then, one
// instance at a time, to every existing widget followed by a forced
// re-render. The first failure aborts the remaining steps, raises an alert
// and leaves the draft untouched.
func (c *Controller) Commit(ctx context.Context, settings widget.Settings) error {
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		c.logger.Error(ctx, "rejected invalid settings", "error", err)
		c.alertFailure(msgApplyPrefix, err)
		return err
	}

	c.logger.Info(ctx, "applying settings to all widgets")
	if err := c.bridge.UpdateDefaultSettings(ctx, settings); err != nil {
		return c.commitFailed(ctx, "updateDefaultSettings", widget.DefaultID, err)
	}

	ids, err := c.bridge.GetAllWidgetIDs(ctx)
	if err != nil {
		return c.commitFailed(ctx, "getAllWidgetIds", widget.DefaultID, err)
	}

	for _, id := range widget.OrderedIDs(ids) {
		if err := c.bridge.UpdateWidgetSettings(ctx, id, settings); err != nil {
			return c.commitFailed(ctx, "updateWidgetSettings", id, err)
		}
		if err := c.bridge.ForceUpdateWidget(ctx, id); err != nil {
			return c.commitFailed(ctx, "forceUpdateWidget", id, err)
		}
		c.logger.Debug(ctx, "widget updated", "widget_id", id)
	}

	c.accept(settings)
	c.alerter.Alert(ports.Alert{Kind: ports.AlertSuccess, Title: "Success", Message: MsgApplied})
	return nil
}

// CommitDraft commits the current draft.
func (c *Controller) CommitDraft(ctx context.Context) error {
	return c.Commit(ctx, c.drafts.Draft())
}

// ForceRefresh asks the host to re-render. Standalone, or when no instance
// exists, the committed settings are pushed to the default configuration and
// every instance is re-rendered; a bound controller refreshes only its own
// instance. Settings never read from or written to the bridge are not pushed,
// so a failed load cannot overwrite the stored defaults with built-ins.
func (c *Controller) ForceRefresh(ctx context.Context) error {
	c.mu.RLock()
	identity, committed, synced := c.identity, c.committed, c.synced
	c.mu.RUnlock()

	if !identity.IsStandalone() {
		id := identity.ID()
		if err := c.bridge.ForceUpdateWidget(ctx, id); err != nil {
			return c.refreshFailed(ctx, "forceUpdateWidget", id, err)
		}
		c.logger.Info(ctx, "widget refreshed", "widget_id", id)
		return nil
	}

	if synced {
		if err := c.bridge.UpdateDefaultSettings(ctx, committed); err != nil {
			return c.refreshFailed(ctx, "updateDefaultSettings", widget.DefaultID, err)
		}
	} else {
		c.logger.Warn(ctx, "default settings never loaded, re-rendering without pushing them")
	}
	ids, err := c.bridge.GetAllWidgetIDs(ctx)
	if err != nil {
		return c.refreshFailed(ctx, "getAllWidgetIds", widget.DefaultID, err)
	}
	for _, id := range widget.OrderedIDs(ids) {
		if err := c.bridge.ForceUpdateWidget(ctx, id); err != nil {
			return c.refreshFailed(ctx, "forceUpdateWidget", id, err)
		}
	}
	c.logger.Info(ctx, "widgets refreshed", "pushed_defaults", synced)
	return nil
}

// Drafts exposes the draft store for editing and preview subscription.
func (c *Controller) Drafts() *draft.Store {
	return c.drafts
}

// State returns the lifecycle phase.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Identity returns the target widget.
func (c *Controller) Identity() widget.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

// Committed returns the last settings loaded from or written to the bridge.
func (c *Controller) Committed() widget.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.committed
}

// Dirty reports whether the draft differs from the committed settings.
func (c *Controller) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.drafts.Draft() != c.committed
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// accept records settings as committed and loads them into the draft. Both
// happen under the lock so Dirty never observes one without the other.
func (c *Controller) accept(settings widget.Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed = settings
	c.synced = true
	c.drafts.Load(settings)
}

func (c *Controller) commitFailed(ctx context.Context, op string, id int, err error) error {
	c.logger.Error(ctx, "commit aborted", "operation", op, "widget_id", id, "error", err)
	c.alertFailure(msgApplyPrefix, err)
	return qwerrors.NewBridgeError(op, id, err)
}

func (c *Controller) refreshFailed(ctx context.Context, op string, id int, err error) error {
	c.logger.Error(ctx, "refresh failed", "operation", op, "widget_id", id, "error", err)
	c.alertFailure(msgRefreshPrefix, err)
	return qwerrors.NewBridgeError(op, id, err)
}

func (c *Controller) alertFailure(prefix string, err error) {
	c.alerter.Alert(ports.Alert{Kind: ports.AlertError, Title: "Error", Message: prefix + err.Error()})
}
