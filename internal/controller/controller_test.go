package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

type fakeBridge struct {
	ids      map[string]int
	defaults widget.Settings
	widgets  map[int]widget.Settings
	failures map[string]error
	calls    []string
}

func newFakeBridge(ids ...int) *fakeBridge {
	return &fakeBridge{
		ids:      widget.IDMap(ids),
		defaults: widget.DefaultSettings(),
		widgets:  map[int]widget.Settings{},
		failures: map[string]error{},
	}
}

func (f *fakeBridge) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failures[call]
}

func (f *fakeBridge) GetAllWidgetIDs(context.Context) (map[string]int, error) {
	if err := f.record("getAllWidgetIds"); err != nil {
		return nil, err
	}
	return f.ids, nil
}

func (f *fakeBridge) GetDefaultSettings(context.Context) (widget.Settings, error) {
	if err := f.record("getDefaultSettings"); err != nil {
		return widget.Settings{}, err
	}
	return f.defaults, nil
}

func (f *fakeBridge) UpdateDefaultSettings(_ context.Context, s widget.Settings) error {
	if err := f.record("updateDefaultSettings"); err != nil {
		return err
	}
	f.defaults = s
	return nil
}

func (f *fakeBridge) GetWidgetSettings(_ context.Context, id int) (widget.Settings, error) {
	if err := f.record(fmt.Sprintf("getWidgetSettings(%d)", id)); err != nil {
		return widget.Settings{}, err
	}
	if s, ok := f.widgets[id]; ok {
		return s, nil
	}
	return f.defaults, nil
}

func (f *fakeBridge) UpdateWidgetSettings(_ context.Context, id int, s widget.Settings) error {
	if err := f.record(fmt.Sprintf("updateWidgetSettings(%d)", id)); err != nil {
		return err
	}
	f.widgets[id] = s
	return nil
}

func (f *fakeBridge) ForceUpdateWidget(_ context.Context, id int) error {
	return f.record(fmt.Sprintf("forceUpdateWidget(%d)", id))
}

type alertRecorder struct {
	alerts []ports.Alert
}

func (r *alertRecorder) Alert(a ports.Alert) {
	r.alerts = append(r.alerts, a)
}

func custom() widget.Settings {
	s := widget.DefaultSettings()
	s.FontSize = 22
	s.TextColor = "#336699"
	s.BorderRadius = 24
	return s
}

func TestInitWithoutInstancesRunsStandalone(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge()
	bridge.defaults = custom()
	c := New(bridge, nil, nil)
	require.Equal(t, StateLoading, c.State())

	require.NoError(t, c.Init(context.Background()))

	require.Equal(t, StateReady, c.State())
	require.True(t, c.Identity().IsStandalone())
	require.Equal(t, widget.DefaultID, c.Identity().ID())
	require.Equal(t, []string{"getAllWidgetIds", "getDefaultSettings"}, bridge.calls)
	require.Equal(t, custom(), c.Drafts().Draft())
	require.Equal(t, custom(), c.Drafts().Preview())
}

func TestInitBindsFirstInstance(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(9, 5)
	bridge.ids = map[string]int{"b": 9, "a": 5}
	bridge.widgets[5] = custom()
	c := New(bridge, nil, nil)

	require.NoError(t, c.Init(context.Background()))

	require.False(t, c.Identity().IsStandalone())
	require.Equal(t, 5, c.Identity().ID())
	require.Equal(t, []string{"getAllWidgetIds", "getWidgetSettings(5)"}, bridge.calls)
	require.Equal(t, custom(), c.Committed())
}

func TestInitEnumerationFailureFallsBackToStandalone(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(3)
	bridge.failures["getAllWidgetIds"] = errors.New("host unavailable")
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)

	require.NoError(t, c.Init(context.Background()))
	require.True(t, c.Identity().IsStandalone())
	require.Empty(t, alerts.alerts)
}

func TestDefaultLoadFailureKeepsLastKnownGood(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge()
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)

	bridge.failures["getDefaultSettings"] = errors.New("boom")
	require.NoError(t, c.Init(context.Background()))
	require.Equal(t, widget.DefaultSettings(), c.Drafts().Draft())

	delete(bridge.failures, "getDefaultSettings")
	bridge.defaults = custom()
	require.NoError(t, c.Reload(context.Background()))
	require.Equal(t, custom(), c.Drafts().Draft())

	bridge.failures["getDefaultSettings"] = errors.New("boom")
	require.NoError(t, c.Reload(context.Background()))
	require.Equal(t, custom(), c.Drafts().Draft())
	require.Empty(t, alerts.alerts)
}

func TestInstanceLoadFailureAlertsAndKeepsSettings(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(4)
	bridge.widgets[4] = custom()
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)
	require.NoError(t, c.Init(context.Background()))

	bridge.failures["getWidgetSettings(4)"] = errors.New("gone")
	err := c.LoadSettings(context.Background(), 4)

	var bridgeErr *qwerrors.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	require.Equal(t, 4, bridgeErr.WidgetID)
	require.Equal(t, custom(), c.Drafts().Draft())
	require.Len(t, alerts.alerts, 1)
	require.Equal(t, ports.AlertError, alerts.alerts[0].Kind)
	require.Equal(t, MsgLoadFailed, alerts.alerts[0].Message)
}

func TestCommitAppliesToAllWidgetsInOrder(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(5, 9)
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)
	require.NoError(t, c.Init(context.Background()))
	bridge.calls = nil

	require.NoError(t, c.Commit(context.Background(), custom()))

	require.Equal(t, []string{
		"updateDefaultSettings",
		"getAllWidgetIds",
		"updateWidgetSettings(5)",
		"forceUpdateWidget(5)",
		"updateWidgetSettings(9)",
		"forceUpdateWidget(9)",
	}, bridge.calls)
	require.Equal(t, custom(), bridge.defaults)
	require.Equal(t, custom(), bridge.widgets[9])
	require.Equal(t, custom(), c.Committed())
	require.False(t, c.Dirty())
	require.Len(t, alerts.alerts, 1)
	require.Equal(t, ports.AlertSuccess, alerts.alerts[0].Kind)
	require.Equal(t, MsgApplied, alerts.alerts[0].Message)
}

func TestCommitAbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(5, 9)
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)
	require.NoError(t, c.Init(context.Background()))

	_, err := c.Drafts().Set(widget.FieldFontSize, 30)
	require.NoError(t, err)
	edited := c.Drafts().Draft()
	bridge.calls = nil
	bridge.failures["updateWidgetSettings(5)"] = errors.New("write refused")

	err = c.CommitDraft(context.Background())

	var bridgeErr *qwerrors.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	require.Equal(t, "updateWidgetSettings", bridgeErr.Operation)
	require.Equal(t, 5, bridgeErr.WidgetID)
	require.Equal(t, []string{"updateDefaultSettings", "getAllWidgetIds", "updateWidgetSettings(5)"}, bridge.calls)
	require.NotContains(t, bridge.calls, "updateWidgetSettings(9)")

	require.Equal(t, edited, c.Drafts().Draft())
	require.Equal(t, edited, c.Drafts().Preview())
	require.True(t, c.Dirty())
	require.Len(t, alerts.alerts, 1)
	require.Equal(t, ports.AlertError, alerts.alerts[0].Kind)
	require.Equal(t, "Failed to apply theme: write refused", alerts.alerts[0].Message)
}

func TestCommitRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge()
	alerts := &alertRecorder{}
	c := New(bridge, alerts, nil)

	bad := widget.DefaultSettings()
	bad.FontSize = 99
	err := c.Commit(context.Background(), bad)

	var validationErr *qwerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Empty(t, bridge.calls)
	require.Len(t, alerts.alerts, 1)
}

func TestForceRefresh(t *testing.T) {
	t.Parallel()

	t.Run("bound refreshes its instance only", func(t *testing.T) {
		bridge := newFakeBridge(7, 8)
		c := New(bridge, nil, nil)
		require.NoError(t, c.Init(context.Background()))
		bridge.calls = nil

		require.NoError(t, c.ForceRefresh(context.Background()))
		require.Equal(t, []string{"forceUpdateWidget(7)"}, bridge.calls)
	})

	t.Run("standalone re-pushes defaults", func(t *testing.T) {
		bridge := newFakeBridge()
		bridge.defaults = custom()
		c := New(bridge, nil, nil)
		require.NoError(t, c.Init(context.Background()))
		bridge.ids = widget.IDMap([]int{2})
		bridge.calls = nil

		require.NoError(t, c.ForceRefresh(context.Background()))
		require.Equal(t, []string{"updateDefaultSettings", "getAllWidgetIds", "forceUpdateWidget(2)"}, bridge.calls)
		require.Equal(t, custom(), bridge.defaults)
	})

	t.Run("standalone skips pushing defaults it never loaded", func(t *testing.T) {
		bridge := newFakeBridge()
		bridge.failures["getDefaultSettings"] = errors.New("boom")
		c := New(bridge, nil, nil)
		require.NoError(t, c.Init(context.Background()))

		delete(bridge.failures, "getDefaultSettings")
		bridge.defaults = custom()
		bridge.ids = widget.IDMap([]int{2})
		bridge.calls = nil

		require.NoError(t, c.ForceRefresh(context.Background()))
		require.Equal(t, []string{"getAllWidgetIds", "forceUpdateWidget(2)"}, bridge.calls)
		require.Equal(t, custom(), bridge.defaults)
	})

	t.Run("failure alerts", func(t *testing.T) {
		bridge := newFakeBridge(7)
		alerts := &alertRecorder{}
		c := New(bridge, alerts, nil)
		require.NoError(t, c.Init(context.Background()))
		bridge.failures["forceUpdateWidget(7)"] = errors.New("asleep")

		err := c.ForceRefresh(context.Background())
		require.Error(t, err)
		require.Len(t, alerts.alerts, 1)
		require.Equal(t, "Failed to refresh widget: asleep", alerts.alerts[0].Message)
	})
}

func TestAccessorsAreSafeDuringCommit(t *testing.T) {
	t.Parallel()

	bridge := newFakeBridge(3, 4)
	c := New(bridge, nil, nil)
	require.NoError(t, c.Init(context.Background()))
	_, err := c.Drafts().Set(widget.FieldFontSize, 30)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var commitErr error
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if commitErr = c.CommitDraft(context.Background()); commitErr != nil {
				return
			}
			if commitErr = c.Reload(context.Background()); commitErr != nil {
				return
			}
		}
	}()

	for i := 0; i < 500; i++ {
		_ = c.Dirty()
		_ = c.Identity()
		_ = c.State()
		_ = c.Committed()
	}
	wg.Wait()

	require.NoError(t, commitErr)
	require.False(t, c.Dirty())
	require.Equal(t, 30, c.Committed().FontSize)
	require.Equal(t, StateReady, c.State())
}
