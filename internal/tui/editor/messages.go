package editor

import "github.com/alexisbeaulieu97/quotewidget/internal/ports"

// AlertMsg delivers a controller alert to the model.
type AlertMsg ports.Alert

type appliedMsg struct{ err error }

type reloadedMsg struct{ err error }

type refreshedMsg struct{ err error }

// AlertQueue is a ports.Alerter that buffers alerts for the editor, which
// receives them as AlertMsg.
type AlertQueue struct {
	ch chan ports.Alert
}

// NewAlertQueue creates an AlertQueue.
func NewAlertQueue() *AlertQueue {
	return &AlertQueue{ch: make(chan ports.Alert, 16)}
}

// Alert implements ports.Alerter. Alerts are dropped when the buffer is full.
func (q *AlertQueue) Alert(a ports.Alert) {
	select {
	case q.ch <- a:
	default:
	}
}

// C returns the receive side of the queue.
func (q *AlertQueue) C() <-chan ports.Alert {
	return q.ch
}
