// Package notify delivers engine events to the user-facing side. The
// original UI showed toasts; the shipped adapter logs structured events
// instead, and callers embed their own Notifier when they render.
package notify

import (
	"log/slog"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
)

var _ port.Notifier = (*LogNotifier)(nil)

type LogNotifier struct{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Notify(e domain.Event) {
	slog.Info(e.Message,
		"event", string(e.Kind),
		"eventID", e.ID.String(),
		"productID", e.ProductID,
	)
}
