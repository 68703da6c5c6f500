package orchestrators

import (
	"context"
	"log/slog"

	"academy/internal/application/store"
	"academy/internal/domain/settings"
)

// ExecuteSaveSettings replaces the academy settings.
// PRE: s passes Validate
// POST: Settings replaced wholesale; fields left blank in s are blank afterwards
func ExecuteSaveSettings(ctx context.Context, s settings.Settings, st store.Dispatcher) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.Dispatch(ctx, store.ReplaceSettings{Settings: s})
	slog.InfoContext(ctx, "settings_event", "event", "settings_saved", "academy_name", s.AcademyName, "reminder_day", s.PaymentReminderDay)
	return nil
}
