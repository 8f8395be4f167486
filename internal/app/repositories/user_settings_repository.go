package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/app/models"
)

// UserSettingsRepository handles database operations for user preferences.
// Settings are keyed by user, one row per user.
type UserSettingsRepository struct {
	db *pgxpool.Pool
}

// NewUserSettingsRepository creates a new user settings repository
func NewUserSettingsRepository(db *pgxpool.Pool) *UserSettingsRepository {
	return &UserSettingsRepository{db: db}
}

const userSettingsColumns = `setting_id, user_id, email_notifications,
	push_notifications, calendar_reminders, assignment_deadlines,
	sync_google_calendar, calendar_default_view, timezone, theme, language,
	colorblind_mode, dyslexia_font, profile_visibility, share_schedule,
	created_at, updated_at`

func scanUserSettings(row pgx.Row, s *models.UserSettings) error {
	return row.Scan(
		&s.SettingID,
		&s.UserID,
		&s.EmailNotifications,
		&s.PushNotifications,
		&s.CalendarReminders,
		&s.AssignmentDeadlines,
		&s.SyncGoogleCalendar,
		&s.CalendarDefaultView,
		&s.Timezone,
		&s.Theme,
		&s.Language,
		&s.ColorblindMode,
		&s.DyslexiaFont,
		&s.ProfileVisibility,
		&s.ShareSchedule,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// GetByUserID retrieves a user's settings. Returns (nil, nil) when the user
// has no settings row yet.
func (r *UserSettingsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserSettings, error) {
	var s models.UserSettings
	err := scanUserSettings(
		r.db.QueryRow(ctx, `SELECT `+userSettingsColumns+` FROM user_settings WHERE user_id = $1`, userID),
		&s,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user settings: %w", err)
	}

	return &s, nil
}

// GetOrCreate returns the user's settings, creating the default row first
// when none exists
func (r *UserSettingsRepository) GetOrCreate(ctx context.Context, userID int64) (*models.UserSettings, error) {
	settings, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = models.DefaultUserSettings(userID)
	if err := r.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Create inserts a settings row and assigns the generated ID onto the input
func (r *UserSettingsRepository) Create(ctx context.Context, s *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, email_notifications, push_notifications,
		                           calendar_reminders, assignment_deadlines,
		                           sync_google_calendar, calendar_default_view,
		                           timezone, theme, language, colorblind_mode,
		                           dyslexia_font, profile_visibility, share_schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING setting_id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		s.UserID,
		s.EmailNotifications,
		s.PushNotifications,
		s.CalendarReminders,
		s.AssignmentDeadlines,
		s.SyncGoogleCalendar,
		s.CalendarDefaultView,
		s.Timezone,
		s.Theme,
		s.Language,
		s.ColorblindMode,
		s.DyslexiaFont,
		s.ProfileVisibility,
		s.ShareSchedule,
	).Scan(&s.SettingID, &s.CreatedAt, &s.UpdatedAt)
}

// Update updates a user's settings keyed by user ID and reports whether a
// row was affected
func (r *UserSettingsRepository) Update(ctx context.Context, s *models.UserSettings) (bool, error) {
	query := `
		UPDATE user_settings
		SET email_notifications = $1, push_notifications = $2,
		    calendar_reminders = $3, assignment_deadlines = $4,
		    sync_google_calendar = $5, calendar_default_view = $6,
		    timezone = $7, theme = $8, language = $9, colorblind_mode = $10,
		    dyslexia_font = $11, profile_visibility = $12, share_schedule = $13,
		    updated_at = now()
		WHERE user_id = $14
	`

	cmdTag, err := r.db.Exec(ctx, query,
		s.EmailNotifications,
		s.PushNotifications,
		s.CalendarReminders,
		s.AssignmentDeadlines,
		s.SyncGoogleCalendar,
		s.CalendarDefaultView,
		s.Timezone,
		s.Theme,
		s.Language,
		s.ColorblindMode,
		s.DyslexiaFont,
		s.ProfileVisibility,
		s.ShareSchedule,
		s.UserID,
	)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a user's settings row and reports whether a row was affected
func (r *UserSettingsRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM user_settings WHERE user_id = $1`, userID)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}
