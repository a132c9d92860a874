package services

import (
	"errors"
	"log/slog"
	"strings"

	"jobcompass/internal/models"
	"jobcompass/pkg/utils"

	"gorm.io/gorm"
)

const minPasswordLength = 6

type UpdateSettingsInput struct {
	Name              *string
	Email             *string
	Theme             *string
	WeeklyReminder    *bool
	MonthlyReminder   *bool
	EmailNotification *bool

	CurrentPassword string
	NewPassword     *string

	// SendChangeNotification defaults to true when nil.
	SendChangeNotification *bool
}

type SettingsService struct {
	db       *gorm.DB
	logger   *slog.Logger
	notifier *NotifierService
}

func NewSettingsService(db *gorm.DB, logger *slog.Logger, notifier *NotifierService) *SettingsService {
	return &SettingsService{
		db:       db,
		logger:   logger,
		notifier: notifier,
	}
}

// ValidatePassword checks a candidate password. The changing flag says
// whether the field is actually being modified; an untouched password is
// never re-validated.
func ValidatePassword(candidate string, changing bool) *ValidationError {
	if !changing {
		return nil
	}
	if len(candidate) < minPasswordLength {
		return invalidField("password", "must be at least 6 characters long")
	}
	return nil
}

func (s *SettingsService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *SettingsService) Update(userID uint, in UpdateSettingsInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	var changed []string

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" && *in.Name != user.Name {
		updates["name"] = strings.TrimSpace(*in.Name)
		changed = append(changed, "name")
	}

	if in.Email != nil && strings.TrimSpace(*in.Email) != "" && *in.Email != user.Email {
		email := strings.TrimSpace(*in.Email)
		// Email uniqueness is global; check before any write.
		var existing models.User
		err := s.db.Where("email = ? AND id <> ?", email, userID).First(&existing).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = email
		changed = append(changed, "email")
	}

	if in.NewPassword != nil {
		if in.CurrentPassword == "" {
			return nil, invalidField("current_password", "is required to change password")
		}
		if !utils.CheckPasswordHash(in.CurrentPassword, user.PasswordHash) {
			return nil, ErrWrongPassword
		}
		if verr := ValidatePassword(*in.NewPassword, true); verr != nil {
			return nil, verr
		}
		hash, err := utils.HashPassword(*in.NewPassword)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
		changed = append(changed, "password")
	}

	if in.Theme != nil {
		if !models.ValidTheme(*in.Theme) {
			return nil, invalidField("theme", "must be light or dark")
		}
		updates["theme"] = *in.Theme
		changed = append(changed, "theme")
	}
	if in.WeeklyReminder != nil {
		updates["weekly_reminder"] = *in.WeeklyReminder
		changed = append(changed, "weekly_reminder")
	}
	if in.MonthlyReminder != nil {
		updates["monthly_reminder"] = *in.MonthlyReminder
		changed = append(changed, "monthly_reminder")
	}
	if in.EmailNotification != nil {
		updates["email_notification"] = *in.EmailNotification
		changed = append(changed, "email_notification")
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	notify := in.SendChangeNotification == nil || *in.SendChangeNotification
	if notify {
		s.notifier.Publish(ChangeEvent{
			UserID: userID,
			Action: ActionSettingsChanged,
			Fields: changed,
			Detail: "Your account settings have been updated.",
		})
	}

	return user, nil
}

// SetProfilePicture stores the URL handed back by the image store.
func (s *SettingsService) SetProfilePicture(userID uint, url string) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Updates(map[string]interface{}{"profile_picture": url}).Error; err != nil {
		return nil, err
	}
	return user, nil
}
