package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"jobcompass/internal/models"

	"gorm.io/gorm"
)

// Dates are calendar dates, parsed once in UTC; month/year bucket keys are
// derived from these stored fields, never from the request clock.
const dateLayout = "2006-01-02"

type CreateApplicationInput struct {
	JobURL            string
	JobTitle          string
	Company           string
	Location          string
	DateOfApplication string
	Status            string
}

// UpdateApplicationInput is a partial patch: nil fields keep their prior
// values. The whole patch is applied as one write.
type UpdateApplicationInput struct {
	JobURL            *string
	JobTitle          *string
	Company           *string
	Location          *string
	DateOfApplication *string
	Status            *string
}

type ListOptions struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
	PageSize  int
}

type ApplicationService struct {
	db        *gorm.DB
	logger    *slog.Logger
	notifier  *NotifierService
	analytics *AnalyticsService
}

func NewApplicationService(db *gorm.DB, logger *slog.Logger, notifier *NotifierService, analytics *AnalyticsService) *ApplicationService {
	return &ApplicationService{
		db:        db,
		logger:    logger,
		notifier:  notifier,
		analytics: analytics,
	}
}

func validateRequired(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return invalidField(field, "is required")
	}
	return nil
}

func parseApplicationDate(value string) (time.Time, *ValidationError) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, invalidField("date_of_application", "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func (s *ApplicationService) Create(userID uint, in CreateApplicationInput) (*models.JobApplication, error) {
	if verr := validateRequired("job_title", in.JobTitle); verr != nil {
		return nil, verr
	}
	if verr := validateRequired("company", in.Company); verr != nil {
		return nil, verr
	}
	if verr := validateRequired("date_of_application", in.DateOfApplication); verr != nil {
		return nil, verr
	}
	date, verr := parseApplicationDate(in.DateOfApplication)
	if verr != nil {
		return nil, verr
	}

	status := in.Status
	if status == "" {
		status = models.StatusApplied
	}
	if !models.ValidStatus(status) {
		return nil, invalidField("status", "must be one of Applied, In Review, Interview, Rejected")
	}

	app := models.JobApplication{
		UserID:            userID,
		JobURL:            strings.TrimSpace(in.JobURL),
		JobTitle:          strings.TrimSpace(in.JobTitle),
		Company:           strings.TrimSpace(in.Company),
		Location:          strings.TrimSpace(in.Location),
		DateOfApplication: date,
		Status:            status,
	}

	if err := s.db.Create(&app).Error; err != nil {
		return nil, err
	}

	s.analytics.Invalidate(userID)
	s.notifier.Publish(ChangeEvent{
		UserID: userID,
		Action: ActionApplicationCreated,
		Fields: []string{"job_title", "company", "status"},
		Detail: app.JobTitle + " at " + app.Company,
	})

	return &app, nil
}

func (s *ApplicationService) Get(userID, id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Update(userID, id uint, in UpdateApplicationInput) (*models.JobApplication, error) {
	updates := map[string]interface{}{}
	var changed []string

	if in.JobTitle != nil {
		if verr := validateRequired("job_title", *in.JobTitle); verr != nil {
			return nil, verr
		}
		updates["job_title"] = strings.TrimSpace(*in.JobTitle)
		changed = append(changed, "job_title")
	}
	if in.Company != nil {
		if verr := validateRequired("company", *in.Company); verr != nil {
			return nil, verr
		}
		updates["company"] = strings.TrimSpace(*in.Company)
		changed = append(changed, "company")
	}
	if in.JobURL != nil {
		updates["job_url"] = strings.TrimSpace(*in.JobURL)
		changed = append(changed, "job_url")
	}
	if in.Location != nil {
		updates["location"] = strings.TrimSpace(*in.Location)
		changed = append(changed, "location")
	}
	if in.DateOfApplication != nil {
		date, verr := parseApplicationDate(*in.DateOfApplication)
		if verr != nil {
			return nil, verr
		}
		updates["date_of_application"] = date
		changed = append(changed, "date_of_application")
	}
	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, invalidField("status", "must be one of Applied, In Review, Interview, Rejected")
		}
		updates["status"] = *in.Status
		changed = append(changed, "status")
	}

	app, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return app, nil
	}

	// Single Updates call: the patch lands atomically, not field-by-field.
	if err := s.db.Model(app).Updates(updates).Error; err != nil {
		return nil, err
	}

	app, err = s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	s.analytics.Invalidate(userID)
	s.notifier.Publish(ChangeEvent{
		UserID: userID,
		Action: ActionApplicationUpdated,
		Fields: changed,
		Detail: app.JobTitle + " at " + app.Company,
	})

	return app, nil
}

// SetStatus moves an application to any of the four statuses. All
// transitions are allowed, including a status to itself; hiring pipelines
// move backwards in real life.
func (s *ApplicationService) SetStatus(userID, id uint, status string) (*models.JobApplication, error) {
	if !models.ValidStatus(status) {
		return nil, invalidField("status", "must be one of Applied, In Review, Interview, Rejected")
	}

	app, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(app).Updates(map[string]interface{}{"status": status}).Error; err != nil {
		return nil, err
	}
	app.Status = status

	s.analytics.Invalidate(userID)
	s.notifier.Publish(ChangeEvent{
		UserID: userID,
		Action: ActionStatusChanged,
		Fields: []string{"status"},
		Detail: app.JobTitle + " at " + app.Company + " is now " + status,
	})

	return app, nil
}

func (s *ApplicationService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.JobApplication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.analytics.Invalidate(userID)
	return nil
}

// List returns one page of the owner's applications plus the post-filter,
// pre-pagination total. An out-of-range page yields an empty slice.
func (s *ApplicationService) List(userID uint, opts ListOptions) ([]models.JobApplication, int64, error) {
	query := s.db.Model(&models.JobApplication{}).Where("user_id = ?", userID)

	if search := strings.TrimSpace(opts.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(job_title) LIKE ? OR LOWER(company) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Only date ordering is supported; anything else passes through unsorted.
	if opts.SortField == "date_of_application" {
		switch opts.SortOrder {
		case "asc":
			query = query.Order("date_of_application asc")
		case "desc":
			query = query.Order("date_of_application desc")
		}
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	var apps []models.JobApplication
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// DeleteAllForUser removes every application owned by userID inside the
// given transaction. Used by account deletion.
func (s *ApplicationService) DeleteAllForUser(tx *gorm.DB, userID uint) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.JobApplication{}).Error; err != nil {
		return err
	}
	s.analytics.Invalidate(userID)
	return nil
}
