package repository

import (
	"context"
	"time"

	"courtwatch/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                string     `gorm:"column:id;primaryKey"`
	UserID            int64      `gorm:"column:user_id;index"`
	VenueID           string     `gorm:"column:venue_id;index"`
	CourtNumber       int        `gorm:"column:court_number"`
	Date              time.Time  `gorm:"column:date"`
	TimeSlot          string     `gorm:"column:time_slot"`
	Status            string     `gorm:"column:status;index"`
	ScheduledFor      *time.Time `gorm:"column:scheduled_for"`
	AutoCancelEnabled bool       `gorm:"column:auto_cancel_enabled"`
	AutoRebookEnabled bool       `gorm:"column:auto_rebook_enabled"`
	CancelReason      *string    `gorm:"column:cancel_reason"`
	Cost              int        `gorm:"column:cost"`
	RecurringGroupID  *string    `gorm:"column:recurring_group_id;index"`
	RecurringIndex    int        `gorm:"column:recurring_index"`
	RecurringTotal    int        `gorm:"column:recurring_total"`
	AccountID         *string    `gorm:"column:account_id"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
	CancelledAt       *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:                m.ID,
		UserID:            m.UserID,
		VenueID:           m.VenueID,
		CourtNumber:       m.CourtNumber,
		Date:              m.Date,
		TimeSlot:          m.TimeSlot,
		Status:            domain.BookingStatus(m.Status),
		ScheduledFor:      m.ScheduledFor,
		AutoCancelEnabled: m.AutoCancelEnabled,
		AutoRebookEnabled: m.AutoRebookEnabled,
		Cost:              m.Cost,
		RecurringIndex:    m.RecurringIndex,
		RecurringTotal:    m.RecurringTotal,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		CancelledAt:       m.CancelledAt,
	}
	if m.CancelReason != nil {
		b.CancelReason = domain.CancelReason(*m.CancelReason)
	}
	if m.RecurringGroupID != nil {
		b.RecurringGroupID = *m.RecurringGroupID
	}
	if m.AccountID != nil {
		b.AccountID = *m.AccountID
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:                b.ID,
		UserID:            b.UserID,
		VenueID:           b.VenueID,
		CourtNumber:       b.CourtNumber,
		Date:              b.Date,
		TimeSlot:          b.TimeSlot,
		Status:            string(b.Status),
		ScheduledFor:      b.ScheduledFor,
		AutoCancelEnabled: b.AutoCancelEnabled,
		AutoRebookEnabled: b.AutoRebookEnabled,
		Cost:              b.Cost,
		RecurringIndex:    b.RecurringIndex,
		RecurringTotal:    b.RecurringTotal,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		CancelledAt:       b.CancelledAt,
	}
	if b.CancelReason != domain.CancelNone {
		v := string(b.CancelReason)
		m.CancelReason = &v
	}
	if b.RecurringGroupID != "" {
		v := b.RecurringGroupID
		m.RecurringGroupID = &v
	}
	if b.AccountID != "" {
		v := b.AccountID
		m.AccountID = &v
	}
	return m
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Create(&m).Error
}

// CreateBatch inserts a recurring series atomically: either every
// sibling lands or none do.
func (r *BookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range bookings {
			m := toBookingModel(b)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, time_slot ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListGroup(ctx context.Context, groupID string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("recurring_group_id = ?", groupID).
		Order("recurring_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListMonitorable returns every booking the monitor engine must look at:
// all non-terminal rows, plus availability-reason cancellations that
// opted into auto-rebook.
func (r *BookingRepository) ListMonitorable(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{
			string(domain.BookingScheduled),
			string(domain.BookingWatching),
			string(domain.BookingBooked),
		}).
		Or("status = ? AND cancel_reason = ? AND auto_rebook_enabled = ?",
			string(domain.BookingCancelled), string(domain.CancelAvailability), true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
