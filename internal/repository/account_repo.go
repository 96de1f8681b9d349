package repository

import (
	"context"
	"time"

	"courtwatch/internal/domain"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID       string     `gorm:"column:id;primaryKey"`
	UserID   int64      `gorm:"column:user_id;index"`
	Name     string     `gorm:"column:name"`
	Username string     `gorm:"column:username"`
	Password string     `gorm:"column:password"`
	Status   string     `gorm:"column:status"`
	LastUsed *time.Time `gorm:"column:last_used"`
	AddedAt  time.Time  `gorm:"column:added_at"`
}

func (accountModel) TableName() string { return "connected_accounts" }

func toDomainAccount(m accountModel) *domain.ConnectedAccount {
	return &domain.ConnectedAccount{
		ID:       m.ID,
		UserID:   m.UserID,
		Name:     m.Name,
		Username: m.Username,
		Password: m.Password,
		Status:   domain.AccountStatus(m.Status),
		LastUsed: m.LastUsed,
		AddedAt:  m.AddedAt,
	}
}

func toAccountModel(a *domain.ConnectedAccount) accountModel {
	return accountModel{
		ID:       a.ID,
		UserID:   a.UserID,
		Name:     a.Name,
		Username: a.Username,
		Password: a.Password,
		Status:   string(a.Status),
		LastUsed: a.LastUsed,
		AddedAt:  a.AddedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.ConnectedAccount) error {
	m := toAccountModel(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.ConnectedAccount, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ConnectedAccount, error) {
	var rows []accountModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ConnectedAccount, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAccount(m))
	}
	return out, nil
}

// ListActive returns usable accounts ordered least-recently-used first,
// NULL last_used (never used) ahead of everything.
func (r *AccountRepository) ListActive(ctx context.Context) ([]domain.ConnectedAccount, error) {
	var rows []accountModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.AccountActive)).
		Order("last_used ASC NULLS FIRST").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ConnectedAccount, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAccount(m))
	}
	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.ConnectedAccount) error {
	m := toAccountModel(a)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *AccountRepository) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("id = ?", id).
		Update("last_used", at).Error
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&accountModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
