package account

import (
	"context"

	infrarepo "github.com/autoconnect/backend/infra/repository"
	"github.com/autoconnect/backend/pkg/domain/account"
	repo "github.com/autoconnect/backend/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository backed by GORM.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository. The record is validated again so an
// invalid account never reaches the database.
func (r *repository) Create(ctx context.Context, acc *account.BankAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	return infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Create(fromDomain(acc)).Error
	})
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*account.BankAccount, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

// List implements account.Repository.
func (r *repository) List(ctx context.Context) ([]*account.BankAccount, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByUser implements account.Repository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.BankAccount, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *repository) find(tx *gorm.DB) ([]*account.BankAccount, error) {
	var rows []Account
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]*account.BankAccount, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, acc *account.BankAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", acc.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(fromDomain(acc))
	return infrarepo.RequireAffected(tx)
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return infrarepo.RequireAffected(r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id))
}
