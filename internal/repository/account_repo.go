package repository

import (
	"context"
	"strings"
	"time"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"column:role;index"`
	FirstName    string     `gorm:"column:first_name"`
	LastName     string     `gorm:"column:last_name"`
	Phone        *string    `gorm:"column:phone;uniqueIndex"`
	BusinessName *string    `gorm:"column:business_name"`
	Verified     bool       `gorm:"column:verified"`
	EmailToken   *string    `gorm:"column:email_token;index"`
	OTPHash      *string    `gorm:"column:otp_hash"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (accountModel) TableName() string { return "accounts" }

func toDomainAccount(m accountModel) *domain.Account {
	var phone, business, token, otpHash string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.BusinessName != nil {
		business = *m.BusinessName
	}
	if m.EmailToken != nil {
		token = *m.EmailToken
	}
	if m.OTPHash != nil {
		otpHash = *m.OTPHash
	}

	return &domain.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.AccountRole(m.Role),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        phone,
		BusinessName: business,
		Verified:     m.Verified,
		EmailToken:   token,
		OTPHash:      otpHash,
		OTPExpiresAt: m.OTPExpiresAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAccountModel(a *domain.Account) accountModel {
	email := strings.TrimSpace(strings.ToLower(a.Email))

	return accountModel{
		ID:           a.ID,
		Email:        email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        nullableString(a.Phone),
		BusinessName: nullableString(a.BusinessName),
		Verified:     a.Verified,
		EmailToken:   nullableString(a.EmailToken),
		OTPHash:      nullableString(a.OTPHash),
		OTPExpiresAt: a.OTPExpiresAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) GetByEmailToken(ctx context.Context, token string) (*domain.Account, error) {
	var m accountModel
	tx := r.db.WithContext(ctx).Where("email_token = ?", token).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

// ExistsByEmailOrPhone backs duplicate-registration checks: one account
// per email and per phone number, regardless of role.
func (r *AccountRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&accountModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if phone = strings.TrimSpace(phone); phone != "" {
		q = r.db.WithContext(ctx).Model(&accountModel{}).
			Where("LOWER(email) = ? OR phone = ?", strings.ToLower(strings.TrimSpace(email)), phone)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	return r.db.WithContext(ctx).Save(&m).Error
}

func nullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
