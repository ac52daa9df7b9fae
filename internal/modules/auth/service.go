package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"staybook/internal/domain"
	"staybook/internal/pkg/mailer"
	"staybook/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

type jwtService interface {
	GenerateToken(accountID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	accounts  AccountRepositoryInterface
	jwt       jwtService
	mailer    mailer.Mailer
	otpPepper string
	otpTTL    time.Duration
}

type LoginResult struct {
	Account *domain.Account
	Token   string
}

func NewService(
	accounts AccountRepositoryInterface,
	jwt jwtService,
	m mailer.Mailer,
	otpPepper string,
	otpTTL time.Duration,
) *Service {
	return &Service{
		accounts:  accounts,
		jwt:       jwt,
		mailer:    m,
		otpPepper: otpPepper,
		otpTTL:    otpTTL,
	}
}

func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.Account, error) {
	return s.register(ctx, &domain.Account{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      domain.RoleCustomer,
	}, req.Password)
}

func (s *Service) RegisterVendor(ctx context.Context, req RegisterVendorRequest) (*domain.Account, error) {
	return s.register(ctx, &domain.Account{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		Role:         domain.RoleVendor,
	}, req.Password)
}

func (s *Service) register(ctx context.Context, account *domain.Account, password string) (*domain.Account, error) {
	exists, err := s.accounts.ExistsByEmailOrPhone(ctx, account.Email, account.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token, err := generateEmailToken()
	if err != nil {
		return nil, err
	}

	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	account.PasswordHash = string(hash)
	account.EmailToken = token
	account.Verified = false

	if fields := validator.Validate(account); fields != nil {
		return nil, ErrValidation
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	// Best-effort delivery: a lost email can be replayed via the OTP
	// flow, so it never fails registration.
	if err := s.mailer.SendVerificationLink(ctx, account.Email, token); err != nil {
		log.Printf("auth: verification mail failed account_id=%d err=%v", account.ID, err)
	}

	account.PasswordHash = ""
	return account, nil
}

// VerifyEmail flips the account to verified given the token that was
// mailed at registration time.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*domain.Account, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}

	account, err := s.accounts.GetByEmailToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	account.Verified = true
	account.EmailToken = ""
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return account, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.Verified {
		return nil, ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return &LoginResult{Account: account, Token: token}, nil
}

// RequestOTP stores a peppered hash of a fresh 6-digit code and mails
// the code. Unknown emails get the same silent acceptance so the
// endpoint cannot be used to enumerate accounts.
func (s *Service) RequestOTP(ctx context.Context, email string) error {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("auth: otp request for unknown email (masked)")
			return nil
		}
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	expires := time.Now().Add(s.otpTTL)
	account.OTPHash = hashOTP(code, s.otpPepper)
	account.OTPExpiresAt = &expires
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, account.Email, code); err != nil {
		log.Printf("auth: otp mail failed account_id=%d err=%v", account.ID, err)
	}
	return nil
}

// VerifyOTP logs a user in with the mailed code. A correct code also
// proves mailbox ownership, so it marks the account verified.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (*LoginResult, error) {
	if !codeRegex.MatchString(strings.TrimSpace(code)) {
		return nil, ErrInvalidOTP
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}

	if account.OTPHash == "" || account.OTPExpiresAt == nil {
		return nil, ErrInvalidOTP
	}
	if account.OTPExpiresAt.Before(time.Now()) {
		return nil, ErrOTPExpired
	}
	if hashOTP(strings.TrimSpace(code), s.otpPepper) != account.OTPHash {
		return nil, ErrInvalidOTP
	}

	account.OTPHash = ""
	account.OTPExpiresAt = nil
	account.Verified = true
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return &LoginResult{Account: account, Token: token}, nil
}

func (s *Service) GetCurrentAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}

func generateEmailToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashOTP(code, pepper string) string {
	sum := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(sum[:])
}
