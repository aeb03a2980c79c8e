package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"

	"rental-backend/internal/auth"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "RentalManager"

var (
	ErrNoTOTPSecret    = errors.New("2FA setup not initiated")
	ErrInvalidTOTPCode = errors.New("invalid verification code")
	ErrTOTPNotEnabled  = errors.New("2FA is not enabled")
	ErrInvalidPassword = errors.New("invalid password")
)

type TOTPService struct {
	UserRepo *repositories.UserRepository
	Repo     *repositories.TOTPRepository
}

func NewTOTPService(userRepo *repositories.UserRepository, repo *repositories.TOTPRepository) *TOTPService {
	return &TOTPService{UserRepo: userRepo, Repo: repo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user. The
// secret stays unconfirmed until the first code verifies.
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SaveSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable confirms the pending secret with a first code and turns
// 2FA on for the account.
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	secret, _, err := s.Repo.GetSecret(ctx, userID)
	if err != nil {
		return ErrNoTOTPSecret
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Repo.Confirm(ctx, userID); err != nil {
		return err
	}
	return s.UserRepo.SetTOTPEnabled(ctx, userID, true)
}

// Verify validates a TOTP code during login step 2.
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) error {
	secret, confirmed, err := s.Repo.GetSecret(ctx, userID)
	if err != nil || !confirmed {
		return ErrTOTPNotEnabled
	}
	if !totp.Validate(code, secret) {
		return ErrInvalidTOTPCode
	}
	return nil
}

// Disable turns 2FA off after checking the password and a current code.
func (s *TOTPService) Disable(ctx context.Context, userID int, password, code string) error {
	user, err := s.UserRepo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return ErrInvalidPassword
	}
	if err := s.Verify(ctx, userID, code); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.UserRepo.SetTOTPEnabled(ctx, userID, false)
}
