package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"
	"github.com/Lucky-tech10/auto-mart-api/internal/store"
	"github.com/Lucky-tech10/auto-mart-api/pkg/apperr"
	pkglog "github.com/Lucky-tech10/auto-mart-api/pkg/log"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenBytes is the entropy of a raw reset token; rendered as hex it
// becomes a 140 character string.
const resetTokenBytes = 70

// DTOs for request validation
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Address   string `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// AuthResponse pairs the issued token with the sanitized user
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// EmailSender dispatches outbound mail. Send failures are fatal for the
// request that triggered them; nothing retries.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// AuthService covers registration, login and the password reset flow
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type authService struct {
	users       store.UserStore
	tokens      store.ResetTokenStore
	mailer      EmailSender
	jwtSecret   []byte
	jwtLifetime time.Duration
	frontendURL string
	logger      pkglog.Logger
}

// NewAuthService wires the auth flows against the store and collaborators
func NewAuthService(users store.UserStore, tokens store.ResetTokenStore, mailer EmailSender, jwtSecret []byte, jwtLifetime time.Duration, frontendURL string, logger pkglog.Logger) AuthService {
	return &authService{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		jwtSecret:   jwtSecret,
		jwtLifetime: jwtLifetime,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.BadRequest("Email already exists")
	}

	// First account ever registered becomes the admin
	role := model.RoleUser
	if s.users.CountUsers(ctx) == 0 {
		role = model.RoleAdmin
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		Address:   req.Address,
		Role:      role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	// Unknown email and wrong password must be indistinguishable
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// RequestPasswordReset always succeeds from the caller's point of view,
// whether or not the email belongs to an account. Only a failing mail
// dispatch surfaces as an error.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil
	}

	s.tokens.PurgeExpiredTokens(ctx)

	rawToken, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	if _, err := s.tokens.CreateResetToken(ctx, user.ID, user.Email, hashResetToken(rawToken)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s", s.frontendURL, rawToken, user.Email)
	html := fmt.Sprintf(`<p>Click <a href="%s">here</a> to reset your password. The link expires in 15 minutes.</p>`, resetURL)
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", html); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("reset email dispatch failed")
		return fmt.Errorf("send reset email: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("password reset requested")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	s.tokens.PurgeExpiredTokens(ctx)

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return apperr.NotFound("User not found")
	}

	token, err := s.tokens.FindResetToken(ctx, req.Email, hashResetToken(req.Token))
	if err != nil || token.Expired(time.Now()) {
		return apperr.Unauthenticated("Invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdateUserPassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}

	// Single use: a consumed token must never verify again
	return s.tokens.DeleteResetToken(ctx, token.TokenHash)
}

func (s *authService) signToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   jwt.NewNumericDate(time.Now().Add(s.jwtLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// hashResetToken hashes raw tokens for storage. Reset tokens exceed
// bcrypt's input cap, and being high-entropy they need no slow hash.
func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
