package store

import (
	"context"

	"github.com/Lucky-tech10/auto-mart-api/internal/model"

	"github.com/google/uuid"
)

// ResetTokenStore is the reset token collection view consumed by the
// service layer. Expired tokens are never swept in the background; the
// service purges them lazily on the reset paths.
type ResetTokenStore interface {
	CreateResetToken(ctx context.Context, userID uuid.UUID, email, tokenHash string) (*model.ResetToken, error)
	FindResetToken(ctx context.Context, email, tokenHash string) (*model.ResetToken, error)
	DeleteResetToken(ctx context.Context, tokenHash string) error
	PurgeExpiredTokens(ctx context.Context) int
}

// CreateResetToken inserts a reset token record keyed by the user id.
// Duplicates per user are allowed; consumption deletes only the matched
// record.
func (s *Store) CreateResetToken(_ context.Context, userID uuid.UUID, email, tokenHash string) (*model.ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	token := model.ResetToken{
		ID:        userID,
		Email:     email,
		TokenHash: tokenHash,
		CreatedOn: now,
		ExpiresAt: now.Add(model.ResetTokenTTL),
	}
	s.resetTokens = append(s.resetTokens, token)
	return &token, nil
}

// FindResetToken scans for a token record matching email and token hash
func (s *Store) FindResetToken(_ context.Context, email, tokenHash string) (*model.ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.resetTokens {
		if s.resetTokens[i].Email == email && s.resetTokens[i].TokenHash == tokenHash {
			t := s.resetTokens[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteResetToken removes the record holding the given token hash
func (s *Store) DeleteResetToken(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.resetTokens {
		if s.resetTokens[i].TokenHash == tokenHash {
			s.resetTokens = append(s.resetTokens[:i], s.resetTokens[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// PurgeExpiredTokens drops every token past its expiry and reports how
// many were removed.
func (s *Store) PurgeExpiredTokens(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.resetTokens[:0]
	removed := 0
	for _, t := range s.resetTokens {
		if t.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.resetTokens = kept
	return removed
}
