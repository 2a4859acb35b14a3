package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/errs"
	"github.com/techblog-api/internal/models"
	"github.com/techblog-api/internal/repository"
	"github.com/techblog-api/internal/session"
	"github.com/techblog-api/internal/validation"
)

// DemoPassword is accepted for every known username. There is no real
// credential store.
const DemoPassword = "123456"

// authService is the concrete implementation of AuthService
type authService struct {
	repos    *repository.Repositories
	sessions session.Store
	delay    time.Duration
	log      zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(repos *repository.Repositories, sessions session.Store, delay time.Duration, log zerolog.Logger) *authService {
	return &authService{
		repos:    repos,
		sessions: sessions,
		delay:    delay,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// Login checks the demo credentials after the configured delay and opens
// a session
func (s *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || password != DemoPassword {
		s.log.Warn().Str("username", username).Msg("Login rejected")
		return nil, errs.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User signed in")
	return sess, nil
}

func (s *authService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Logout ends the session; signing out twice is not an error
func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if sess.User != nil {
		s.log.Info().Str("username", sess.User.Username).Msg("User signed out")
	}
	return nil
}

// Current returns the signed-in user
func (s *authService) Current(ctx context.Context, sess *session.Session) (*models.User, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}
	u := *user
	return &u, nil
}

// UpdateProfile merges the update into the signed-in user and saves it to
// both the user store and the session
func (s *authService) UpdateProfile(ctx context.Context, sess *session.Session, update *models.ProfileUpdate) (*models.User, error) {
	user, err := requireUser(sess)
	if err != nil {
		return nil, err
	}

	validator := validation.NewValidator()
	if verrs := validator.ValidateProfile(update); len(verrs) > 0 {
		return nil, errs.NewValidationErr(verrs)
	}

	updated := update.Apply(*user)
	if err := s.repos.User.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	sess.User = &updated
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.log.Info().Str("username", updated.Username).Msg("Profile updated")
	u := updated
	return &u, nil
}
