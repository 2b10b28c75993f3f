package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

func sessionKey(id string) string {
	return "session:" + id
}

func sessionRevokedKey(userID string) string {
	return "session_revoked:" + userID
}

func sessionChannel(userID string) string {
	return "session:" + userID
}

type AuthService struct {
	users   UserStore
	kv      libs.KV
	pubsub  libs.PubSub
	tokens  *utils.TokenIssuer
	mailer  libs.Mailer
	limiter *loginLimiter
	group   singleflight.Group
	now     func() time.Time
}

func NewAuthService(users UserStore, kv libs.KV, pubsub libs.PubSub, tokens *utils.TokenIssuer, mailer libs.Mailer, loginPerMinute int) *AuthService {
	if mailer == nil {
		mailer = libs.NopMailer{}
	}
	return &AuthService{
		users:   users,
		kv:      kv,
		pubsub:  pubsub,
		tokens:  tokens,
		mailer:  mailer,
		limiter: newLoginLimiter(loginPerMinute),
		now:     time.Now,
	}
}

func (s *AuthService) SignUp(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	email, err := utils.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.users.FindAccountByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailInUse
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{Email: email, Password: hashedPassword}
	if err := s.users.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	now := s.now()
	profile, err := s.users.CreateProfile(ctx, &models.User{
		ID:          account.ID,
		Email:       email,
		DisplayName: strings.TrimSpace(req.DisplayName),
		CreatedAt:   now,
		LastLoginAt: &now,
	})
	if err != nil {
		return nil, err
	}

	session, err := s.startSession(ctx, *profile)
	if err != nil {
		return nil, err
	}

	go func(email, name string) {
		if err := s.mailer.SendWelcome(email, name); err != nil {
			log.Printf("[Auth] welcome email to %s failed: %v", email, err)
		}
	}(profile.Email, profile.DisplayName)

	return session, nil
}

// SignIn checks the credentials and opens a session. Concurrent attempts
// with the same credentials share one result.
func (s *AuthService) SignIn(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	email, err := utils.NormalizeEmail(req.Email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if !s.limiter.Allow(email) {
		return nil, models.ErrTooManyRequests
	}

	sum := sha256.Sum256([]byte(req.Password))
	key := email + "|" + hex.EncodeToString(sum[:])

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.signIn(ctx, email, req.Password)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Session), nil
}

func (s *AuthService) signIn(ctx context.Context, email, password string) (*models.Session, error) {
	account, err := s.users.FindAccountByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(account.Password, password)
	if err != nil || !valid {
		return nil, models.ErrInvalidCredentials
	}
	if account.Disabled {
		return nil, models.ErrAccountDisabled
	}

	now := s.now()
	profile, err := s.users.GetProfile(ctx, account.ID)
	if errors.Is(err, models.ErrNotFound) {
		profile, err = s.users.CreateProfile(ctx, &models.User{
			ID:        account.ID,
			Email:     account.Email,
			CreatedAt: now,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, account.ID, now); err != nil {
		log.Printf("[Auth] failed to record last login for %s: %v", account.ID, err)
	} else {
		profile.LastLoginAt = &now
	}

	return s.startSession(ctx, *profile)
}

func (s *AuthService) startSession(ctx context.Context, user models.User) (*models.Session, error) {
	sessionID := uuid.NewString()
	token, claims, err := s.tokens.GenerateToken(sessionID, user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        sessionID,
		State:     models.SignedIn,
		User:      user,
		IssuedAt:  s.now(),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := libs.SetJSON(ctx, s.kv, sessionKey(sessionID), session, s.tokens.Expiry()); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.publish(ctx, user.ID, models.SessionEvent{
		Type:      models.SessionEventSignedIn,
		SessionID: sessionID,
		User:      &user,
	})

	session.Token = token
	return session, nil
}

func (s *AuthService) SignOut(ctx context.Context, session *models.Session) error {
	if session == nil {
		return nil
	}
	if err := s.kv.Del(ctx, sessionKey(session.ID)); err != nil {
		log.Printf("[Auth] sign out %s failed: %v", session.ID, err)
		return err
	}

	s.publish(ctx, session.UserID(), models.SessionEvent{
		Type:      models.SessionEventSignedOut,
		SessionID: session.ID,
	})
	return nil
}

// Restore turns a bearer token back into its session. A session that was
// signed out or revoked elsewhere is reported as ErrSessionEnded.
func (s *AuthService) Restore(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	var session models.Session
	ok, err := libs.GetJSON(ctx, s.kv, sessionKey(claims.SessionID()), &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrSessionEnded
	}

	var revokedAt time.Time
	revoked, err := libs.GetJSON(ctx, s.kv, sessionRevokedKey(session.User.ID), &revokedAt)
	if err != nil {
		return nil, err
	}
	if revoked && !session.IssuedAt.After(revokedAt) {
		return nil, models.ErrSessionEnded
	}

	session.Token = token
	return &session, nil
}

// Watch streams session changes for the user: sign-ins, sign-outs and
// profile updates from any device.
func (s *AuthService) Watch(ctx context.Context, userID string) (<-chan models.SessionEvent, func()) {
	raw, cancel := s.pubsub.Subscribe(ctx, sessionChannel(userID))

	out := make(chan models.SessionEvent, 8)
	go func() {
		defer close(out)
		for data := range raw {
			var ev models.SessionEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				log.Printf("[Auth] dropping malformed session event: %v", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, cancel
}

func (s *AuthService) publish(ctx context.Context, userID string, ev models.SessionEvent) {
	if userID == "" {
		return
	}
	ev.At = s.now()
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := s.pubsub.Publish(ctx, sessionChannel(userID), data); err != nil {
		log.Printf("[Auth] publish %s for %s failed: %v", ev.Type, userID, err)
	}
}

func (s *AuthService) UpdateProfile(ctx context.Context, session *models.Session, req models.UpdateProfileRequest) (*models.User, error) {
	profile, err := s.users.GetProfile(ctx, session.UserID())
	if err != nil {
		log.Printf("[Auth] profile read for %s failed: %v", session.UserID(), err)
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.Preferences != nil {
		profile.Preferences = *req.Preferences
	}

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		log.Printf("[Auth] profile update for %s failed: %v", profile.ID, err)
		return nil, err
	}

	session.User = *profile
	stored := *session
	stored.Token = ""
	if err := libs.SetJSON(ctx, s.kv, sessionKey(session.ID), stored, time.Until(session.ExpiresAt)); err != nil {
		log.Printf("[Auth] session refresh for %s failed: %v", session.ID, err)
	}

	s.publish(ctx, profile.ID, models.SessionEvent{
		Type:      models.SessionEventUpdated,
		SessionID: session.ID,
		User:      profile,
	})
	return profile, nil
}

func (s *AuthService) ListUsers(ctx context.Context, page, limit int, search string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	users, totalItems, err := s.users.ListProfiles(ctx, strings.TrimSpace(search), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: int(math.Ceil(float64(totalItems) / float64(limit))),
		},
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetProfile(ctx, id)
}

// UpdateUser changes account flags and ends the user's open sessions so the
// change takes effect on the next request.
func (s *AuthService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	if req.Disabled != nil {
		if err := s.users.SetDisabled(ctx, id, *req.Disabled); err != nil {
			return nil, err
		}
	}
	if req.IsAdmin != nil {
		if err := s.users.SetAdmin(ctx, id, *req.IsAdmin); err != nil {
			return nil, err
		}
	}

	if req.Disabled != nil || req.IsAdmin != nil {
		if err := libs.SetJSON(ctx, s.kv, sessionRevokedKey(id), s.now(), s.tokens.Expiry()); err != nil {
			log.Printf("[Auth] revoking sessions of %s failed: %v", id, err)
		}
		s.publish(ctx, id, models.SessionEvent{Type: models.SessionEventSignedOut})
	}

	return s.users.GetProfile(ctx, id)
}

// UserMessage maps an auth failure to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, models.ErrAccountDisabled):
		return "This account has been disabled"
	case errors.Is(err, models.ErrTooManyRequests):
		return "Too many attempts. Please try again later"
	case errors.Is(err, models.ErrEmailInUse):
		return "This email is already registered"
	case errors.Is(err, models.ErrWeakPassword):
		return fmt.Sprintf("Password must be at least %d characters long", utils.MinPasswordLength)
	case errors.Is(err, models.ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, models.ErrSessionEnded):
		return "Your session has ended. Please sign in again"
	default:
		return "Something went wrong. Please try again"
	}
}
