package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Shuon777/course-work-master/internal/domain/models"
	"github.com/Shuon777/course-work-master/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ModeratorStorage interface {
	Insert(ctx context.Context, name, email, passwordHash string, isUser, isCashier, isAdmin bool) (*models.Moderator, error)
	GetByEmail(ctx context.Context, email string) (*models.Moderator, error)
}

type MailProvider interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task func())
}

// Profile is what login hands back: the moderator row minus the hash,
// plus a short-lived access token.
type Profile struct {
	ModeratorID int    `json:"moderator_id"`
	Name        string `json:"moderator_name"`
	Email       string `json:"moderator_email"`
	IsUser      bool   `json:"is_user"`
	IsCashier   bool   `json:"is_cashier"`
	IsAdmin     bool   `json:"is_admin"`
	AccessToken string `json:"access_token"`
}

type Service struct {
	log          *slog.Logger
	moderators   ModeratorStorage
	mailer       MailProvider
	taskExecutor TaskExecutor
	tokenSecret  string
	tokenTTL     time.Duration
}

// New wires the auth service. mailer may be nil when SMTP is not
// configured; registration then skips the welcome email.
func New(
	log *slog.Logger,
	moderators ModeratorStorage,
	mailer MailProvider,
	taskExecutor TaskExecutor,
	tokenSecret string,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		log:          log,
		moderators:   moderators,
		mailer:       mailer,
		taskExecutor: taskExecutor,
		tokenSecret:  tokenSecret,
		tokenTTL:     tokenTTL,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*Profile, error) {
	const op = "auth.Service.Login"
	log := s.log.With("op", op, "email", email)
	moderator, err := s.moderators.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error(err.Error())
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(moderator.PasswordHash), []byte(password)); err != nil {
		log.Info("password mismatch")
		return nil, ErrInvalidCredentials
	}
	token, err := s.newAccessToken(moderator)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return &Profile{
		ModeratorID: moderator.ID,
		Name:        moderator.Name,
		Email:       moderator.Email,
		IsUser:      moderator.IsUser,
		IsCashier:   moderator.IsCashier,
		IsAdmin:     moderator.IsAdmin,
		AccessToken: token,
	}, nil
}

func (s *Service) Register(ctx context.Context, name, email, password string, isUser, isCashier, isAdmin bool) (*models.Moderator, error) {
	const op = "auth.Service.Register"
	log := s.log.With("op", op, "email", email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	moderator, err := s.moderators.Insert(ctx, name, email, string(hash), isUser, isCashier, isAdmin)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("email already registered")
			return nil, ErrEmailTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	if s.mailer != nil && s.taskExecutor != nil {
		s.taskExecutor.Add(func() {
			s.sendWelcomeEmail(moderator)
		})
	}
	return moderator, nil
}

func (s *Service) newAccessToken(moderator *models.Moderator) (string, error) {
	claims := jwt.MapClaims{
		"uid":   moderator.ID,
		"email": moderator.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.tokenSecret))
}

func (s *Service) sendWelcomeEmail(moderator *models.Moderator) {
	err := s.mailer.Send(moderator.Email, "moderator_welcome.html", map[string]any{
		"name":  moderator.Name,
		"email": moderator.Email,
	})
	if err != nil {
		s.log.Error("Error sending welcome email", "errMsg", err.Error())
	}
}
