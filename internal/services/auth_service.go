package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"talenthr/config"
	"talenthr/dto"
	"talenthr/internal/guard"
	"talenthr/internal/models"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, u models.User) (models.User, error)
}

type CompanyStore interface {
	Insert(ctx context.Context, c models.Company) (models.Company, error)
}

type OTPStore interface {
	Replace(ctx context.Context, req models.OTPRequest) error
	FindByEmail(ctx context.Context, email string) (models.OTPRequest, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type InvitationStore interface {
	Insert(ctx context.Context, inv models.Invitation) (models.Invitation, error)
	FindByToken(ctx context.Context, token string) (models.Invitation, error)
	SetStatus(ctx context.Context, id bson.ObjectID, status string) error
	CountPendingByEmail(ctx context.Context, email string) (int64, error)
}

// AuthService owns registration (company bootstrap via OTP), login,
// and the invitation flow for adding users to an existing tenant.
type AuthService struct {
	cfg       config.Config
	users     UserStore
	companies CompanyStore
	otps      OTPStore
	invites   InvitationStore
}

func NewAuthService(cfg config.Config, users UserStore, companies CompanyStore, otps OTPStore, invites InvitationStore) *AuthService {
	return &AuthService{cfg: cfg, users: users, companies: companies, otps: otps, invites: invites}
}

// GenerateOTP creates a numeric code of the given length.
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = digits[buf[i]%10]
	}
	return string(buf), nil
}

// Register stores a pending company-admin signup and mails the OTP. The
// company and user documents are only created once the code is verified.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	email := strings.ToLower(req.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return guard.Conflict("Email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	code, err := GenerateOTP(6)
	if err != nil {
		return err
	}

	err = s.otps.Replace(ctx, models.OTPRequest{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.OTPTTLMinutes) * time.Minute),
		Payload: bson.M{
			"company_name":  req.CompanyName,
			"firstname":     req.FirstName,
			"lastname":      req.LastName,
			"password_hash": string(hash),
		},
	})
	if err != nil {
		return err
	}

	s.sendMail(email, "Your TalentHR registration code",
		fmt.Sprintf("Your verification code is: %s\nIt expires in %d minutes.", code, s.cfg.OTPTTLMinutes))
	return nil
}

// VerifyOTP completes registration: creates the company, the admin user and
// returns a signed token.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (models.User, string, error) {
	email = strings.ToLower(email)

	req, err := s.otps.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, "", guard.BadRequest("Invalid or expired OTP")
		}
		return models.User{}, "", err
	}
	if req.Code != code || time.Now().After(req.ExpiresAt) {
		return models.User{}, "", guard.BadRequest("Invalid or expired OTP")
	}

	name, _ := req.Payload["company_name"].(string)
	company, err := s.companies.Insert(ctx, models.Company{
		Name:   name,
		Plan:   "free",
		Status: "active",
	})
	if err != nil {
		return models.User{}, "", err
	}

	firstname, _ := req.Payload["firstname"].(string)
	lastname, _ := req.Payload["lastname"].(string)
	hash, _ := req.Payload["password_hash"].(string)

	user, err := s.users.Insert(ctx, models.User{
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstname,
		LastName:     lastname,
		Role:         models.RoleCompanyAdmin,
		Status:       "active",
	})
	if err != nil {
		return models.User{}, "", err
	}

	if err := s.otps.DeleteByEmail(ctx, email); err != nil {
		logrus.WithError(err).Warn("failed to clear otp request")
	}

	token, err := s.issueToken(user)
	return user, token, err
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, "", guard.Unauthorized("Invalid credentials")
		}
		return models.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, "", guard.Unauthorized("Invalid credentials")
	}

	token, err := s.issueToken(user)
	return user, token, err
}

// Invite issues a tenant-scoped invitation token for a new user.
func (s *AuthService) Invite(ctx context.Context, viewer models.User, req dto.InviteRequest) (models.Invitation, error) {
	email := strings.ToLower(req.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.Invitation{}, guard.Conflict("Email already registered")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Invitation{}, err
	}

	pending, err := s.invites.CountPendingByEmail(ctx, email)
	if err != nil {
		return models.Invitation{}, err
	}
	if pending > 0 {
		return models.Invitation{}, guard.Conflict("An invitation for this email is already pending")
	}

	inv, err := s.invites.Insert(ctx, models.Invitation{
		CompanyID: viewer.CompanyID,
		Email:     email,
		Role:      req.Role,
		Token:     uuid.NewString(),
		InvitedBy: viewer.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.InvitationTTLHours) * time.Hour),
		Status:    models.InvitationPending,
	})
	if err != nil {
		return models.Invitation{}, err
	}

	s.sendMail(email, "You have been invited to TalentHR",
		fmt.Sprintf("Use this token to join: %s\nIt expires in %d hours.", inv.Token, s.cfg.InvitationTTLHours))
	return inv, nil
}

// AcceptInvite redeems a pending token and creates the invited user in the
// inviting tenant.
func (s *AuthService) AcceptInvite(ctx context.Context, req dto.AcceptInviteRequest) (models.User, string, error) {
	inv, err := s.invites.FindByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, "", guard.BadRequest("Invalid invitation token")
		}
		return models.User{}, "", err
	}
	if inv.Status != models.InvitationPending {
		return models.User{}, "", guard.BadRequest("Invitation already used")
	}
	if time.Now().After(inv.ExpiresAt) {
		if err := s.invites.SetStatus(ctx, inv.ID, models.InvitationExpired); err != nil {
			logrus.WithError(err).Warn("failed to expire invitation")
		}
		return models.User{}, "", guard.BadRequest("Invitation expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.users.Insert(ctx, models.User{
		CompanyID:    inv.CompanyID,
		Email:        inv.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         inv.Role,
		Status:       "active",
	})
	if err != nil {
		return models.User{}, "", err
	}

	if err := s.invites.SetStatus(ctx, inv.ID, models.InvitationAccepted); err != nil {
		logrus.WithError(err).Warn("failed to mark invitation accepted")
	}

	token, err := s.issueToken(user)
	return user, token, err
}

func (s *AuthService) issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"uid": user.ID.Hex(),
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) sendMail(to, subject, body string) {
	if s.cfg.SMTPHost == "" {
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("smtp disabled, mail not sent")
		return
	}

	msg := fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\n\n%s", s.cfg.MailFrom, to, subject, body)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort

	if err := smtp.SendMail(addr, auth, s.cfg.MailFrom, []string{to}, []byte(msg)); err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send mail")
	}
}
