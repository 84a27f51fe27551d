package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/config"
	"talenthr/dto"
	"talenthr/internal/guard"
	"talenthr/internal/models"
)

type fakeUsers struct {
	byEmail map[string]models.User
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUsers) Insert(_ context.Context, u models.User) (models.User, error) {
	u.ID = bson.NewObjectID()
	f.byEmail[u.Email] = u
	return u, nil
}

type fakeCompanies struct {
	inserted []models.Company
}

func (f *fakeCompanies) Insert(_ context.Context, c models.Company) (models.Company, error) {
	c.ID = bson.NewObjectID()
	f.inserted = append(f.inserted, c)
	return c, nil
}

type fakeOTPs struct {
	byEmail map[string]models.OTPRequest
}

func (f *fakeOTPs) Replace(_ context.Context, req models.OTPRequest) error {
	f.byEmail[req.Email] = req
	return nil
}

func (f *fakeOTPs) FindByEmail(_ context.Context, email string) (models.OTPRequest, error) {
	r, ok := f.byEmail[email]
	if !ok {
		return models.OTPRequest{}, mongo.ErrNoDocuments
	}
	return r, nil
}

func (f *fakeOTPs) DeleteByEmail(_ context.Context, email string) error {
	delete(f.byEmail, email)
	return nil
}

type fakeInvites struct {
	byToken map[string]models.Invitation
}

func (f *fakeInvites) Insert(_ context.Context, inv models.Invitation) (models.Invitation, error) {
	inv.ID = bson.NewObjectID()
	f.byToken[inv.Token] = inv
	return inv, nil
}

func (f *fakeInvites) FindByToken(_ context.Context, token string) (models.Invitation, error) {
	inv, ok := f.byToken[token]
	if !ok {
		return models.Invitation{}, mongo.ErrNoDocuments
	}
	return inv, nil
}

func (f *fakeInvites) SetStatus(_ context.Context, id bson.ObjectID, status string) error {
	for token, inv := range f.byToken {
		if inv.ID == id {
			inv.Status = status
			f.byToken[token] = inv
		}
	}
	return nil
}

func (f *fakeInvites) CountPendingByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, inv := range f.byToken {
		if inv.Email == email && inv.Status == models.InvitationPending {
			n++
		}
	}
	return n, nil
}

type authFixture struct {
	svc       *AuthService
	users     *fakeUsers
	companies *fakeCompanies
	otps      *fakeOTPs
	invites   *fakeInvites
}

func newAuthFixture() authFixture {
	users := &fakeUsers{byEmail: map[string]models.User{}}
	companies := &fakeCompanies{}
	otps := &fakeOTPs{byEmail: map[string]models.OTPRequest{}}
	invites := &fakeInvites{byToken: map[string]models.Invitation{}}
	cfg := config.Config{
		JWTSecret:          "test-secret",
		OTPTTLMinutes:      10,
		InvitationTTLHours: 72,
	}
	return authFixture{
		svc:       NewAuthService(cfg, users, companies, otps, invites),
		users:     users,
		companies: companies,
		otps:      otps,
		invites:   invites,
	}
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "otp must be numeric, got %q", code)
	}
}

func TestRegisterThenVerify(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	req := dto.RegisterRequest{
		CompanyName: "Acme",
		Email:       "Admin@Acme.test",
		Password:    "s3cret-pass",
		FirstName:   "Ada",
		LastName:    "Admin",
	}
	require.NoError(t, f.svc.Register(ctx, req))

	// No documents are created until the code is verified.
	assert.Empty(t, f.companies.inserted)
	assert.Empty(t, f.users.byEmail)

	pending, ok := f.otps.byEmail["admin@acme.test"]
	require.True(t, ok, "otp request stored under lowercased email")
	assert.Len(t, pending.Code, 6)

	user, token, err := f.svc.VerifyOTP(ctx, "admin@acme.test", pending.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCompanyAdmin, user.Role)
	require.Len(t, f.companies.inserted, 1)
	assert.Equal(t, "Acme", f.companies.inserted[0].Name)
	assert.Equal(t, f.companies.inserted[0].ID, user.CompanyID)
	assert.Empty(t, f.otps.byEmail, "otp request consumed")

	// The stored hash must verify the original password.
	_, _, err = f.svc.Login(ctx, "admin@acme.test", "s3cret-pass")
	assert.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.users.byEmail["taken@acme.test"] = models.User{ID: bson.NewObjectID(), Email: "taken@acme.test"}

	err := f.svc.Register(context.Background(), dto.RegisterRequest{
		CompanyName: "Acme",
		Email:       "Taken@acme.test",
		Password:    "s3cret-pass",
		FirstName:   "A",
		LastName:    "B",
	})

	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 409, ge.Status)
	assert.Equal(t, "Email already registered", ge.Message)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	require.NoError(t, f.svc.Register(ctx, dto.RegisterRequest{
		CompanyName: "Acme",
		Email:       "admin@acme.test",
		Password:    "s3cret-pass",
		FirstName:   "A",
		LastName:    "B",
	}))

	_, _, err := f.svc.VerifyOTP(ctx, "admin@acme.test", "000000x")

	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 400, ge.Status)
	assert.Equal(t, "Invalid or expired OTP", ge.Message)
	assert.Empty(t, f.companies.inserted)
}

func TestLogin_BadPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	require.NoError(t, f.svc.Register(ctx, dto.RegisterRequest{
		CompanyName: "Acme",
		Email:       "admin@acme.test",
		Password:    "s3cret-pass",
		FirstName:   "A",
		LastName:    "B",
	}))
	code := f.otps.byEmail["admin@acme.test"].Code
	_, _, err := f.svc.VerifyOTP(ctx, "admin@acme.test", code)
	require.NoError(t, err)

	_, _, err = f.svc.Login(ctx, "admin@acme.test", "wrong-pass")

	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 401, ge.Status)
	assert.Equal(t, "Invalid credentials", ge.Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture()
	_, _, err := f.svc.Login(context.Background(), "ghost@acme.test", "whatever")

	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 401, ge.Status)
	assert.Equal(t, "Invalid credentials", ge.Message)
}

func TestInviteAndAccept(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	viewer := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleCompanyAdmin}

	inv, err := f.svc.Invite(ctx, viewer, dto.InviteRequest{Email: "New@acme.test", Role: models.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, viewer.CompanyID, inv.CompanyID)
	assert.Equal(t, "new@acme.test", inv.Email)
	assert.Equal(t, models.InvitationPending, inv.Status)
	assert.NotEmpty(t, inv.Token)
	assert.Equal(t, viewer.ID, inv.InvitedBy)

	// Second pending invitation for the same address is rejected.
	_, err = f.svc.Invite(ctx, viewer, dto.InviteRequest{Email: "new@acme.test", Role: models.RoleEmployee})
	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 409, ge.Status)

	user, token, err := f.svc.AcceptInvite(ctx, dto.AcceptInviteRequest{
		Token:     inv.Token,
		Password:  "s3cret-pass",
		FirstName: "New",
		LastName:  "Hire",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, viewer.CompanyID, user.CompanyID)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.Equal(t, models.InvitationAccepted, f.invites.byToken[inv.Token].Status)

	// A redeemed token cannot be used again.
	_, _, err = f.svc.AcceptInvite(ctx, dto.AcceptInviteRequest{
		Token:     inv.Token,
		Password:  "s3cret-pass",
		FirstName: "New",
		LastName:  "Hire",
	})
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Invitation already used", ge.Message)
}

func TestAcceptInvite_UnknownToken(t *testing.T) {
	f := newAuthFixture()
	_, _, err := f.svc.AcceptInvite(context.Background(), dto.AcceptInviteRequest{
		Token:     strings.Repeat("x", 36),
		Password:  "s3cret-pass",
		FirstName: "A",
		LastName:  "B",
	})

	var ge *guard.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 400, ge.Status)
	assert.Equal(t, "Invalid invitation token", ge.Message)
}
