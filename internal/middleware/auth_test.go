package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"talenthr/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, uid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"sub": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func jwtApp() *fiber.App {
	app := fiber.New()
	app.Get("/ping", RequireJWT(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestRequireJWT_MissingHeader(t *testing.T) {
	resp, err := jwtApp().Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWT_WrongSecret(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "abc"))

	resp, err := jwtApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWT_Expired(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": "abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+s)

	resp, err := jwtApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireJWT_ValidTokenSetsUserID(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uid))

	app := jwtApp()
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type stubUsers struct {
	user models.User
	err  error
}

func (s stubUsers) FindByID(context.Context, bson.ObjectID) (models.User, error) {
	return s.user, s.err
}

func viewerApp(users ViewerSource, uid any) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uid)
		return c.Next()
	})
	app.Get("/me", InjectViewer(users), func(c *fiber.Ctx) error {
		viewer, err := Viewer(c)
		if err != nil {
			return err
		}
		return c.JSON(viewer)
	})
	return app
}

func TestInjectViewer_ResolvesUser(t *testing.T) {
	user := models.User{ID: bson.NewObjectID(), CompanyID: bson.NewObjectID(), Role: models.RoleHRManager}
	app := viewerApp(stubUsers{user: user}, user.ID.Hex())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInjectViewer_UnknownUser(t *testing.T) {
	app := viewerApp(stubUsers{err: mongo.ErrNoDocuments}, bson.NewObjectID().Hex())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInjectViewer_BadHex(t *testing.T) {
	app := viewerApp(stubUsers{}, "not-hex")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireManager(t *testing.T) {
	run := func(role string) int {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("viewer", models.User{ID: bson.NewObjectID(), Role: role})
			return c.Next()
		})
		app.Post("/x", RequireManager(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/x", nil))
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, run(models.RoleCompanyAdmin))
	assert.Equal(t, http.StatusOK, run(models.RoleHRManager))
	assert.Equal(t, http.StatusForbidden, run(models.RoleEmployee))
}
