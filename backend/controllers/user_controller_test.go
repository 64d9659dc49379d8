package controllers_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"coursehub/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	createUser(t, "alba", "alba@x.com", "secret123", false)
	viewer := createUser(t, "beto", "beto@x.com", "secret123", false)

	resp := doJSON(t, "GET", "/api/users/alba", tokenFor(t, viewer), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := dataOf(t, resp)
	assert.Equal(t, "alba", data["username"])

	resp = doJSON(t, "GET", "/api/users/ghost", tokenFor(t, viewer), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	createUser(t, "clara", "clara@x.com", "secret123", false)
	user := createUser(t, "dante", "dante@x.com", "secret123", false)

	form := url.Values{}
	form.Set("username", "clara")
	form.Set("email", "dante@x.com")

	req := httptest.NewRequest("PUT", "/api/user/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", tokenFor(t, user))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "dante", reloaded.Username)
}

func TestChangePassword(t *testing.T) {
	user := createUser(t, "edgar", "edgar@x.com", "secret123", false)
	token := tokenFor(t, user)

	resp := doJSON(t, "PUT", "/api/user/password", token, map[string]string{
		"current_password": "wrong",
		"new_password":     "newsecret",
		"confirm_password": "newsecret",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, "PUT", "/api/user/password", token, map[string]string{
		"current_password": "secret123",
		"new_password":     "newsecret",
		"confirm_password": "newsecret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The old password stops working, the new one logs in.
	resp = doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "edgar@x.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "edgar@x.com",
		"password": "newsecret",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
