package middleware

import (
	"github.com/ethanm/go-todo/config"
	"github.com/ethanm/go-todo/database"
	"github.com/ethanm/go-todo/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// userKey is the locals key holding the current user.
const userKey = "user"

// RequireLogin authenticates the session cookie and loads the current user.
// Anything wrong with the cookie, or a user row that no longer exists (after
// a reset), bounces the request to the login page.
func RequireLogin(c *fiber.Ctx) error {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}

	// Parse and check the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.SessionSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Redirect("/login", fiber.StatusFound)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return c.Redirect("/login", fiber.StatusFound)
	}

	user, err := database.GetUserByID(int64(rawID))
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	c.Locals(userKey, user)
	return c.Next()
}

// CurrentUser returns the user loaded by RequireLogin, or nil outside the
// gated routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
