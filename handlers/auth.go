package handlers

import (
	"errors"
	"time"

	"github.com/ethanm/go-todo/config"
	"github.com/ethanm/go-todo/database"
	"github.com/ethanm/go-todo/forms"
	"github.com/ethanm/go-todo/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// generateSessionToken signs a session token identifying userID.
func generateSessionToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.SessionSecret()))
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// formPage builds the render context for the login and register views. Every key must be
// present or html/template chokes on the missing ones.
func formPage(flash, username string, errs []forms.FieldError) fiber.Map {
	return fiber.Map{
		"Flash":    flash,
		"Username": username,
		"Errors":   errs,
	}
}

// HandleLoginPage renders the login form.
func HandleLoginPage(c *fiber.Ctx) error {
	return c.Render("login", formPage(getFlash(c), "", nil))
}

// HandleLogin checks the submitted credentials and starts a session.
func HandleLogin(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if errs := forms.ValidateLogin(username, password); len(errs) > 0 {
		return c.Render("login", formPage("", username, errs))
	}

	user, err := database.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Render("login", formPage("Username not found. Please register or try again.", username, nil))
		}
		return c.SendString("There was a problem logging you in.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return c.Render("login", formPage("Invalid password. Please try again.", username, nil))
	}

	token, err := generateSessionToken(user.ID)
	if err != nil {
		return c.SendString("There was a problem logging you in.")
	}
	setSessionCookie(c, token)

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleRegisterPage renders the registration form.
func HandleRegisterPage(c *fiber.Ctx) error {
	return c.Render("register", formPage(getFlash(c), "", nil))
}

// HandleRegister validates the form, hashes the password and creates the
// user, then sends them to the login page.
func HandleRegister(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	taken := func(name string) (bool, error) {
		_, err := database.GetUserByUsername(name)
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}

	errs, err := forms.ValidateRegister(username, password, taken)
	if err != nil {
		return c.SendString("There was a problem registering your account.")
	}
	if len(errs) > 0 {
		return c.Render("register", formPage("", username, errs))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return c.SendString("There was a problem registering your account.")
	}

	_, err = database.CreateUser(username, string(hashedPassword))
	if err != nil {
		// a concurrent registration can still win the username
		if errors.Is(err, database.ErrDuplicate) {
			return c.Render("register", formPage("", username, []forms.FieldError{{
				Field:   "username",
				Message: "That username already exists. Please choose a different one.",
			}}))
		}
		return c.SendString("There was a problem registering your account.")
	}

	setFlash(c, "Registration successful! You can now log in.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLogout ends the session.
func HandleLogout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
