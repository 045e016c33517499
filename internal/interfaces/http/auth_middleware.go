package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
	"github.com/89my5555-boop/cafe-inventory/pkg/jwt"
)

// Nombre de la cookie de sesión que emite el login.
const SessionCookie = "session"

// Locals keys para identidad en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUsername  = "username"
	LocalSessionID = "session_id"
)

// AuthMiddleware valida el token de sesión (cookie o Bearer) y verifica contra la tabla
// de sesiones que no esté revocado ni expirado. Sin sesión válida, la operación se
// rechaza con redirect al login sin leer ni mutar estado de catálogo o libro.
func AuthMiddleware(jwtSecret string, sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		userID, username, sessionID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		session, err := sessions.GetByID(sessionID)
		if err != nil || session == nil || !session.Active(time.Now()) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// tokenFromRequest extrae el token de la cookie de sesión o del header Authorization.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionID devuelve el SessionID del contexto (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
