package entity

import "time"

// Session representa una sesión activa de un usuario.
// El logout marca RevokedAt; el middleware de auth rechaza sesiones revocadas o expiradas.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active indica si la sesión sigue siendo válida en el instante now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
