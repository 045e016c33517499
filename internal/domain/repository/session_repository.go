package repository

import "github.com/89my5555-boop/cafe-inventory/internal/domain/entity"

// SessionRepository puerto de persistencia para sesiones.
type SessionRepository interface {
	Create(session *entity.Session) error
	// GetByID devuelve nil, nil si la sesión no existe.
	GetByID(id string) (*entity.Session, error)
	// Revoke marca la sesión como revocada (logout). Idempotente.
	Revoke(id string) error
	// DeleteExpired elimina sesiones ya vencidas.
	DeleteExpired() error
}
