package repository

import "github.com/89my5555-boop/cafe-inventory/internal/domain/entity"

// UserRepository puerto de persistencia para credenciales.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrUsernameTaken si el username ya existe.
	Create(user *entity.User) error
	// FindByUsername devuelve nil, nil si el usuario no existe.
	FindByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
