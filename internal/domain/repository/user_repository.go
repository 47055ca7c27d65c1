package repository

import "github.com/qlkp/reciclaje-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (personal).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(email string) (*entity.User, error)
	// FindByPhone devuelve nil, nil si no existe (login con teléfono).
	FindByPhone(phone string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
