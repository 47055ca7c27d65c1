package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/qlkp/reciclaje-api/internal/application/auth"
	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
)

// StaffUseCase gestión de personal (solo ADMIN).
type StaffUseCase struct {
	repo repository.UserRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.UserRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleStaff
}

// Create crea un miembro del personal: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *StaffUseCase) Create(in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	joined := now
	if in.JoinedAt != nil {
		joined = *in.JoinedAt
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		Phone:        in.Phone,
		SalaryBase:   in.SalaryBase,
		Status:       entity.UserStatusActive,
		JoinedAt:     joined,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToStaffResponse(user), nil
}

// GetByID obtiene un miembro del personal por ID.
func (uc *StaffUseCase) GetByID(id string) (*dto.StaffResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return auth.ToStaffResponse(user), nil
}

// List devuelve todo el personal.
func (uc *StaffUseCase) List() ([]dto.StaffResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToStaffResponse(u))
	}
	return out, nil
}

// Update actualiza datos del personal. Email y password no se cambian por
// esta ruta (password vía /auth/change-password).
func (uc *StaffUseCase) Update(id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.SalaryBase != nil {
		user.SalaryBase = *in.SalaryBase
	}
	if in.Status != nil {
		if *in.Status != entity.UserStatusActive && *in.Status != entity.UserStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToStaffResponse(user), nil
}

// Delete elimina un miembro del personal. Sus transacciones quedan con
// created_by en NULL. Un admin no puede borrarse a sí mismo.
func (uc *StaffUseCase) Delete(id, callerID string) error {
	if id == callerID {
		return domain.ErrInvalidInput
	}
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
