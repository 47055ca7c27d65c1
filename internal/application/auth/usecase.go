package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	"github.com/qlkp/reciclaje-api/internal/domain/repository"
	"github.com/qlkp/reciclaje-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, cambio de contraseña y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica identificador (email o teléfono) y password, genera JWT y
// retorna token + usuario. Los usuarios INACTIVE no pueden entrar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.findByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToStaffResponse(user),
	}, nil
}

// findByIdentifier resuelve el identificador: si contiene "@" se busca por
// email, si no por teléfono.
func (uc *AuthUseCase) findByIdentifier(identifier string) (*entity.User, error) {
	if strings.Contains(identifier, "@") {
		return uc.userRepo.FindByEmail(identifier)
	}
	return uc.userRepo.FindByPhone(identifier)
}

// ChangePassword verifica la contraseña actual del usuario autenticado y
// guarda el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 6 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return uc.userRepo.Update(user)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.StaffResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return ToStaffResponse(user), nil
}

// ToStaffResponse mapea la entidad a su DTO de salida (nunca expone el hash).
func ToStaffResponse(u *entity.User) *dto.StaffResponse {
	if u == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       u.Role,
		Phone:      u.Phone,
		SalaryBase: u.SalaryBase,
		Status:     u.Status,
		JoinedAt:   u.JoinedAt,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
