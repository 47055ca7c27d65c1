package auth_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qlkp/reciclaje-api/internal/application/auth"
	"github.com/qlkp/reciclaje-api/internal/application/dto"
	"github.com/qlkp/reciclaje-api/internal/domain"
	"github.com/qlkp/reciclaje-api/internal/domain/entity"
	pkgjwt "github.com/qlkp/reciclaje-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

const testPassword = "secreto-123"

func newTestAuth(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"user-1": {
			ID:           "user-1",
			Email:        "chu@planta.vn",
			PasswordHash: string(hash),
			FullName:     "Chủ Xưởng",
			Role:         entity.RoleAdmin,
			Phone:        "0901234567",
			SalaryBase:   decimal.NewFromInt(20_000_000),
			Status:       entity.UserStatusActive,
			JoinedAt:     time.Now(),
		},
		"user-2": {
			ID:           "user-2",
			Email:        "exempleado@planta.vn",
			PasswordHash: string(hash),
			FullName:     "Ex Empleado",
			Role:         entity.RoleStaff,
			Status:       entity.UserStatusInactive,
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "reciclaje-api-test",
	})
	return uc, repo
}

func TestLogin_ConEmail(t *testing.T) {
	uc, _ := newTestAuth(t)

	out, err := uc.Login(dto.LoginRequest{Identifier: "chu@planta.vn", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// el token debe llevar userID y rol
	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_ConTelefono(t *testing.T) {
	uc, _ := newTestAuth(t)

	out, err := uc.Login(dto.LoginRequest{Identifier: "0901234567", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.User.ID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "chu@planta.vn", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "nadie@planta.vn", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoRechazado(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "exempleado@planta.vn", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un usuario INACTIVE no debe poder iniciar sesión aunque la contraseña sea correcta")
}

func TestChangePassword(t *testing.T) {
	uc, repo := newTestAuth(t)

	err := uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "nueva-clave-456",
	})
	require.NoError(t, err)

	// el hash guardado debe validar la clave nueva y rechazar la vieja
	u := repo.users["user-1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nueva-clave-456")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(testPassword)))
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	uc, _ := newTestAuth(t)

	err := uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva-clave-456",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword_NuevaMuyCorta(t *testing.T) {
	uc, _ := newTestAuth(t)

	err := uc.ChangePassword("user-1", dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "abc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMe_NoExponeHash(t *testing.T) {
	uc, _ := newTestAuth(t)

	out, err := uc.Me("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Chủ Xưởng", out.FullName)
	assert.True(t, out.SalaryBase.Equal(decimal.NewFromInt(20_000_000)))
}
