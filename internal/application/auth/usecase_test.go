package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/application/auth"
	"github.com/datco/erp-demo-api/internal/application/dto"
	"github.com/datco/erp-demo-api/internal/domain"
	"github.com/datco/erp-demo-api/internal/fixture"
	pkgjwt "github.com/datco/erp-demo-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "datco-test"
)

func newTestUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	rows := []fixture.PermissionRow{
		{UserID: "admin", Name: "관리자", Department: "경영지원팀", Role: "admin"},
		{UserID: "kim.cs", Name: "김철수", Department: "생산1팀", Role: "manager"},
		{UserID: "sin.rol", Name: "무권한", Department: "영업팀"},
	}
	uc, err := auth.NewUseCase(rows, testPassword, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "datco-test",
	})
	require.NoError(t, err)
	return uc
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(dto.LoginRequest{UserID: "admin", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "관리자", out.User.Name)
	assert.Equal(t, "admin", out.User.Role)

	// El token lleva el rol de la hoja para el middleware RBAC.
	userID, department, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", userID)
	assert.Equal(t, "경영지원팀", department)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Login(dto.LoginRequest{UserID: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Login(dto.LoginRequest{UserID: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// TestLogin_RolPorDefecto una fila sin 권한 recibe viewer, nunca rol vacío.
func TestLogin_RolPorDefecto(t *testing.T) {
	uc := newTestUseCase(t)
	out, err := uc.Login(dto.LoginRequest{UserID: "sin.rol", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "viewer", out.User.Role)
}

func TestUsers_OrdenDeLaHojaSinHash(t *testing.T) {
	uc := newTestUseCase(t)
	users := uc.Users()
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].ID)
	assert.Equal(t, "kim.cs", users[1].ID)
	assert.Equal(t, "sin.rol", users[2].ID)
}
