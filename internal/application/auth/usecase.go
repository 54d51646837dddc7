// Package auth autenticación de los usuarios demo de la hoja 사용자권한.
// No hay registro en runtime: los usuarios vienen del fixture y comparten la
// contraseña demo, hasheada con bcrypt al cargar.
package auth

import (
	"github.com/datco/erp-demo-api/internal/application/dto"
	"github.com/datco/erp-demo-api/internal/domain"
	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y permisos.
type UseCase struct {
	users  []entity.User // orden de la hoja, para el listado
	byID   map[string]int
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso desde las filas de 사용자권한.
// La contraseña demo se hashea una sola vez; todos los usuarios la comparten.
func NewUseCase(rows []fixture.PermissionRow, demoPassword string, jwtCfg JWTConfig) (*UseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uc := &UseCase{byID: make(map[string]int, len(rows)), jwtCfg: jwtCfg}
	for _, r := range rows {
		role := r.Role
		if role == "" {
			role = entity.RoleViewer
		}
		uc.byID[r.UserID] = len(uc.users)
		uc.users = append(uc.users, entity.User{
			ID:           r.UserID,
			Name:         r.Name,
			Department:   r.Department,
			Role:         role,
			PasswordHash: string(hash),
		})
	}
	return uc, nil
}

// Login verifica credenciales contra la hoja de permisos y emite el JWT.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	i, ok := uc.byID[in.UserID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := uc.users[i]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Department, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// Users devuelve los usuarios de la hoja en su orden original (sin hash).
func (uc *UseCase) Users() []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(uc.users))
	for _, u := range uc.users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Department: u.Department, Role: u.Role}
}
