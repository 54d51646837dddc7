package entity

// Roles de la hoja de permisos (사용자권한).
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User usuario demo cargado desde la hoja 사용자권한. La contraseña demo se
// hashea con bcrypt al cargar; no existe registro de usuarios en runtime.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
