package identity

// Роли пользователей в identity-провайдере
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserInfo профиль пользователя из identity-провайдера
type UserInfo struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}

// IsAdmin проверяет админскую роль
func (u UserInfo) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от identity-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
