package model

// Роли, которые бэкенд кладет в клеймы токена.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Session активная сессия чата: токен и данные, извлеченные из его клеймов.
// Клеймы декодируются без проверки подписи и используются только для
// отображения и маршрутизации; реальная авторизация выполняется сервером
// при каждом запросе с bearer-токеном.
type Session struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// HasRole проверяет наличие роли в сессии.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin сообщает, есть ли у сессии роль ADMIN.
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

// HomePage возвращает стартовую страницу для сессии в зависимости от роли.
func (s *Session) HomePage() Page {
	if s.IsAdmin() {
		return PageAdminDashboard
	}
	return PageUserDashboard
}
