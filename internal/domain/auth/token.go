package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims — данные, извлекаемые из JWT для отображения и маршрутизации.
type Claims struct {
	Username string
	Roles    []string
}

// DecodeClaims разбирает JWT без проверки подписи. Токен выдан бэкендом
// и подтверждается им же при каждом запросе, поэтому здесь claims нужны
// только для выбора стартовой страницы и приветствия. Подпись не
// проверяется намеренно: у бота нет ключа бэкенда.
func DecodeClaims(token string) (*Claims, error) {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok && sub != "" {
		claims.Username = sub
	} else if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	claims.Roles = extractRoles(mapClaims)
	return claims, nil
}

// extractRoles поддерживает форматы ролей разных JWT-библиотек бэкенда:
// массивы "roles"/"authorities", строку "role" и scope через пробел.
func extractRoles(claims jwt.MapClaims) []string {
	for _, key := range []string{"roles", "authorities"} {
		if raw, ok := claims[key].([]any); ok {
			roles := make([]string, 0, len(raw))
			for _, r := range raw {
				switch v := r.(type) {
				case string:
					roles = append(roles, v)
				case map[string]any:
					if name, ok := v["authority"].(string); ok {
						roles = append(roles, name)
					}
				}
			}
			if len(roles) > 0 {
				return roles
			}
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return []string{role}
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		return strings.Fields(scope)
	}
	return nil
}
