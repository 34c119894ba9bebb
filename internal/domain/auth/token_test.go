package auth

import (
	"encoding/base64"
	"encoding/json"
	"reflect"
	"testing"
)

// makeToken собирает неподписанный JWT с указанными claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

func TestDecodeClaims(t *testing.T) {
	tests := []struct {
		name         string
		claims       map[string]any
		wantUsername string
		wantRoles    []string
	}{
		{
			name:         "sub and roles array",
			claims:       map[string]any{"sub": "admin", "roles": []string{"ADMIN", "USER"}},
			wantUsername: "admin",
			wantRoles:    []string{"ADMIN", "USER"},
		},
		{
			name:         "username fallback",
			claims:       map[string]any{"username": "alice", "role": "USER"},
			wantUsername: "alice",
			wantRoles:    []string{"USER"},
		},
		{
			name:         "spring authorities objects",
			claims:       map[string]any{"sub": "bob", "authorities": []map[string]any{{"authority": "ADMIN"}}},
			wantUsername: "bob",
			wantRoles:    []string{"ADMIN"},
		},
		{
			name:         "scope string",
			claims:       map[string]any{"sub": "carol", "scope": "USER ADMIN"},
			wantUsername: "carol",
			wantRoles:    []string{"USER", "ADMIN"},
		},
		{
			name:         "no roles",
			claims:       map[string]any{"sub": "dave"},
			wantUsername: "dave",
			wantRoles:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeClaims(makeToken(t, tc.claims))
			if err != nil {
				t.Fatalf("DecodeClaims() error: %v", err)
			}
			if got.Username != tc.wantUsername {
				t.Errorf("Username = %q, want %q", got.Username, tc.wantUsername)
			}
			if !reflect.DeepEqual(got.Roles, tc.wantRoles) {
				t.Errorf("Roles = %v, want %v", got.Roles, tc.wantRoles)
			}
		})
	}
}

func TestDecodeClaimsRejectsGarbage(t *testing.T) {
	if _, err := DecodeClaims("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}
