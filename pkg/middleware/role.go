package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tempo-api/internal/domain"
	"github.com/vfg2006/sales-tempo-api/pkg/apiErrors"
)

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrOfficeNotAllowed = errors.New("office outside user scope")
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é um array de IDs de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := UserFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HQOnly libera a rota apenas para a matriz
func HQOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleHQ})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleHQ, domain.RoleOffice})
}

// ScopeOffice resolve o filtro de escritório efetivo da requisição. Usuário de
// escritório fica preso ao próprio escritório; a matriz pede o que quiser.
func ScopeOffice(r *http.Request, requested string) (string, error) {
	claims, ok := UserFromContext(r.Context())
	if !ok {
		return "", ErrNotAuthenticated
	}

	requested = strings.TrimSpace(requested)
	if claims.IsHQ() {
		return requested, nil
	}

	if requested != "" && requested != claims.Office {
		return "", ErrOfficeNotAllowed
	}
	return claims.Office, nil
}
