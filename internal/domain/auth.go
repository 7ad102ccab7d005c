package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo verificado do token de acesso. O e-mail organizacional
// é a identidade; o papel controla as rotas administrativas.
type Claims struct {
	UserEmail  string
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
