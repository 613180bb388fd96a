package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/response"
	"github.com/guestlistapp/guestlist-api/internal/pkg/jwthelper"
)

// Context keys set by VerifyJWT for downstream handlers.
const (
	CtxKeyUserID  = "userID"
	CtxKeyIsAdmin = "isAdmin"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT enforces the Authorization: Bearer <token> contract. A missing
// header, a malformed header and a failed verification all abort with the
// same 401 body, on purpose.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		claims, err := jwthelper.VerifyToken(a.signingKey, parts[1])
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		ctx.Set(CtxKeyUserID, claims.UserID)
		ctx.Set(CtxKeyIsAdmin, claims.IsAdmin)
		ctx.Next()
	}
}

// RequireAdmin must run after VerifyJWT. Authorization is derived entirely
// from the token payload; no database lookup happens here.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(CtxKeyIsAdmin) {
			response.RenderErr(ctx, response.ErrForbidden())

			return
		}

		ctx.Next()
	}
}
