package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/incevents/incevents-api/internal/api/handler/v1/response"
	"github.com/incevents/incevents-api/internal/pkg/jwthelper"
)

// ContextKeyUserID holds the authenticated user's ID in the gin context.
const ContextKeyUserID = "user_id"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing Authorization header")))
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("malformed Authorization header")))
			return
		}

		claims, err := jwthelper.ParseToken([]byte(a.signingKey), tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}
