package authfunc

import (
	"context"

	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.AccessTokenJwtMiddleware.MiddlewareFunc(),
	)
}

// OptionalAuth 公开接口也要感知访问者, 有token就解析, 没有不拦截
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := jwt.AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c); err == nil {
			c.Set("JWT_PAYLOAD", claims)
		}
		c.Next(ctx)
	}
}
