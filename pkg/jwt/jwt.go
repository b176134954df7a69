package jwt

import (
	"context"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var AccessTokenJwtMiddleware *jwt.HertzJWTMiddleware

// Authenticator 登录认证回调, 由上层注入避免反向依赖业务包
type Authenticator func(ctx context.Context, c *app.RequestContext) (int64, error)

func AccessTokenJwtInit(authenticator Authenticator) {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "vidtube",
		Key:         []byte(config.ConfigInfo.Jwt.SecretKey),
		Timeout:     24 * time.Hour,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if userId, ok := data.(int64); ok {
				return jwt.MapClaims{IdentityKey: userId}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[IdentityKey])
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			return authenticator(ctx, c)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.UnauthorizedCode,
				"message": message,
			})
		},
		TokenLookup: "header: Authorization, query: token",
	})
	if err != nil {
		panic(err)
	}
}

// ExtractUserId 取当前请求的用户ID, 未认证为0
func ExtractUserId(ctx context.Context, c *app.RequestContext) int64 {
	claims := jwt.ExtractClaims(ctx, c)
	v, ok := claims[IdentityKey]
	if !ok {
		return 0
	}
	userId := utils.Transfer(v)
	if userId < 0 {
		return 0
	}
	return userId
}
