package main

import (
	"context"
	"fmt"

	"VidTube.com/cmd/api/router"
	interactiondal "VidTube.com/cmd/interaction/dal"
	relationdal "VidTube.com/cmd/relation/dal"
	socialdal "VidTube.com/cmd/social/dal"
	userdal "VidTube.com/cmd/user/dal"
	userservice "VidTube.com/cmd/user/service"
	videodal "VidTube.com/cmd/video/dal"
	"VidTube.com/cmd/video/infras/redis"
	"VidTube.com/config"
	"VidTube.com/config/pprof"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	userdal.Init()
	videodal.Init()
	interactiondal.Init()
	relationdal.Init()
	socialdal.Init()
	redis.Load()
	cache.Load()
	pprof.Load()

	if err := utils.InitSnowflake(1, 1); err != nil {
		panic(err)
	}

	// 事件总线挂不上也照常服务
	rabbitmqURL := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr,
	)
	producer, err := mq.NewProducer(rabbitmqURL)
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, toggle events disabled: %v", err)
	} else {
		mq.SetDefault(producer)
	}
}

type loginParam struct {
	UserName string `form:"user_name" json:"user_name"`
	Password string `form:"password" json:"password"`
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 初始化 JWT
	jwt.AccessTokenJwtInit(func(ctx context.Context, c *app.RequestContext) (int64, error) {
		var param loginParam
		if err := c.BindAndValidate(&param); err != nil {
			return 0, err
		}
		user, err := userservice.NewLoginUserService(ctx).LoginUser(ctx, param.UserName, param.Password)
		if err != nil {
			return 0, err
		}
		return user.UserId, nil
	})

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	// 注册路由
	router.Register(r)

	r.Spin()
}
