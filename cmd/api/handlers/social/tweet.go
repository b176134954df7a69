package handlers

import (
	"context"

	"VidTube.com/cmd/social/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param CreateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).CreateTweet(ctx, userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param UpdateTweetParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	tweet, err := service.NewTweetService(ctx).UpdateTweet(ctx, userId, param.TweetId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param TweetIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewTweetService(ctx).DeleteTweet(ctx, userId, param.TweetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UserTweets(ctx context.Context, c *app.RequestContext) {
	var param UserTweetsParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	actorId := jwt.ExtractUserId(ctx, c)
	tweets, err := service.NewTweetService(ctx).ListUserTweets(ctx, param.UserId, actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, tweets)
}
