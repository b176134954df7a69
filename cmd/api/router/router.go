package router

import (
	interaction "VidTube.com/cmd/api/handlers/interaction"
	relation "VidTube.com/cmd/api/handlers/relation"
	social "VidTube.com/cmd/api/handlers/social"
	user "VidTube.com/cmd/api/handlers/user"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func Register(r *server.Hertz) {
	v1 := r.Group("/v1")

	userRouter := v1.Group("/user")
	{
		userRouter.POST("/register", user.Register)
		userRouter.POST("/login", jwt.AccessTokenJwtMiddleware.LoginHandler)
		userRouter.GET("/info", append(authfunc.Auth(), user.GetUserInfo)...)
		userRouter.PUT("/update", append(authfunc.Auth(), user.UpdateUser)...)
		userRouter.DELETE("/delete", append(authfunc.Auth(), user.DeleteUser)...)
		userRouter.POST("/password", append(authfunc.Auth(), user.ChangePassword)...)
	}

	channelRouter := v1.Group("/channel")
	channelRouter.Use(authfunc.OptionalAuth())
	{
		channelRouter.GET("/:username", user.ChannelProfile)
		channelRouter.GET("/:username/stats", user.ChannelStats)
		channelRouter.GET("/:username/videos", user.ChannelVideos)
	}

	historyRouter := v1.Group("/history", authfunc.Auth()...)
	{
		historyRouter.POST("/add", user.AddWatchHistory)
		historyRouter.GET("/list", user.GetWatchHistory)
	}

	videoPublic := v1.Group("/video")
	videoPublic.Use(authfunc.OptionalAuth())
	{
		videoPublic.GET("/feed", video.VideoFeed)
		videoPublic.GET("/:video_id", video.VideoDetail)
		videoPublic.POST("/:video_id/visit", video.VideoVisit)
		videoPublic.GET("/:video_id/comments", interaction.ListComments)
	}

	videoAuth := v1.Group("/video", authfunc.Auth()...)
	{
		videoAuth.POST("/publish", video.PublishVideo)
		videoAuth.PUT("/:video_id", video.UpdateVideo)
		videoAuth.DELETE("/:video_id", video.DeleteVideo)
		videoAuth.POST("/:video_id/toggle", video.TogglePublishStatus)
	}

	likeRouter := v1.Group("/like", authfunc.Auth()...)
	{
		likeRouter.POST("/action", interaction.LikeAction)
		likeRouter.GET("/videos", interaction.LikedVideos)
	}

	commentRouter := v1.Group("/comment", authfunc.Auth()...)
	{
		commentRouter.POST("/create", interaction.CreateComment)
		commentRouter.PUT("/:comment_id", interaction.UpdateComment)
		commentRouter.DELETE("/:comment_id", interaction.DeleteComment)
	}

	relationRouter := v1.Group("/relation")
	{
		relationRouter.POST("/action", append(authfunc.Auth(), relation.SubscribeAction)...)
		relationRouter.GET("/subscriptions", append(authfunc.Auth(), relation.SubscribedChannels)...)
		relationRouter.GET("/:channel_id/subscribers", relation.SubscriberList)
	}

	playlistRouter := v1.Group("/playlist", authfunc.Auth()...)
	{
		playlistRouter.POST("/create", social.CreatePlaylist)
		playlistRouter.GET("/:playlist_id", social.GetPlaylist)
		playlistRouter.PUT("/:playlist_id", social.UpdatePlaylist)
		playlistRouter.POST("/:playlist_id/videos", social.AddPlaylistVideo)
		playlistRouter.DELETE("/:playlist_id/videos/:entry_id", social.RemovePlaylistVideo)
		playlistRouter.DELETE("/:playlist_id", social.DeletePlaylist)
	}

	tweetRouter := v1.Group("/tweet", authfunc.Auth()...)
	{
		tweetRouter.POST("/create", social.CreateTweet)
		tweetRouter.PUT("/:tweet_id", social.UpdateTweet)
		tweetRouter.DELETE("/:tweet_id", social.DeleteTweet)
	}

	usersRouter := v1.Group("/users")
	usersRouter.Use(authfunc.OptionalAuth())
	{
		usersRouter.GET("/:user_id/playlists", social.UserPlaylists)
		usersRouter.GET("/:user_id/tweets", social.UserTweets)
	}
}
