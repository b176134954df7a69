package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/social/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("Tweet content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxTweetLength {
		return errno.RequestErr.WithMessage("Tweet too long, maximum 280 characters allowed")
	}
	return nil
}

func (service *TweetService) CreateTweet(ctx context.Context, userId int64, content string) (*model.Tweet, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	if err := service.validateContent(content); err != nil {
		return nil, err
	}

	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(ctx, tweet); err != nil {
		return nil, errno.ServiceErr
	}
	return tweet, nil
}

func (service *TweetService) UpdateTweet(ctx context.Context, userId, tweetId int64, content string) (*model.Tweet, error) {
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	tweet, err := service.findOwnedTweet(ctx, tweetId, userId)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	tweet.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := db.UpdateTweetContent(ctx, tweetId, tweet.Content, tweet.UpdatedAt); err != nil {
		return nil, errno.ServiceErr
	}
	return tweet, nil
}

func (service *TweetService) DeleteTweet(ctx context.Context, userId, tweetId int64) error {
	if _, err := service.findOwnedTweet(ctx, tweetId, userId); err != nil {
		return err
	}
	if err := db.DeleteTweet(ctx, tweetId); err != nil {
		return errno.ServiceErr
	}
	return nil
}

// ListUserTweets 用户推文列表, 附带点赞数和请求者的点赞状态
func (service *TweetService) ListUserTweets(ctx context.Context, userId, actorId int64) ([]model.TweetInfo, error) {
	tweets, err := db.GetUserTweets(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	infos := make([]model.TweetInfo, 0, len(tweets))
	for _, tweet := range tweets {
		likeCount, err := join.Count[model.Like](ctx, db.DB, "target_type = ? AND target_id = ?", constants.TargetTypeTweet, tweet.TweetId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		isLiked := false
		if actorId != 0 {
			isLiked, err = join.Exists[model.Like](ctx, db.DB, "target_type = ? AND target_id = ? AND user_id = ?", constants.TargetTypeTweet, tweet.TweetId, actorId)
			if err != nil {
				return nil, errno.ServiceErr
			}
		}
		infos = append(infos, model.TweetInfo{
			TweetId:   tweet.TweetId,
			Content:   tweet.Content,
			CreatedAt: tweet.CreatedAt,
			LikeCount: likeCount,
			IsLiked:   isLiked,
		})
	}
	return infos, nil
}

func (service *TweetService) findOwnedTweet(ctx context.Context, tweetId, userId int64) (*model.Tweet, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	tweet, exist, err := db.GetTweetInfo(ctx, tweetId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("tweet not found")
	}
	if tweet.UserId != userId {
		return nil, errno.UnauthorizedErr.WithMessage("not the owner of this tweet")
	}
	return tweet, nil
}
