package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
	"github.com/pkg/errors"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "CreateTweet failed,err:%v", err)
	}
	return nil
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, bool, error) {
	var tweets []model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Limit(1).Find(&tweets).Error; err != nil {
		return nil, false, errors.Wrapf(err, "GetTweetInfo failed,err:%v", err)
	}
	if len(tweets) == 0 {
		return nil, false, nil
	}
	return &tweets[0], true, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content, updatedAt string) error {
	updates := map[string]interface{}{
		"content":    content,
		"updated_at": updatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweetContent failed,err:%v", err)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTweet failed,err:%v", err)
	}
	return nil
}

func GetUserTweets(ctx context.Context, userId int64) ([]model.Tweet, error) {
	return join.Many[model.Tweet](ctx, DB, "created_at DESC, tweet_id DESC", "user_id = ?", userId)
}
