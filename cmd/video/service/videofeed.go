package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/pagination"
)

type VideoFeedService struct {
	ctx context.Context
}

func NewVideoFeedService(ctx context.Context) *VideoFeedService {
	return &VideoFeedService{ctx: ctx}
}

// feedSortColumns 排序字段白名单, 列名不允许由调用方拼接
var feedSortColumns = map[string]string{
	"views":      "visit_count",
	"created_at": "created_at",
	"duration":   "duration",
}

// SearchVideos 浏览页视频检索: 标题/描述模糊匹配 + 排序 + 分页
// 只返回已发布的视频, 非法排序字段回落到发布时间
func (service *VideoFeedService) SearchVideos(ctx context.Context, query, sortBy, sortOrder string, page, limit int64) (*pagination.Page[model.VideoCard], error) {
	if strings.TrimSpace(query) == "" {
		return nil, errno.RequestErr.WithMessage("query is required")
	}

	column, ok := feedSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	order := column + " " + direction + ", video_id DESC"

	page, limit = pagination.Normalize(page, limit)
	pattern := "%" + strings.TrimSpace(query) + "%"
	videos, total, err := join.ManyPaged[model.Video](ctx, db.DB, order,
		pagination.Offset(page, limit), int(limit),
		"is_published = ? AND (title LIKE ? OR description LIKE ?)", true, pattern, pattern)
	if err != nil {
		return nil, errno.ServiceErr
	}

	cards := make([]model.VideoCard, 0, len(videos))
	for _, video := range videos {
		owner, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", video.UserId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		cards = append(cards, model.VideoCard{
			VideoId:     video.VideoId,
			Title:       video.Title,
			Description: video.Description,
			CoverUrl:    video.CoverUrl,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			CreatedAt:   video.CreatedAt,
			UserName:    owner.UserName,
		})
	}
	return pagination.New(cards, page, limit, total), nil
}
