// Package toggle 实现关系行的幂等翻转: 不存在则插入, 存在则删除
package toggle

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type State string

const (
	StateCreated State = "created"
	StateRemoved State = "removed"
)

// Flip 按唯一键翻转一行关系并报告结果状态
//
// 查找和写入之间存在并发窗口, 唯一键约束是正确性兜底:
// 插入撞上唯一键说明并发方已创建, 按"created"处理;
// 删除影响0行说明并发方已删除, 按"removed"处理。
// 两种情况都不向调用方暴露冲突错误。
// 需要db开启TranslateError, 否则驱动的1062错误不会映射为gorm.ErrDuplicatedKey
func Flip[R any](ctx context.Context, db *gorm.DB, row *R, query string, args ...interface{}) (State, error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(R)).Where(query, args...).Count(&count).Error; err != nil {
		return "", errors.Wrapf(err, "toggle lookup failed,err:%v", err)
	}

	if count == 0 {
		if err := db.WithContext(ctx).Create(row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// 并发插入抢先, 结果等价于本次创建成功
				return StateCreated, nil
			}
			return "", errors.Wrapf(err, "toggle insert failed,err:%v", err)
		}
		return StateCreated, nil
	}

	res := db.WithContext(ctx).Where(query, args...).Delete(new(R))
	if res.Error != nil {
		return "", errors.Wrapf(res.Error, "toggle delete failed,err:%v", res.Error)
	}
	// RowsAffected为0时并发删除已抢先, 结果同样是"removed"
	return StateRemoved, nil
}
