// Package join 提供按引用字段组合各数据表的三类通用关联:
// 单值关联(One) 聚合关联(Count/Exists) 集合关联(Many)
// 所有关联只读不写, 无匹配时返回零值而不是错误
package join

import (
	"context"

	"gorm.io/gorm"
)

// One 单值关联: 按条件取至多一条记录, 缺失时返回def
// 缺失不是错误, 上层用零值记录继续组合视图
func One[T any](ctx context.Context, db *gorm.DB, def T, query string, args ...interface{}) (T, error) {
	var rows []T
	if err := db.WithContext(ctx).Model(new(T)).Where(query, args...).Limit(1).Find(&rows).Error; err != nil {
		return def, err
	}
	if len(rows) == 0 {
		return def, nil
	}
	return rows[0], nil
}

// Count 聚合关联: 统计关联表中满足条件的记录数, 无匹配为0
func Count[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Exists 聚合关联: 是否存在满足条件的记录, 无匹配为false
func Exists[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (bool, error) {
	count, err := Count[T](ctx, db, query, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Many 集合关联: 取全部满足条件的记录, 无匹配为空切片
func Many[T any](ctx context.Context, db *gorm.DB, order string, query string, args ...interface{}) ([]T, error) {
	rows := make([]T, 0)
	tx := db.WithContext(ctx).Model(new(T)).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ManyPaged 集合关联的分页形式, 同时返回未分页的总数
// offset/limit由调用方归一化后传入
func ManyPaged[T any](ctx context.Context, db *gorm.DB, order string, offset, limit int, query string, args ...interface{}) ([]T, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]T, 0)
	tx := db.WithContext(ctx).Model(new(T)).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
