package utils

import (
	"strconv"
)

// Transfer 将JWT载荷中的用户ID统一转换为int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		// JSON反序列化后数字默认为float64
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}
