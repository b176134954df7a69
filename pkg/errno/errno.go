package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode       = 0
	ServiceErrCode    = 10001
	ParamErrCode      = 10002
	NotFoundErrCode   = 10003
	UnauthorizedCode  = 10004
	ConflictErrCode   = 10005
	MysqlErrCode      = 10006
	RedisErrCode      = 10007
	UserNotExistCode  = 10101
	UserAlreadyExist  = 10102
	VideoNotExistCode = 10201
	AuthorizationCode = 10301
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success         = NewErrNo(SuccessCode, "success")
	ServiceErr      = NewErrNo(ServiceErrCode, "service internal error")
	RequestErr      = NewErrNo(ParamErrCode, "invalid request param")
	NotFoundErr     = NewErrNo(NotFoundErrCode, "resource not found")
	UnauthorizedErr = NewErrNo(UnauthorizedCode, "actor identity required")
	// ConflictErr 预留: 切换引擎的唯一键冲突按幂等结果处理, 不会抛出该错误
	ConflictErr         = NewErrNo(ConflictErrCode, "resource conflict")
	MysqlErr            = NewErrNo(MysqlErrCode, "mysql error")
	RedisErr            = NewErrNo(RedisErrCode, "redis error")
	UserNotExistErr     = NewErrNo(UserNotExistCode, "user not exist")
	UserAlreadyExistErr = NewErrNo(UserAlreadyExist, "user already exist")
	VideoNotExistErr    = NewErrNo(VideoNotExistCode, "video not exist")
	TokenInvailedErr    = NewErrNo(AuthorizationCode, "token invalid")
)

// ConvertErr 将任意error转换为ErrNo
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
