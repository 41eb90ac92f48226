package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserUsernameExist  = errors.New("用户名已存在")
	ErrPasswordIncorrect  = errors.New("密码错误")
	ErrFileNotSupported   = errors.New("不支持的文件类型")
	ErrOutfitNotFound     = errors.New("穿搭记录不存在")
	ErrNoOutfitDetected   = errors.New("图片中未检测到穿搭")
	ErrScoreUnparsable    = errors.New("评分结果解析失败")
	ErrModelCallFailed    = errors.New("AI服务暂时不可用")
	ErrAnalysisUnparsable = errors.New("分析结果解析失败")
	ErrAnalysisPersist    = errors.New("分析结果保存失败")
	ErrPlanInvalid        = errors.New("未知的订阅计划")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserUsernameExist:  BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrFileNotSupported:   BadRequest,
	ErrOutfitNotFound:     NotFound,
	ErrNoOutfitDetected:   UnprocessableEntity,
	ErrScoreUnparsable:    BadGateway,
	ErrModelCallFailed:    BadGateway,
	ErrAnalysisUnparsable: BadGateway,
	ErrAnalysisPersist:    InternalServerError,
	ErrPlanInvalid:        BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
