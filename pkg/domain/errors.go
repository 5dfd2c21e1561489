package domain

import "errors"

// URL 相关错误
var (
	ErrInvalidURL = errors.New("invalid url")
)

// 规则相关错误
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrRuleCompile    = errors.New("rule compile failed")
)

// 配置相关错误
var (
	ErrInvalidConfig = errors.New("invalid config")
)
