package query

import "urlclean/internal/codec"

// Token 查询串中的单个 key[=value] 片段
// 同时保留原始（已编码）形式与 '=' 是否出现，保证无损还原
type Token struct {
	rawKey    string
	hasEquals bool
	rawValue  string

	// 解码视图在构造时一次性计算（解码永不失败）
	decodedKey   string
	decodedValue string
}

// NewTokenRaw 由原始（已编码）片段构造 Token
func NewTokenRaw(rawKey string, hasEquals bool, rawValue string) Token {
	return Token{
		rawKey:       rawKey,
		hasEquals:    hasEquals,
		rawValue:     rawValue,
		decodedKey:   codec.Decode(rawKey),
		decodedValue: codec.Decode(rawValue),
	}
}

// NewTokenDecoded 由解码后的键值构造 Token，编码后存储
func NewTokenDecoded(key, value string) Token {
	return NewTokenRaw(codec.Encode(key), true, codec.Encode(value))
}

// RawKey 返回原始（已编码）键
func (t Token) RawKey() string { return t.rawKey }

// RawValue 返回原始（已编码）值
func (t Token) RawValue() string { return t.rawValue }

// HasEquals 返回原文中是否出现 '='
func (t Token) HasEquals() bool { return t.hasEquals }

// Key 返回解码后的键
func (t Token) Key() string { return t.decodedKey }

// Value 返回解码后的值
func (t Token) Value() string { return t.decodedValue }

// String 还原片段原文: 有 '=' 时为 key=value，否则仅 key
func (t Token) String() string {
	if t.hasEquals {
		return t.rawKey + "=" + t.rawValue
	}
	return t.rawKey
}
