// Package query 实现查询串的有序无损分词
//
// 不变式: Parse(q).String() == q 对任意 q 成立（含空片段、重复键、
// 空键空值等形态），分词只切分、不丢弃、不归并。
package query

import "strings"

// KeyPredicate 基于解码后键名的谓词
type KeyPredicate func(key string) bool

// Pairs 查询串分词后的有序 Token 序列
type Pairs struct {
	tokens []Token
}

// Parse 解析原始查询串
// 以 '&' 切分（acceptSemicolon 为 true 时 ';' 同样作为分隔符），
// 空片段不折叠；片段内按第一个 '=' 切分键值，值中允许出现 '='。
// 空串解析为零个 Token。
func Parse(raw string, acceptSemicolon bool) Pairs {
	if raw == "" {
		return Pairs{}
	}
	segs := splitSegments(raw, acceptSemicolon)
	p := Pairs{tokens: make([]Token, 0, len(segs))}
	for _, seg := range segs {
		if i := strings.IndexByte(seg, '='); i >= 0 {
			p.tokens = append(p.tokens, NewTokenRaw(seg[:i], true, seg[i+1:]))
		} else {
			p.tokens = append(p.tokens, NewTokenRaw(seg, false, ""))
		}
	}
	return p
}

// splitSegments 按分隔符切分，空片段一律保留
// 注意不能用 strings.FieldsFunc，它会折叠空片段
func splitSegments(raw string, acceptSemicolon bool) []string {
	if !acceptSemicolon {
		return strings.Split(raw, "&")
	}
	var segs []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '&' || raw[i] == ';' {
			segs = append(segs, raw[start:i])
			start = i + 1
		}
	}
	return append(segs, raw[start:])
}

// String 以 '&' 连接各 Token 原文，无损还原查询串
func (p Pairs) String() string {
	parts := make([]string, len(p.tokens))
	for i, t := range p.tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, "&")
}

// Len 返回 Token 数量
func (p Pairs) Len() int { return len(p.tokens) }

// Tokens 返回 Token 序列的副本
func (p Pairs) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Clone 返回深拷贝
func (p Pairs) Clone() Pairs {
	return Pairs{tokens: p.Tokens()}
}

// GetAll 返回解码键名精确匹配（区分大小写）的全部解码值，保持出现顺序
func (p Pairs) GetAll(key string) []string {
	var out []string
	for _, t := range p.tokens {
		if t.Key() == key {
			out = append(out, t.Value())
		}
	}
	return out
}

// GetFirst 返回解码键名首次匹配的解码值
func (p Pairs) GetFirst(key string) (string, bool) {
	for _, t := range p.tokens {
		if t.Key() == key {
			return t.Value(), true
		}
	}
	return "", false
}

// Add 追加一个 Token
func (p *Pairs) Add(t Token) {
	p.tokens = append(p.tokens, t)
}

// AddRaw 以原始形式追加键值
func (p *Pairs) AddRaw(rawKey string, hasEquals bool, rawValue string) {
	p.Add(NewTokenRaw(rawKey, hasEquals, rawValue))
}

// AddDecoded 以解码形式追加键值（存储前编码）
func (p *Pairs) AddDecoded(key, value string) {
	p.Add(NewTokenDecoded(key, value))
}

// Remove 删除解码键名精确匹配的全部 Token
func (p Pairs) Remove(key string) Pairs {
	return p.RemoveWhere(func(k string) bool { return k == key })
}

// RemoveWhere 删除解码键名满足谓词的全部 Token
func (p Pairs) RemoveWhere(pred KeyPredicate) Pairs {
	out := Pairs{tokens: make([]Token, 0, len(p.tokens))}
	for _, t := range p.tokens {
		if !pred(t.Key()) {
			out.tokens = append(out.tokens, t)
		}
	}
	return out
}

// RemoveAnyOf 删除解码键名命中任一谓词的全部 Token
func (p Pairs) RemoveAnyOf(preds []KeyPredicate) Pairs {
	if len(preds) == 0 {
		return p.Clone()
	}
	return p.RemoveWhere(func(k string) bool {
		for _, pred := range preds {
			if pred(k) {
				return true
			}
		}
		return false
	})
}

// FilterKeys 仅保留解码键名满足谓词的 Token（RemoveWhere 的取反）
func (p Pairs) FilterKeys(pred KeyPredicate) Pairs {
	return p.RemoveWhere(func(k string) bool { return !pred(k) })
}

// ReplaceFirst 用解码值替换首个匹配键的值，并删除该键的后续重复项
// 不存在匹配键时原样返回
func (p Pairs) ReplaceFirst(key, value string) Pairs {
	out := Pairs{tokens: make([]Token, 0, len(p.tokens))}
	replaced := false
	for _, t := range p.tokens {
		if t.Key() != key {
			out.tokens = append(out.tokens, t)
			continue
		}
		if !replaced {
			out.tokens = append(out.tokens, NewTokenDecoded(key, value))
			replaced = true
		}
	}
	return out
}

// ReplaceFirstRaw 用原始形式替换首个匹配键的 Token，并删除后续重复项
// key 按解码后键名匹配
func (p Pairs) ReplaceFirstRaw(key string, t Token) Pairs {
	out := Pairs{tokens: make([]Token, 0, len(p.tokens))}
	replaced := false
	for _, cur := range p.tokens {
		if cur.Key() != key {
			out.tokens = append(out.tokens, cur)
			continue
		}
		if !replaced {
			out.tokens = append(out.tokens, t)
			replaced = true
		}
	}
	return out
}

// ToQueryMap 按解码键名分组为有序值列表
// 值保持 URL 中的出现顺序；底层有序表示不受影响
func (p Pairs) ToQueryMap() map[string][]string {
	out := make(map[string][]string)
	for _, t := range p.tokens {
		out[t.Key()] = append(out[t.Key()], t.Value())
	}
	return out
}
