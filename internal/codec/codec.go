// Package codec 实现 URL 组件的百分号编解码
//
// 与 net/url 的区别: 解码永不失败（非法转义原样保留），
// 且 '+' 不会被当作空格处理。
package codec

import "strings"

const upperhex = "0123456789ABCDEF"

// unreserved 判断字节是否属于免编码集合 (ALPHA / DIGIT / - . _ ~)
func unreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	}
	return false
}

// Encode 对 s 的 UTF-8 字节做百分号编码
// 免编码集合之外的每个字节（包括所有非 ASCII 字节）都编码为大写 %XX
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

// Decode 对 s 做尽力而为的百分号解码
// 只识别完整的 %XX 转义；截断或非法的转义原样保留为字面字符，
// 因此该函数永不失败。'+' 不会被解码为空格。
func Decode(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unhex 解析单个十六进制字符
func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
