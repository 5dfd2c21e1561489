// Package hostcanon 实现主机名的规范化
//
// 把任意来源的主机串归一到可比较的 ASCII (punycode) 形式。
// 规范化失败返回 false 而不是错误，调用方按 "不匹配" 处理（fail-closed）。
package hostcanon

import (
	"net"
	"strings"

	"golang.org/x/net/idna"
)

// Canonicalizer 主机名规范化器
// 无状态且纯函数式，同一输入永远得到同一输出，且对自身输出幂等
type Canonicalizer struct {
	profile *idna.Profile
}

// New 创建规范化器
func New() *Canonicalizer {
	return &Canonicalizer{
		profile: idna.New(
			idna.MapForLookup(),
			idna.StrictDomainName(true),
			idna.VerifyDNSLength(true),
		),
	}
}

// Unicode 中与 '.' 同形的分隔符
const dotLookalikes = "。．｡"

// ToASCII 把主机名规范化为小写的 ASCII (punycode) 形式
// 空输入、含非法字符、标签为空或超长时返回 ("", false)。
// IPv4/IPv6 字面量与 localhost 原样通过（仅小写化），
// 已是 punycode (xn--) 的标签原样保留。
func (c *Canonicalizer) ToASCII(host string) (string, bool) {
	if host == "" {
		return "", false
	}

	h := strings.ToLower(host)
	for _, r := range dotLookalikes {
		h = strings.ReplaceAll(h, string(r), ".")
	}
	h = strings.TrimRight(h, ".")
	if h == "" {
		return "", false
	}

	// IP 字面量直接通过，不进 IDN 流程
	if ip := net.ParseIP(strings.Trim(h, "[]")); ip != nil {
		return h, true
	}

	// 前导 '.' 产生空标签，显式拒绝
	if strings.HasPrefix(h, ".") || strings.Contains(h, "..") {
		return "", false
	}

	ascii, err := c.profile.ToASCII(h)
	if err != nil || ascii == "" {
		return "", false
	}
	return ascii, true
}
