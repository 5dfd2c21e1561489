// Package urlx 定义 URL 的结构化表示
//
// Parts 是纯数据持有者，各可选组件用指针区分 "缺失" 与 "空串"；
// 查询部分委托给 query.Pairs 以保持字节级无损。
package urlx

import (
	"net/url"
	"strconv"
	"strings"

	"urlclean/internal/query"
	"urlclean/pkg/domain"
	"urlclean/pkg/errx"
)

// Parts URL 的结构化表示
type Parts struct {
	Scheme   *string
	UserInfo *string
	Host     *string
	Port     *int
	Path     string
	Query    query.Pairs
	Fragment *string
}

// String 重组为 scheme://[userInfo@]host[:port][path][?query][#fragment]
// 缺失的可选组件整体省略；查询部分由 query.Pairs 无损渲染。
// 含 ':' 的主机（IPv6 字面量）渲染时加方括号，避免与端口分隔符混淆
func (p Parts) String() string {
	var b strings.Builder
	if p.Scheme != nil {
		b.WriteString(*p.Scheme)
		b.WriteString("://")
	}
	if p.Host != nil {
		if p.UserInfo != nil {
			b.WriteString(*p.UserInfo)
			b.WriteByte('@')
		}
		host := *p.Host
		if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
			b.WriteByte('[')
			b.WriteString(host)
			b.WriteByte(']')
		} else {
			b.WriteString(host)
		}
		if p.Port != nil {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(*p.Port))
		}
	}
	b.WriteString(p.Path)
	if p.Query.Len() > 0 {
		b.WriteByte('?')
		b.WriteString(p.Query.String())
	}
	if p.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*p.Fragment)
	}
	return b.String()
}

// Clone 返回深拷贝，查询序列独立
func (p Parts) Clone() Parts {
	out := p
	out.Scheme = cloneStr(p.Scheme)
	out.UserInfo = cloneStr(p.UserInfo)
	out.Host = cloneStr(p.Host)
	out.Fragment = cloneStr(p.Fragment)
	if p.Port != nil {
		v := *p.Port
		out.Port = &v
	}
	out.Query = p.Query.Clone()
	return out
}

// URL 经过校验的 Parts: scheme 与 host 必定存在
type URL struct {
	parts Parts
}

// FromParts 校验 scheme/host 非空后构造 URL
func FromParts(p Parts) (URL, error) {
	if p.Scheme == nil || p.Host == nil {
		return URL{}, errx.Wrap(errx.CodeInvalidURL, domain.ErrInvalidURL, "scheme 或 host 缺失")
	}
	return URL{parts: p}, nil
}

// FromString 解析原始文本并校验
func FromString(raw string) (URL, error) {
	p, err := Parse(raw)
	if err != nil {
		return URL{}, err
	}
	return FromParts(p)
}

// Parts 返回底层结构化表示的拷贝
func (u URL) Parts() Parts { return u.parts.Clone() }

// Scheme 返回协议
func (u URL) Scheme() string { return *u.parts.Scheme }

// Host 返回主机
func (u URL) Host() string { return *u.parts.Host }

// String 渲染为文本
func (u URL) String() string { return u.parts.String() }

// Parse 基于 net/url 的解析适配器
// 查询部分取 RawQuery 原文交给 query.Parse，不经过 net/url 的
// 键值解码，保证逐字节无损。
// Hostname 返回的 IPv6 字面量不含方括号，渲染时由 String 补回
func Parse(raw string) (Parts, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Parts{}, errx.Wrap(errx.CodeInvalidURL, err, "URL 解析失败")
	}

	var p Parts
	if u.Scheme != "" {
		s := u.Scheme
		p.Scheme = &s
	}
	if h := u.Hostname(); h != "" {
		p.Host = &h
	}
	if ps := u.Port(); ps != "" {
		if n, convErr := strconv.Atoi(ps); convErr == nil {
			p.Port = &n
		}
	}
	if u.User != nil {
		ui := u.User.String()
		p.UserInfo = &ui
	}
	p.Path = u.EscapedPath()
	p.Query = query.Parse(u.RawQuery, false)
	if u.Fragment != "" {
		f := u.EscapedFragment()
		p.Fragment = &f
	}
	return p, nil
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
