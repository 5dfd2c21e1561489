package rulespec

import (
	"encoding/json"
	"fmt"
)

// DomainsKind Domains 的变体标签
type DomainsKind uint8

const (
	DomainsAny  DomainsKind = iota // 任意主机
	DomainsList                    // 显式域名列表
)

// Domains 标签联合: 任意主机 / 域名白名单
// 零值为 DomainsAny，配置缺省该字段时规则对所有主机生效
type Domains struct {
	kind DomainsKind
	list []string
}

// AnyDomains 构造匹配任意主机的 Domains
func AnyDomains() Domains { return Domains{kind: DomainsAny} }

// DomainList 构造显式域名白名单
func DomainList(values ...string) Domains {
	list := make([]string, len(values))
	copy(list, values)
	return Domains{kind: DomainsList, list: list}
}

// Kind 返回变体标签，调用方应对其做穷尽 switch
func (d Domains) Kind() DomainsKind { return d.kind }

// IsAny 是否为任意主机变体
func (d Domains) IsAny() bool { return d.kind == DomainsAny }

// List 返回域名列表的副本，Any 变体返回 nil
func (d Domains) List() []string {
	if d.kind != DomainsList {
		return nil
	}
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}

// MarshalJSON Any 序列化为 "*"，列表序列化为字符串数组
func (d Domains) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case DomainsAny:
		return json.Marshal("*")
	case DomainsList:
		return json.Marshal(d.list)
	default:
		return nil, fmt.Errorf("未知的 Domains 变体: %d", d.kind)
	}
}

// UnmarshalJSON 接受 "*" 或字符串数组
func (d *Domains) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "*" {
			*d = AnyDomains()
			return nil
		}
		return fmt.Errorf("domains 字符串形式仅支持 \"*\"，实际为 %q", s)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("domains 必须为 \"*\" 或字符串数组: %w", err)
	}
	*d = DomainList(list...)
	return nil
}

// SubdomainsKind Subdomains 的变体标签
type SubdomainsKind uint8

const (
	SubdomainsAny   SubdomainsKind = iota // 任意子域名
	SubdomainsNone                        // 仅裸域名
	SubdomainsOneOf                       // 指定标签集合
)

// Subdomains 标签联合: 任意子域名 / 仅裸域名 / 固定标签集合
// 零值为 SubdomainsAny
type Subdomains struct {
	kind   SubdomainsKind
	labels []string
}

// AnySubdomains 构造匹配任意子域名的 Subdomains
func AnySubdomains() Subdomains { return Subdomains{kind: SubdomainsAny} }

// NoSubdomains 构造仅匹配裸域名的 Subdomains
func NoSubdomains() Subdomains { return Subdomains{kind: SubdomainsNone} }

// SubdomainsOf 构造匹配指定标签集合的 Subdomains
func SubdomainsOf(labels ...string) Subdomains {
	out := make([]string, len(labels))
	copy(out, labels)
	return Subdomains{kind: SubdomainsOneOf, labels: out}
}

// Kind 返回变体标签，调用方应对其做穷尽 switch
func (s Subdomains) Kind() SubdomainsKind { return s.kind }

// Labels 返回标签集合的副本，非 OneOf 变体返回 nil
func (s Subdomains) Labels() []string {
	if s.kind != SubdomainsOneOf {
		return nil
	}
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// MarshalJSON Any 序列化为 "*"，None 为 "none"，OneOf 为字符串数组
func (s Subdomains) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SubdomainsAny:
		return json.Marshal("*")
	case SubdomainsNone:
		return json.Marshal("none")
	case SubdomainsOneOf:
		return json.Marshal(s.labels)
	default:
		return nil, fmt.Errorf("未知的 Subdomains 变体: %d", s.kind)
	}
}

// UnmarshalJSON 接受 "*"、"none" 或字符串数组
func (s *Subdomains) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		switch str {
		case "*":
			*s = AnySubdomains()
			return nil
		case "none":
			*s = NoSubdomains()
			return nil
		default:
			return fmt.Errorf("subdomains 字符串形式仅支持 \"*\" 或 \"none\"，实际为 %q", str)
		}
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return fmt.Errorf("subdomains 必须为 \"*\"、\"none\" 或字符串数组: %w", err)
	}
	*s = SubdomainsOf(labels...)
	return nil
}
