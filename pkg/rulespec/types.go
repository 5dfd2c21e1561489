// Package rulespec 定义 URL 清理规则配置的类型规范 (v1.1)
package rulespec

import (
	"encoding/json"

	"github.com/google/uuid"
)

// 配置版本常量
const (
	ConfigVersion       = "1.1" // 当前配置格式版本
	LegacyConfigVersion = "1.0" // 旧版扁平格式，Decode 时自动迁移
)

// Config 配置文件根结构
type Config struct {
	ID          string `json:"id"`                    // 配置唯一标识符
	Name        string `json:"name"`                  // 配置名称
	Version     string `json:"version"`               // 配置格式规范版本
	Description string `json:"description,omitempty"` // 配置描述
	Rules       []Rule `json:"rules"`                 // 规则列表，声明顺序即评估顺序
}

// NewConfig 创建一个新的空配置（带 UUID）
func NewConfig(name string) *Config {
	return &Config{
		ID:      uuid.New().String(),
		Name:    name,
		Version: ConfigVersion,
		Rules:   []Rule{},
	}
}

// Rule 单条清理规则
// 规则按声明顺序评估，声明位置是匹配来源追溯的唯一键
type Rule struct {
	ID      string `json:"id"`      // 规则唯一标识符
	Name    string `json:"name"`    // 规则名称
	Enabled bool   `json:"enabled"` // 是否启用
	When    When   `json:"when"`    // 匹配条件
	Then    Then   `json:"then"`    // 命中后的动作
}

// NewRule 创建一个新的空规则（带 UUID）
func NewRule(name string) Rule {
	return Rule{
		ID:      uuid.New().String(),
		Name:    name,
		Enabled: true,
	}
}

// When 规则的匹配条件
type When struct {
	Host    HostCondition `json:"host"`              // 主机条件
	Schemes []string      `json:"schemes,omitempty"` // 协议白名单，空表示不限
}

// HostCondition 主机匹配条件
type HostCondition struct {
	Domains    Domains    `json:"domains"`              // 域名集合
	Subdomains Subdomains `json:"subdomains,omitempty"` // 子域名约束
}

// Then 规则命中后的动作
type Then struct {
	Remove []PatternSpec    `json:"remove"`         // 待移除参数名模式
	Warn   *WarningSettings `json:"warn,omitempty"` // 警告设置覆盖
}

// PatternKind 模式种类
type PatternKind string

const (
	KindExact PatternKind = "exact" // 精确匹配
	KindGlob  PatternKind = "glob"  // 通配符: '*' 任意串, '?' 单字符
	KindRegex PatternKind = "regex" // 正则，整串匹配
)

// PatternCase 大小写匹配方式
type PatternCase string

const (
	CaseSensitive   PatternCase = "sensitive"   // 区分大小写
	CaseInsensitive PatternCase = "insensitive" // 不区分大小写
)

// PatternSpec 不可变的模式声明，按需编译为谓词
type PatternSpec struct {
	Pattern string      `json:"pattern"`        // 原始模式串
	Kind    PatternKind `json:"kind,omitempty"` // 缺省为 glob
	Case    PatternCase `json:"case,omitempty"` // 缺省为 insensitive
}

// EffectiveKind 返回应用缺省值后的模式种类
func (s PatternSpec) EffectiveKind() PatternKind {
	if s.Kind == "" {
		return KindGlob
	}
	return s.Kind
}

// EffectiveCase 返回应用缺省值后的大小写方式
// 跟踪参数名在实际 URL 中大小写混杂，缺省不区分大小写
func (s PatternSpec) EffectiveCase() PatternCase {
	if s.Case == "" {
		return CaseInsensitive
	}
	return s.Case
}

// UnmarshalJSON 接受对象形式或裸字符串缩写
// 裸字符串 "utm_*" 等价于 {"pattern":"utm_*"}（即缺省 glob/insensitive）
func (s *PatternSpec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = PatternSpec{Pattern: str}
		return nil
	}
	type alias PatternSpec
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = PatternSpec(a)
	return nil
}

// MergeMode 敏感参数列表的合并方式
type MergeMode string

const (
	MergeReplace MergeMode = "replace" // 整体替换（缺省）
	MergeUnion   MergeMode = "union"   // 与已有值求并集
)

// WarningSettings 警告设置
// 所有字段均可缺省，以便表达部分覆盖
type WarningSettings struct {
	WarnOnEmbeddedCredentials *bool     `json:"warnOnEmbeddedCredentials,omitempty"` // URL 内嵌凭据时告警
	SensitiveParams           []string  `json:"sensitiveParams,omitempty"`           // 需要遮蔽显示的参数名
	SensitiveMerge            MergeMode `json:"sensitiveMerge,omitempty"`            // 缺省 replace
	Version                   uint      `json:"version,omitempty"`                   // 设置版本号，合并时取最大值
}

// EffectiveMerge 返回应用缺省值后的合并方式
func (w WarningSettings) EffectiveMerge() MergeMode {
	if w.SensitiveMerge == "" {
		return MergeReplace
	}
	return w.SensitiveMerge
}
