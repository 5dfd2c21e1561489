// Package pattern 实现参数名模式的编译引擎
//
// 支持 exact/glob/regex 三种模式与两种大小写方式，
// glob 与 regex 统一翻译为锚定整串匹配的正则，经 regexutil 缓存编译。
package pattern

import (
	"fmt"
	"strings"

	"urlclean/internal/regexutil"
	"urlclean/pkg/errx"
	"urlclean/pkg/rulespec"
)

// Predicate 字符串谓词
type Predicate func(s string) bool

// Engine 模式编译引擎
type Engine struct {
	cache *regexutil.Cache
}

// New 创建模式编译引擎
func New() *Engine {
	return &Engine{cache: regexutil.New()}
}

// SupportedKinds 返回引擎支持的模式种类
// 能力集显式暴露，便于未来的引擎变体声明更窄的支持范围
func (e *Engine) SupportedKinds() []rulespec.PatternKind {
	return []rulespec.PatternKind{rulespec.KindExact, rulespec.KindGlob, rulespec.KindRegex}
}

// SupportedCases 返回引擎支持的大小写方式
func (e *Engine) SupportedCases() []rulespec.PatternCase {
	return []rulespec.PatternCase{rulespec.CaseSensitive, rulespec.CaseInsensitive}
}

// Supports 判断引擎是否支持给定模式声明
func (e *Engine) Supports(spec rulespec.PatternSpec) bool {
	kindOK := false
	for _, k := range e.SupportedKinds() {
		if spec.EffectiveKind() == k {
			kindOK = true
			break
		}
	}
	caseOK := false
	for _, c := range e.SupportedCases() {
		if spec.EffectiveCase() == c {
			caseOK = true
			break
		}
	}
	return kindOK && caseOK
}

// Validate 校验模式声明是否可编译
// exact 恒合法；glob 合法当且仅当其正则翻译可编译；
// regex 合法当且仅当原始串可按整串匹配形式编译
func (e *Engine) Validate(spec rulespec.PatternSpec) error {
	_, err := e.Compile(spec)
	return err
}

// Compile 把模式声明编译为谓词，非法模式返回带类型码的错误
func (e *Engine) Compile(spec rulespec.PatternSpec) (Predicate, error) {
	foldCase := spec.EffectiveCase() == rulespec.CaseInsensitive

	switch kind := spec.EffectiveKind(); kind {
	case rulespec.KindExact:
		raw := spec.Pattern
		if foldCase {
			return func(s string) bool { return strings.EqualFold(s, raw) }, nil
		}
		return func(s string) bool { return s == raw }, nil

	case rulespec.KindGlob:
		re, err := e.cache.Get(globToRegex(spec.Pattern), foldCase)
		if err != nil {
			return nil, errx.Wrap(errx.CodePatternInvalid, err,
				fmt.Sprintf("glob 模式 %q 不可编译", spec.Pattern))
		}
		return re.MatchString, nil

	case rulespec.KindRegex:
		re, err := e.cache.Get(anchor(spec.Pattern), foldCase)
		if err != nil {
			return nil, errx.Wrap(errx.CodePatternInvalid, err,
				fmt.Sprintf("正则模式 %q 不可编译", spec.Pattern))
		}
		return re.MatchString, nil

	default:
		return nil, errx.New(errx.CodePatternInvalid,
			fmt.Sprintf("未知的模式种类 %q", kind))
	}
}

// globToRegex 把 glob 翻译为锚定整串匹配的正则
// '*' → ".*"，'?' → "."，其余正则元字符逐一转义
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '.', '^', '$', '+', '{', '}', '[', ']', '|', '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return anchor(b.String())
}

// anchor 包裹为整串匹配（matches 语义，而非 find）
func anchor(expr string) string {
	return `\A(?:` + expr + `)\z`
}
