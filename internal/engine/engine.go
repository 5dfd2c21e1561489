// Package engine 实现规则引擎核心逻辑
//
// 生命周期只有两步: Load 编译规则集，Evaluate/ApplyRemovals 只读评估。
// Load 整体替换已编译状态，没有增量更新；替换经 RWMutex 保护，
// Load 返回后的规则集不可变，可被多协程并发只读评估。
package engine

import (
	"fmt"
	"strings"
	"sync"

	"urlclean/internal/pattern"
	"urlclean/internal/query"
	"urlclean/internal/urlx"
	"urlclean/pkg/domain"
	"urlclean/pkg/errx"
	"urlclean/pkg/rulespec"
)

// Canonicalizer 主机名规范化依赖，由构造方显式注入
type Canonicalizer interface {
	ToASCII(host string) (string, bool)
}

// Logger 引擎使用的日志接口
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
}

// Engine 规则引擎
type Engine struct {
	canon    Canonicalizer
	patterns *pattern.Engine
	log      Logger

	mu       sync.RWMutex
	compiled *ruleset
}

// ruleset 编译后的规则集，Load 构建完成后不再修改
type ruleset struct {
	rules []*compiledRule
}

// compiledRule 单条规则的编译结果
type compiledRule struct {
	rule  rulespec.Rule
	index int // 声明位置，来源追溯的唯一键

	// 主机谓词的编译态: Any 变体时 anyDomain 为 true，
	// 否则 domains 存放编译期规范化后的域名
	anyDomain  bool
	domains    []string
	subdomains rulespec.Subdomains

	schemes map[string]struct{} // nil 表示不限协议

	removePreds    []pattern.Predicate
	removePatterns []string
}

// New 创建规则引擎
func New(canon Canonicalizer, log Logger) *Engine {
	return &Engine{
		canon:    canon,
		patterns: pattern.New(),
		log:      log,
	}
}

// Load 编译规则列表并整体替换当前规则集
// 禁用的规则被跳过；模式编译失败时返回带规则位置的类型化错误，
// 引擎不会静默丢弃非法规则
func (e *Engine) Load(rules []rulespec.Rule) error {
	rs := &ruleset{rules: make([]*compiledRule, 0, len(rules))}

	for i := range rules {
		r := &rules[i]
		if !r.Enabled {
			continue
		}
		cr, err := e.compileRule(r, i)
		if err != nil {
			return errx.Wrap(errx.CodeRuleCompile, err,
				fmt.Sprintf("规则 #%d (%s) 编译失败", i, r.Name))
		}
		rs.rules = append(rs.rules, cr)
	}

	e.mu.Lock()
	e.compiled = rs
	e.mu.Unlock()

	if e.log != nil {
		e.log.Info("规则集已加载", "total", len(rules), "compiled", len(rs.rules))
	}
	return nil
}

// compileRule 编译单条规则
func (e *Engine) compileRule(r *rulespec.Rule, index int) (*compiledRule, error) {
	cr := &compiledRule{
		rule:       *r,
		index:      index,
		subdomains: r.When.Host.Subdomains,
	}

	switch d := r.When.Host.Domains; d.Kind() {
	case rulespec.DomainsAny:
		cr.anyDomain = true
	case rulespec.DomainsList:
		for _, value := range d.List() {
			canon, ok := e.canon.ToASCII(value)
			if !ok {
				// 规范化失败的配置域名永远不可能命中，保留告警即可
				if e.log != nil {
					e.log.Debug("配置域名规范化失败", "domain", value, "rule", r.ID)
				}
				continue
			}
			cr.domains = append(cr.domains, canon)
		}
	default:
		return nil, errx.New(errx.CodeRuleCompile, "未知的 Domains 变体")
	}

	if len(r.When.Schemes) > 0 {
		cr.schemes = make(map[string]struct{}, len(r.When.Schemes))
		for _, s := range r.When.Schemes {
			cr.schemes[strings.ToLower(s)] = struct{}{}
		}
	}

	for _, spec := range r.Then.Remove {
		pred, err := e.patterns.Compile(spec)
		if err != nil {
			return nil, err
		}
		cr.removePreds = append(cr.removePreds, pred)
		cr.removePatterns = append(cr.removePatterns, spec.Pattern)
	}
	return cr, nil
}

// matchesHost 评估主机谓词
// 候选主机规范化失败时除 Any 变体外一律不命中（fail-closed）
func (cr *compiledRule) matchesHost(canonHost string, ok bool) bool {
	if cr.anyDomain {
		return true
	}
	if !ok {
		return false
	}
	for _, d := range cr.domains {
		switch cr.subdomains.Kind() {
		case rulespec.SubdomainsNone:
			if canonHost == d {
				return true
			}
		case rulespec.SubdomainsAny:
			if canonHost == d || strings.HasSuffix(canonHost, "."+d) {
				return true
			}
		case rulespec.SubdomainsOneOf:
			for _, label := range cr.subdomains.Labels() {
				if canonHost == strings.ToLower(label)+"."+d {
					return true
				}
			}
		}
	}
	return false
}

// matchesScheme 评估协议谓词，未配置协议时恒真
func (cr *compiledRule) matchesScheme(scheme *string) bool {
	if cr.schemes == nil {
		return true
	}
	if scheme == nil {
		return false
	}
	_, ok := cr.schemes[strings.ToLower(*scheme)]
	return ok
}

// snapshot 取当前规则集
func (e *Engine) snapshot() *ruleset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.compiled
}

// findMatches 按声明顺序收集主机与协议谓词均成立的规则
func (e *Engine) findMatches(rs *ruleset, parts urlx.Parts) []*compiledRule {
	var canonHost string
	var ok bool
	if parts.Host != nil {
		canonHost, ok = e.canon.ToASCII(*parts.Host)
	}

	var matched []*compiledRule
	for _, cr := range rs.rules {
		if cr.matchesHost(canonHost, ok) && cr.matchesScheme(parts.Scheme) {
			matched = append(matched, cr)
		}
	}
	return matched
}

// Evaluate 评估 URL 并生成逐参数处置记录与有效警告设置
// 对良构输入永不失败，未命中任何规则时返回空结果
func (e *Engine) Evaluate(parts urlx.Parts) domain.Evaluation {
	rs := e.snapshot()
	if rs == nil {
		return domain.Evaluation{}
	}

	matched := e.findMatches(rs, parts)
	ev := domain.Evaluation{
		Matches:      make([]domain.MatchedRule, 0, len(matched)),
		TokenEffects: computeTokenEffects(matched, parts.Query),
		Warnings:     computeWarnings(matched),
	}
	for _, cr := range matched {
		rule := cr.rule
		ev.Matches = append(ev.Matches, domain.MatchedRule{
			Index:          cr.index,
			Rule:           &rule,
			RemovePatterns: append([]string(nil), cr.removePatterns...),
		})
	}

	if e.log != nil {
		e.log.Debug("评估完成",
			"matched", len(matched), "tokens", parts.Query.Len())
	}
	return ev
}

// computeTokenEffects 对每个查询 Token 计算处置记录，顺序与 URL 中一致
func computeTokenEffects(matched []*compiledRule, q query.Pairs) []domain.TokenEffect {
	tokens := q.Tokens()
	effects := make([]domain.TokenEffect, 0, len(tokens))

	for ti, tok := range tokens {
		eff := domain.TokenEffect{
			TokenIndex:            ti,
			Name:                  tok.Key(),
			MatchedPatternsByRule: make(map[int][]string),
		}
		for _, cr := range matched {
			hit := false
			for pi, pred := range cr.removePreds {
				if pred(tok.Key()) {
					hit = true
					eff.MatchedPatternsByRule[cr.index] =
						append(eff.MatchedPatternsByRule[cr.index], cr.removePatterns[pi])
				}
			}
			if hit {
				eff.WillBeRemoved = true
				eff.MatchedRuleIndexes = append(eff.MatchedRuleIndexes, cr.index)
			}
		}
		effects = append(effects, eff)
	}
	return effects
}

// ApplyRemovals 重新计算匹配并移除命中任一移除谓词的查询参数
// 未命中任何规则时原样返回；其余组件保持不变
func (e *Engine) ApplyRemovals(parts urlx.Parts) urlx.Parts {
	rs := e.snapshot()
	if rs == nil {
		return parts
	}

	matched := e.findMatches(rs, parts)
	if len(matched) == 0 {
		return parts
	}

	var preds []query.KeyPredicate
	for _, cr := range matched {
		for _, p := range cr.removePreds {
			preds = append(preds, query.KeyPredicate(p))
		}
	}

	out := parts.Clone()
	out.Query = out.Query.RemoveAnyOf(preds)
	return out
}
