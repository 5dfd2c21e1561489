package domain

import "urlclean/pkg/rulespec"

// MatchedRule 匹配成功的规则及其声明位置
type MatchedRule struct {
	Index          int            `json:"index"`          // 规则在配置中的声明位置
	Rule           *rulespec.Rule `json:"rule"`           // 规则引用
	RemovePatterns []string       `json:"removePatterns"` // 该规则的原始模式串，用于来源追溯
}

// TokenEffect 单个查询参数的处置记录
// 每个评估对 URL 中的每个查询 Token 产生一条，顺序与 URL 中一致
type TokenEffect struct {
	TokenIndex            int              `json:"tokenIndex"`            // Token 在查询串中的位置
	Name                  string           `json:"name"`                  // 解码后的参数名
	WillBeRemoved         bool             `json:"willBeRemoved"`         // 是否将被移除
	MatchedRuleIndexes    []int            `json:"matchedRuleIndexes"`    // 命中规则的声明位置，按命中顺序
	MatchedPatternsByRule map[int][]string `json:"matchedPatternsByRule"` // 按规则位置分组的命中模式串
}

// Evaluation 一次评估的完整结果
type Evaluation struct {
	Matches      []MatchedRule            `json:"matches"`      // 命中的规则，按声明顺序
	TokenEffects []TokenEffect            `json:"tokenEffects"` // 逐参数处置记录
	Warnings     rulespec.WarningSettings `json:"warnings"`     // 合并后的有效警告设置
}
