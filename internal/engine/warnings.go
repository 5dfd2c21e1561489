package engine

import "urlclean/pkg/rulespec"

// computeWarnings 对命中规则的 warn 块做两阶段折叠
//
// 阶段 A: 先对全部 catch-all 规则 (domains = Any) 求并集，
// 凭据告警任一为 true 即为 true，敏感参数按首次出现顺序去重合并。
// 阶段 B: 再按声明顺序叠加特定域名规则，逐字段覆盖运行结果:
// 凭据告警仅在覆盖方非空时替换；敏感参数按该规则的合并方式
// 整体替换或求并；版本号取历史最大值。
// 未命中任何规则时返回零值设置。
func computeWarnings(matched []*compiledRule) rulespec.WarningSettings {
	var result rulespec.WarningSettings

	// 阶段 A: catch-all 并集
	for _, cr := range matched {
		if !cr.anyDomain || cr.rule.Then.Warn == nil {
			continue
		}
		w := cr.rule.Then.Warn
		if w.WarnOnEmbeddedCredentials != nil {
			if result.WarnOnEmbeddedCredentials == nil || *w.WarnOnEmbeddedCredentials {
				result.WarnOnEmbeddedCredentials = w.WarnOnEmbeddedCredentials
			}
		}
		result.SensitiveParams = unionParams(result.SensitiveParams, w.SensitiveParams)
		if w.Version > result.Version {
			result.Version = w.Version
		}
	}

	// 阶段 B: 特定域名规则逐条覆盖
	for _, cr := range matched {
		if cr.anyDomain || cr.rule.Then.Warn == nil {
			continue
		}
		w := cr.rule.Then.Warn
		if w.WarnOnEmbeddedCredentials != nil {
			result.WarnOnEmbeddedCredentials = w.WarnOnEmbeddedCredentials
		}
		if w.SensitiveParams != nil {
			switch w.EffectiveMerge() {
			case rulespec.MergeUnion:
				result.SensitiveParams = unionParams(result.SensitiveParams, w.SensitiveParams)
			default:
				result.SensitiveParams = append([]string(nil), w.SensitiveParams...)
			}
		}
		if w.Version > result.Version {
			result.Version = w.Version
		}
	}

	return result
}

// unionParams 求并集，保持首次出现顺序并去重
func unionParams(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base))
	out := append([]string(nil), base...)
	for _, p := range base {
		seen[p] = struct{}{}
	}
	for _, p := range extra {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
