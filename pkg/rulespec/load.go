package rulespec

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"urlclean/pkg/errx"
)

// Decode 解码规则配置文档
// 先用 gjson 宽松探测版本与形状，旧版 (1.0) 文档自动迁移为当前格式，
// 再做严格的 JSON 反序列化。迁移只发生在内存中，不回写来源。
func Decode(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, errx.New(errx.CodeConfigDecode, "配置不是合法的 JSON")
	}

	version := gjson.GetBytes(data, "version").String()
	switch version {
	case "", ConfigVersion:
		// 当前格式
	case LegacyConfigVersion:
		migrated, err := Migrate(data)
		if err != nil {
			return nil, err
		}
		data = migrated
	default:
		return nil, errx.New(errx.CodeConfigDecode,
			fmt.Sprintf("不支持的配置版本 %q", version))
	}

	if rules := gjson.GetBytes(data, "rules"); rules.Exists() && !rules.IsArray() {
		return nil, errx.New(errx.CodeConfigDecode, "rules 字段必须是数组")
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errx.Wrap(errx.CodeConfigDecode, err, "配置反序列化失败")
	}
	if cfg.Version == "" {
		cfg.Version = ConfigVersion
	}
	return &cfg, nil
}

// Migrate 将 1.0 版扁平规则文档升级为当前嵌套格式
//
// 1.0 的规则把 hosts/subdomains/schemes/remove/warn 平铺在规则对象上，
// 当前格式把匹配条件收拢到 when、动作收拢到 then:
//
//	{"hosts": ["a.com"], "remove": ["utm_*"]}
//	→ {"when": {"host": {"domains": ["a.com"]}}, "then": {"remove": ["utm_*"]}}
func Migrate(data []byte) ([]byte, error) {
	out := data
	var err error

	moves := []struct{ from, to string }{
		{"hosts", "when.host.domains"},
		{"subdomains", "when.host.subdomains"},
		{"schemes", "when.schemes"},
		{"remove", "then.remove"},
		{"warn", "then.warn"},
	}

	rules := gjson.GetBytes(data, "rules")
	for i := 0; i < int(rules.Get("#").Int()); i++ {
		for _, mv := range moves {
			src := fmt.Sprintf("rules.%d.%s", i, mv.from)
			val := gjson.GetBytes(out, src)
			if !val.Exists() {
				continue
			}
			dst := fmt.Sprintf("rules.%d.%s", i, mv.to)
			out, err = sjson.SetRawBytes(out, dst, []byte(val.Raw))
			if err != nil {
				return nil, errx.Wrap(errx.CodeConfigDecode, err, "配置迁移失败")
			}
			out, err = sjson.DeleteBytes(out, src)
			if err != nil {
				return nil, errx.Wrap(errx.CodeConfigDecode, err, "配置迁移失败")
			}
		}
	}

	out, err = sjson.SetBytes(out, "version", ConfigVersion)
	if err != nil {
		return nil, errx.Wrap(errx.CodeConfigDecode, err, "配置迁移失败")
	}
	return out, nil
}
