package rulespec

// Default 返回内置的初始规则集
// 覆盖常见广告平台的跟踪参数；既是开箱即用的缺省配置，
// 也是 rules init 子命令生成模板的来源
func Default() *Config {
	truev := true
	cfg := NewConfig("默认跟踪参数清理规则")
	cfg.Description = "移除常见的广告与社交平台跟踪参数"
	cfg.Rules = []Rule{
		{
			ID:      "builtin-common",
			Name:    "通用跟踪参数",
			Enabled: true,
			When: When{
				Host: HostCondition{Domains: AnyDomains()},
			},
			Then: Then{
				Remove: []PatternSpec{
					{Pattern: "utm_*"},
					{Pattern: "fbclid"},
					{Pattern: "gclid"},
					{Pattern: "dclid"},
					{Pattern: "msclkid"},
					{Pattern: "mc_eid"},
					{Pattern: "igshid"},
					{Pattern: "_hs*", Kind: KindGlob},
					{Pattern: "vero_.*", Kind: KindRegex},
				},
				Warn: &WarningSettings{
					WarnOnEmbeddedCredentials: &truev,
					SensitiveParams:           []string{"token", "apikey", "password"},
					Version:                   1,
				},
			},
		},
		{
			ID:      "builtin-amazon",
			Name:    "Amazon 商品链接",
			Enabled: true,
			When: When{
				Host: HostCondition{
					Domains:    DomainList("amazon.com", "amazon.de", "amazon.co.jp"),
					Subdomains: AnySubdomains(),
				},
				Schemes: []string{"http", "https"},
			},
			Then: Then{
				Remove: []PatternSpec{
					{Pattern: "ref", Kind: KindExact},
					{Pattern: "ref_*"},
					{Pattern: "pf_rd_*"},
					{Pattern: "pd_rd_*"},
					{Pattern: "tag", Kind: KindExact},
				},
			},
		},
		{
			ID:      "builtin-youtube",
			Name:    "YouTube 分享链接",
			Enabled: true,
			When: When{
				Host: HostCondition{
					Domains:    DomainList("youtube.com"),
					Subdomains: SubdomainsOf("www", "m", "music"),
				},
			},
			Then: Then{
				Remove: []PatternSpec{
					{Pattern: "si"},
					{Pattern: "feature"},
					{Pattern: "pp"},
				},
			},
		},
		{
			ID:      "builtin-twitter",
			Name:    "X/Twitter 裸域名",
			Enabled: true,
			When: When{
				Host: HostCondition{
					Domains:    DomainList("x.com", "twitter.com"),
					Subdomains: NoSubdomains(),
				},
			},
			Then: Then{
				Remove: []PatternSpec{
					{Pattern: "s", Kind: KindExact, Case: CaseSensitive},
					{Pattern: "t", Kind: KindExact, Case: CaseSensitive},
					{Pattern: "ref_*"},
				},
			},
		},
	}
	return cfg
}
