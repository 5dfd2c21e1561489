package hostcanon_test

import (
	"testing"

	"urlclean/internal/hostcanon"
)

// TestToASCII 验证主机名规范化的核心行为
func TestToASCII(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"小写化与去尾点", "EXAMPLE.COM.", "example.com", true},
		{"多个尾点全部去除", "example.com...", "example.com", true},
		{"IDN 转 punycode", "bücher.com", "xn--bcher-kva.com", true},
		{"大写 IDN", "BÜCHER.com", "xn--bcher-kva.com", true},
		{"已是 punycode 原样通过", "xn--bcher-kva.com", "xn--bcher-kva.com", true},
		{"全角句号视为点", "example．com", "example.com", true},
		{"表意句号视为点", "example。com", "example.com", true},
		{"半角表意句号视为点", "example｡com", "example.com", true},
		{"IPv4 原样通过", "192.168.1.1", "192.168.1.1", true},
		{"IPv6 原样通过", "[2001:DB8::1]", "[2001:db8::1]", true},
		{"localhost", "LocalHost", "localhost", true},
		{"空串拒绝", "", "", false},
		{"仅有点拒绝", "...", "", false},
		{"前导点拒绝", ".example.com", "", false},
		{"连续点拒绝", "a..b.com", "", false},
		{"含空白拒绝", "exa mple.com", "", false},
		{"含 @ 拒绝", "user@example.com", "", false},
		{"含 # 拒绝", "exam#ple.com", "", false},
	}

	c := hostcanon.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ToASCII(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ToASCII(%q) ok = %v，期望 %v (结果 %q)", tt.in, ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("ToASCII(%q) = %q，期望 %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestToASCII_LabelLength 验证超过 63 字节的标签被拒绝
func TestToASCII_LabelLength(t *testing.T) {
	long := ""
	for i := 0; i < 64; i++ {
		long += "a"
	}
	if _, ok := hostcanon.New().ToASCII(long + ".com"); ok {
		t.Error("64 字节标签应被拒绝")
	}
	if _, ok := hostcanon.New().ToASCII(long[:63] + ".com"); !ok {
		t.Error("63 字节标签应被接受")
	}
}

// TestToASCII_Idempotent 验证对自身输出幂等
func TestToASCII_Idempotent(t *testing.T) {
	c := hostcanon.New()
	inputs := []string{"EXAMPLE.COM.", "bücher.com", "sub.Example．com", "192.168.1.1"}

	for _, in := range inputs {
		first, ok := c.ToASCII(in)
		if !ok {
			t.Fatalf("ToASCII(%q) 意外失败", in)
		}
		second, ok := c.ToASCII(first)
		if !ok || second != first {
			t.Errorf("幂等性被破坏: %q → %q → %q", in, first, second)
		}
	}
}
