package query_test

import (
	"reflect"
	"testing"

	"urlclean/internal/query"
)

// TestParse_RoundTrip 验证无损往返不变式: Parse(q).String() == q
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"&",
		"&&",
		"a=1&&b=2",
		"=v",
		"flag",
		"flag=",
		"a=1&a=2&a=1",
		"k=a=b=c",
		"%E6%97%A5=%20&x",
		"a=1&=&&flag",
	}

	for _, q := range inputs {
		t.Run(q, func(t *testing.T) {
			if got := query.Parse(q, false).String(); got != q {
				t.Errorf("往返失败: Parse(%q).String() = %q", q, got)
			}
		})
	}
}

// TestParse_Tokens 验证分词细节：空片段保留、首个 '=' 切分、'=' 出现标记
func TestParse_Tokens(t *testing.T) {
	p := query.Parse("a=1&&=v&flag&k=x=y", false)
	tokens := p.Tokens()
	if len(tokens) != 5 {
		t.Fatalf("期望 5 个 Token，实际 %d", len(tokens))
	}

	tests := []struct {
		idx       int
		key, val  string
		hasEquals bool
	}{
		{0, "a", "1", true},
		{1, "", "", false}, // 空片段
		{2, "", "v", true}, // 空键
		{3, "flag", "", false},
		{4, "k", "x=y", true}, // 值中允许 '='
	}
	for _, tt := range tests {
		tok := tokens[tt.idx]
		if tok.Key() != tt.key || tok.Value() != tt.val || tok.HasEquals() != tt.hasEquals {
			t.Errorf("Token[%d] = (%q, %q, %v)，期望 (%q, %q, %v)",
				tt.idx, tok.Key(), tok.Value(), tok.HasEquals(), tt.key, tt.val, tt.hasEquals)
		}
	}
}

// TestParse_Semicolon 验证分号分隔符模式
func TestParse_Semicolon(t *testing.T) {
	p := query.Parse("a=1;b=2&c=3", true)
	if p.Len() != 3 {
		t.Fatalf("分号模式下期望 3 个 Token，实际 %d", p.Len())
	}
	// 分号模式渲染统一用 '&' 连接
	if got := p.String(); got != "a=1&b=2&c=3" {
		t.Errorf("渲染结果 = %q，期望 %q", got, "a=1&b=2&c=3")
	}

	// 缺省模式下分号是普通字符
	p2 := query.Parse("a=1;b=2", false)
	if p2.Len() != 1 {
		t.Errorf("缺省模式下分号不应切分，实际 %d 个 Token", p2.Len())
	}
}

// TestGetAllGetFirst 验证按解码键名的查询（区分大小写）
func TestGetAllGetFirst(t *testing.T) {
	p := query.Parse("a=1&A=2&a=3&%61=4", false)

	if got := p.GetAll("a"); !reflect.DeepEqual(got, []string{"1", "3", "4"}) {
		t.Errorf("GetAll(\"a\") = %v，期望 [1 3 4]（%%61 解码后也是 a）", got)
	}
	if v, ok := p.GetFirst("A"); !ok || v != "2" {
		t.Errorf("GetFirst(\"A\") = (%q, %v)，期望 (\"2\", true)", v, ok)
	}
	if _, ok := p.GetFirst("b"); ok {
		t.Error("不存在的键不应命中")
	}
}

// TestAddVariants 验证三种追加方式
func TestAddVariants(t *testing.T) {
	var p query.Pairs
	p.AddRaw("k%20", true, "v%20")
	p.AddDecoded("键", "值 带空格")
	p.Add(query.NewTokenRaw("flag", false, ""))

	if p.Len() != 3 {
		t.Fatalf("期望 3 个 Token，实际 %d", p.Len())
	}
	if v, _ := p.GetFirst("k "); v != "v " {
		t.Errorf("AddRaw 后解码视图错误: %q", v)
	}
	if v, _ := p.GetFirst("键"); v != "值 带空格" {
		t.Errorf("AddDecoded 后解码视图错误: %q", v)
	}
	if got := p.Tokens()[2].String(); got != "flag" {
		t.Errorf("无 '=' 的 Token 渲染 = %q，期望 flag", got)
	}
}

// TestRemoveFamily 验证 Remove/RemoveWhere/RemoveAnyOf/FilterKeys
func TestRemoveFamily(t *testing.T) {
	src := "utm_source=g&id=5&utm_medium=cpc&flag"
	p := query.Parse(src, false)

	removed := p.Remove("id")
	if got := removed.String(); got != "utm_source=g&utm_medium=cpc&flag" {
		t.Errorf("Remove 结果 = %q", got)
	}

	where := p.RemoveWhere(func(k string) bool { return len(k) > 4 })
	if got := where.String(); got != "id=5&flag" {
		t.Errorf("RemoveWhere 结果 = %q", got)
	}

	anyOf := p.RemoveAnyOf([]query.KeyPredicate{
		func(k string) bool { return k == "flag" },
		func(k string) bool { return k == "id" },
	})
	if got := anyOf.String(); got != "utm_source=g&utm_medium=cpc" {
		t.Errorf("RemoveAnyOf 结果 = %q", got)
	}

	kept := p.FilterKeys(func(k string) bool { return k == "id" })
	if got := kept.String(); got != "id=5" {
		t.Errorf("FilterKeys 结果 = %q", got)
	}

	// 原序列不受影响
	if got := p.String(); got != src {
		t.Errorf("过滤操作修改了原序列: %q", got)
	}
}

// TestReplaceFirst 验证替换首个匹配并删除后续重复项
func TestReplaceFirst(t *testing.T) {
	p := query.Parse("a=1&b=2&a=3&a=4", false)

	out := p.ReplaceFirst("a", "新")
	if got := out.String(); got != "a=%E6%96%B0&b=2" {
		t.Errorf("ReplaceFirst 结果 = %q", got)
	}

	raw := p.ReplaceFirstRaw("a", query.NewTokenRaw("a", true, "raw%20v"))
	if got := raw.String(); got != "a=raw%20v&b=2" {
		t.Errorf("ReplaceFirstRaw 结果 = %q", got)
	}

	// 无匹配时原样返回
	none := p.ReplaceFirst("zzz", "x")
	if got := none.String(); got != p.String() {
		t.Errorf("无匹配的 ReplaceFirst 改变了序列: %q", got)
	}
}

// TestToQueryMap 验证按解码键分组
func TestToQueryMap(t *testing.T) {
	p := query.Parse("a=1&b=2&a=3", false)
	m := p.ToQueryMap()

	if !reflect.DeepEqual(m["a"], []string{"1", "3"}) {
		t.Errorf("m[\"a\"] = %v，期望 [1 3]", m["a"])
	}
	if !reflect.DeepEqual(m["b"], []string{"2"}) {
		t.Errorf("m[\"b\"] = %v，期望 [2]", m["b"])
	}
	// 分组不破坏底层有序表示
	if got := p.String(); got != "a=1&b=2&a=3" {
		t.Errorf("ToQueryMap 修改了原序列: %q", got)
	}
}
