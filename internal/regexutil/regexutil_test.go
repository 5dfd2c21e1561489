package regexutil_test

import (
	"sync"
	"testing"

	"urlclean/internal/regexutil"
)

// TestCache_Hit 验证缓存命中逻辑：相同的 pattern 应该返回同一个对象指针
func TestCache_Hit(t *testing.T) {
	c := regexutil.New()
	pattern := `^utm_.*`

	// 第一次获取
	re1, err := c.Get(pattern, false)
	if err != nil {
		t.Fatalf("第一次获取失败: %v", err)
	}

	// 第二次获取
	re2, err := c.Get(pattern, false)
	if err != nil {
		t.Fatalf("第二次获取失败: %v", err)
	}

	// 验证指针地址是否一致
	if re1 != re2 {
		t.Errorf("缓存失效：两次获取相同 pattern 返回了不同的对象指针")
	}
}

// TestCache_FoldCase 验证大小写敏感与不敏感版本分开缓存
func TestCache_FoldCase(t *testing.T) {
	c := regexutil.New()
	pattern := `utm_.*`

	sensitive, err := c.Get(pattern, false)
	if err != nil {
		t.Fatalf("敏感版本编译失败: %v", err)
	}
	folded, err := c.Get(pattern, true)
	if err != nil {
		t.Fatalf("不敏感版本编译失败: %v", err)
	}

	if sensitive == folded {
		t.Error("敏感与不敏感版本不应共享缓存条目")
	}
	if sensitive.MatchString("UTM_SOURCE") {
		t.Error("敏感版本不应匹配大写输入")
	}
	if !folded.MatchString("UTM_SOURCE") {
		t.Error("不敏感版本应匹配大写输入")
	}
}

// TestCache_InvalidRegex 验证非法正则表达式的处理
func TestCache_InvalidRegex(t *testing.T) {
	c := regexutil.New()
	invalidPattern := `[` // 非法正则

	_, err := c.Get(invalidPattern, false)
	if err == nil {
		t.Error("期望非法正则返回错误，但实际未返回")
	}
}

// TestCache_Concurrency 验证并发安全性
func TestCache_Concurrency(t *testing.T) {
	c := regexutil.New()
	pattern := `[a-z]+`

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// 启动 100 个协程同时获取同一个正则
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := c.Get(pattern, true)
			if err != nil {
				t.Errorf("并发获取失败: %v", err)
			}
		}()
	}

	wg.Wait()
}
