// Package regexutil 提供带并发安全缓存的正则表达式编译工具
package regexutil

import (
	"regexp"
	"sync"
)

// Cache 正则表达式编译器缓存
// 内部使用 sync.Map 优化读多写少的并发场景
// 同一 pattern 的大小写敏感与不敏感版本分开缓存
type Cache struct {
	cache sync.Map
}

// New 创建一个新的正则缓存实例
func New() *Cache {
	return &Cache{}
}

// Get 获取编译后的正则表达式对象
// foldCase 为 true 时以不区分大小写方式编译 (加 (?i) 前缀)
// 如果缓存中已存在则直接返回，否则进行编译并存入缓存
func (c *Cache) Get(p string, foldCase bool) (*regexp.Regexp, error) {
	key := p
	if foldCase {
		key = "(?i)" + p
	}

	// 1. 尝试从缓存中读取
	if val, ok := c.cache.Load(key); ok {
		return val.(*regexp.Regexp), nil
	}

	// 2. 编译正则
	compiled, err := regexp.Compile(key)
	if err != nil {
		return nil, err
	}

	// 3. 存入缓存
	c.cache.Store(key, compiled)
	return compiled, nil
}
