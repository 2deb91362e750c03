package strutil

import (
	"strings"
	"sync"

	"github.com/pylemonorg/strtrim/hashutil"
)

const (
	cacheShards     = 16
	maxShardEntries = 64
	maxCachedSetLen = 256 // 过长的字符集不缓存，避免长期持有大字符串
)

// trimmerCache 已编译字符集的分片缓存，分片由 xxhash 决定。
// 缓存只影响性能，不影响结果。
type trimmerCache struct {
	shards [cacheShards]cacheShard
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[string]*Trimmer
}

var setCache trimmerCache

// get 返回 chars 对应的 Trimmer，不存在时构建并写入缓存。
// 分片满时整体清空该分片。
func (c *trimmerCache) get(chars string) *Trimmer {
	if len(chars) > maxCachedSetLen {
		return &Trimmer{set: newRuneSet(chars)}
	}

	shard := &c.shards[hashutil.Bucket(chars, cacheShards)]

	shard.mu.RLock()
	t, ok := shard.entries[chars]
	shard.mu.RUnlock()
	if ok {
		return t
	}

	t = &Trimmer{set: newRuneSet(chars)}

	shard.mu.Lock()
	if shard.entries == nil || len(shard.entries) >= maxShardEntries {
		shard.entries = make(map[string]*Trimmer, maxShardEntries)
	}
	shard.entries[chars] = t
	shard.mu.Unlock()

	return t
}

// len 返回所有分片中缓存的条目总数。
func (c *trimmerCache) len() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].entries)
		c.shards[i].mu.RUnlock()
	}
	return n
}

// lookupTrimmer 将可变参数形式的字符集解析为 Trimmer。
// chars 为 nil 表示未指定，使用默认字符集；非 nil 的空切片表示空字符集。
func lookupTrimmer(chars []string) *Trimmer {
	if chars == nil {
		return defaultTrimmer
	}
	if len(chars) == 1 {
		return setCache.get(chars[0])
	}
	return setCache.get(strings.Join(chars, ""))
}
