package hashutil

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum64 返回字符串的 xxhash 64 位摘要。
func Sum64(value string) uint64 {
	return xxhash.Sum64String(value)
}

// Bucket 使用 xxhash 将 value 映射到 [0, buckets) 区间，用于一致性分片。
// buckets 为 0 时返回 0。
func Bucket(value string, buckets uint64) uint64 {
	if buckets == 0 {
		return 0
	}
	return xxhash.Sum64String(value) % buckets
}

// BucketKey 使用 xxhash 生成一致性分桶 key。
// 格式："{prefix}_{xxhash(value) % buckets}"。
func BucketKey(prefix, value string, buckets uint64) string {
	return fmt.Sprintf("%s_%d", prefix, Bucket(value, buckets))
}
