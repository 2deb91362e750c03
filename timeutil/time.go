package timeutil

import (
	"fmt"
	"time"

	"github.com/pylemonorg/strtrim/logger"
)

// FormatDuration 将 time.Duration 格式化为人类可读的字符串。
// < 1ms → "850µs"，< 1s → "320ms"，< 1min → "2.50秒"，>= 1min → "3分12秒"。
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2f秒", d.Seconds())
	default:
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%d分%d秒", m, s)
	}
}

// TrackTime 返回一个 deferred 函数，以 debug 级别记录代码块的执行耗时。
//
// 用法：
//
//	func run() {
//	    defer timeutil.TrackTime("trim")()
//	    // ... 业务逻辑
//	}
func TrackTime(name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		logger.Debug().
			Str("task", name).
			Dur("elapsed", elapsed).
			Msgf("%s 总耗时: %s", name, FormatDuration(elapsed))
	}
}
