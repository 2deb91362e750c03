package ptr

// To 返回 v 的指针，适用于任意类型。
// 常用于区分"未设置"（nil）与"设置为零值"，例如空字符集 ptr.To("")。
//
// 用法：
//
//	ptr.To(strutil.Right) // *strutil.Ends
//	ptr.To("#*")          // *string
func To[T any](v T) *T {
	return &v
}

// Deref 安全地解引用指针，p 为 nil 时返回 T 的零值。
func Deref[T any](p *T) T {
	var zero T
	return Or(p, zero)
}

// Or 解引用指针，p 为 nil 时返回 fallback。
//
// 用法：
//
//	ptr.Or(cfg.Ends, "both")
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
