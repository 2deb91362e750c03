package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultCharacters 未指定字符集时使用的默认裁剪字符：空格、\t、\n、\r、\0、\v。
const DefaultCharacters = " \t\n\r\x00\x0b"

// runeSet 字符集合，成员判断为 O(1)。
type runeSet map[rune]struct{}

// newRuneSet 将 chars 中的每个 rune 加入集合。
func newRuneSet(chars string) runeSet {
	set := make(runeSet, utf8.RuneCountInString(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func (set runeSet) has(r rune) bool {
	_, ok := set[r]
	return ok
}

// Trimmer 持有预先构建好的字符集合，可重复用于多个字符串，并发安全（只读）。
//
// 用法：
//
//	t := strutil.NewTrimmer("#", "*")
//	t.Trim("#*title*#")    // "title"
//	t.TrimLeft("##title#") // "title#"
type Trimmer struct {
	set runeSet
}

var defaultTrimmer = &Trimmer{set: newRuneSet(DefaultCharacters)}

// NewTrimmer 根据 chars 构建 Trimmer。
// 不传参数时使用 DefaultCharacters；传入多个字符串时先拼接，再把每个字符作为裁剪候选。
func NewTrimmer(chars ...string) *Trimmer {
	if chars == nil {
		return defaultTrimmer
	}
	return &Trimmer{set: newRuneSet(strings.Join(chars, ""))}
}

// Contains 判断 r 是否属于裁剪字符集。
func (t *Trimmer) Contains(r rune) bool { return t.set.has(r) }

// Len 返回字符集中不同字符的个数。
func (t *Trimmer) Len() int { return len(t.set) }

// Trim 裁剪两端。
func (t *Trimmer) Trim(s string) string { return t.scan(s, Both) }

// TrimLeft 仅裁剪左端。
func (t *Trimmer) TrimLeft(s string) string { return t.scan(s, Left) }

// TrimRight 仅裁剪右端。
func (t *Trimmer) TrimRight(s string) string { return t.scan(s, Right) }

// TrimEnds 按 ends 指定的端裁剪。s 为空时直接返回，不校验 ends。
func (t *Trimmer) TrimEnds(s string, ends Ends) (string, error) {
	if s == "" {
		return s, nil
	}
	if !ends.Valid() {
		return "", fmt.Errorf("%w，实际为 '%d'", ErrInvalidEndsValue, int(ends))
	}
	return t.scan(s, ends), nil
}

// scan 双游标从两端向内收缩，直到某一轮两端都没有可裁剪的字符。
// 返回值是 s 的子串，不产生拷贝。
func (t *Trimmer) scan(s string, ends Ends) string {
	b, e := 0, len(s)
	for progress := true; progress && b < e; {
		progress = false
		if ends&Left != 0 {
			r, size := utf8.DecodeRuneInString(s[b:e])
			if t.set.has(r) {
				b += size
				progress = true
			}
		}
		// b == e 时 DecodeLastRuneInString 返回宽度 0，必须跳过
		if ends&Right != 0 && b < e {
			r, size := utf8.DecodeLastRuneInString(s[b:e])
			if t.set.has(r) {
				e -= size
				progress = true
			}
		}
	}
	return s[b:e]
}

// Trim 去除 s 两端属于字符集的字符。
// 不传 chars 时使用 DefaultCharacters；传入多个字符串时按拼接后的逐字符处理，
// 即 Trim(s, "eh", "o") 与 Trim(s, "eho") 等价。
//
// 用法：
//
//	strutil.Trim(" hello world ")  // "hello world"
//	strutil.Trim("hi!", "!")       // "hi"
//	strutil.Trim("foo bar", " of") // "bar"
func Trim(s string, chars ...string) string {
	if s == "" {
		return s
	}
	return lookupTrimmer(chars).scan(s, Both)
}

// LTrim 仅去除左端字符，等价于 TrimEnds(s, Left, chars...)。
func LTrim(s string, chars ...string) string {
	if s == "" {
		return s
	}
	return lookupTrimmer(chars).scan(s, Left)
}

// RTrim 仅去除右端字符，等价于 TrimEnds(s, Right, chars...)。
func RTrim(s string, chars ...string) string {
	if s == "" {
		return s
	}
	return lookupTrimmer(chars).scan(s, Right)
}

// TrimEnds 按 ends 指定的端去除字符。ends 不是 Left、Right、Both 之一时返回 ErrInvalidEndsValue。
// 注意：s 为空串时直接返回 ("", nil)，不会校验 ends。
func TrimEnds(s string, ends Ends, chars ...string) (string, error) {
	if s == "" {
		return s, nil
	}
	if !ends.Valid() {
		return "", fmt.Errorf("%w，实际为 '%d'", ErrInvalidEndsValue, int(ends))
	}
	return lookupTrimmer(chars).scan(s, ends), nil
}
