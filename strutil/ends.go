package strutil

import (
	"fmt"
	"strings"
)

// Ends 指定参与裁剪的端（左端、右端或两端）。
// Both 等于 Left | Right，可按位判断。
type Ends int

const (
	Left  Ends = 1            // 仅裁剪左端
	Right Ends = 2            // 仅裁剪右端
	Both  Ends = Left | Right // 裁剪两端（默认）
)

// Valid 判断 e 是否为 Left、Right 或 Both。
// 只接受这三个值本身，0 或其他组合一律无效。
func (e Ends) Valid() bool {
	return e == Left || e == Right || e == Both
}

func (e Ends) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Ends(%d)", int(e))
	}
}

// ParseEnds 解析端选择字符串，不区分大小写。
// 支持 "left" / "right" / "both"、单字母缩写 "l" / "r" / "b" 以及对应的数字 "1" / "2" / "3"。
func ParseEnds(s string) (Ends, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "1":
		return Left, nil
	case "right", "r", "2":
		return Right, nil
	case "both", "b", "3":
		return Both, nil
	}
	return 0, fmt.Errorf("%w，实际为 '%s'", ErrInvalidEndsValue, s)
}
