package strutil

import "errors"

// 参数校验相关的哨兵错误。均在扫描开始前返回，空字符串输入不会触发。
var (
	ErrInvalidCharactersType = errors.New("strutil: 'characters' 参数类型错误，必须为 string 或 []string")
	ErrInvalidEndsType       = errors.New("strutil: 'ends' 参数类型错误 (wrong type)，必须为 Left、Right、Both 之一")
	ErrInvalidEndsValue      = errors.New("strutil: 'ends' 参数取值错误 (wrong value)，必须为 Left、Right、Both 之一")
)
