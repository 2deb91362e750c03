package strutil

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// TrimAny 是 Trim 的弱类型版本，参数在运行时校验。
//   - characters: nil（或 nil 指针、nil 接口）使用默认字符集；string 逐字符作为候选；
//     []string 或元素均为字符串的 []any 先拼接再逐字符作为候选；指针和接口逐层解开；
//     其他类型返回 ErrInvalidCharactersType。
//   - ends: nil（或 nil 指针）默认为 Both；数值必须恰好为 1、2 或 3，
//     非数值返回 ErrInvalidEndsType，其他数值返回 ErrInvalidEndsValue。
//
// s 为空串时直接返回 ("", nil)，不校验任何参数。
//
// 用法：
//
//	strutil.TrimAny("hi!", []string{"!"}, nil)      // "hi", nil
//	strutil.TrimAny(" hi ", nil, strutil.Right)     // " hi", nil
//	strutil.TrimAny("hello", map[string]int{}, nil) // "", ErrInvalidCharactersType
func TrimAny(s string, characters any, ends any) (string, error) {
	if s == "" {
		return s, nil
	}

	t, err := trimmerFromAny(characters)
	if err != nil {
		return "", err
	}
	e, err := endsFromAny(ends)
	if err != nil {
		return "", err
	}
	return t.scan(s, e), nil
}

// LTrimAny 等价于 TrimAny(s, characters, Left)。
func LTrimAny(s string, characters any) (string, error) {
	return TrimAny(s, characters, Left)
}

// RTrimAny 等价于 TrimAny(s, characters, Right)。
func RTrimAny(s string, characters any) (string, error) {
	return TrimAny(s, characters, Right)
}

// trimmerFromAny 校验并转换 characters 参数。
// 切片元素可以是 any（如 json.Unmarshal 得到的 []interface{}），但解开后必须都是字符串。
func trimmerFromAny(characters any) (*Trimmer, error) {
	v, ok := indirect(reflect.ValueOf(characters))
	if !ok {
		return defaultTrimmer, nil
	}

	switch v.Kind() {
	case reflect.String:
		return setCache.get(v.String()), nil
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		for i := 0; i < v.Len(); i++ {
			elem, ok := indirect(v.Index(i))
			if !ok || elem.Kind() != reflect.String {
				return nil, fmt.Errorf("%w，实际为 '%T'（第 %d 个元素）", ErrInvalidCharactersType, characters, i)
			}
			b.WriteString(elem.String())
		}
		return setCache.get(b.String()), nil
	}
	return nil, fmt.Errorf("%w，实际为 '%T'", ErrInvalidCharactersType, characters)
}

// indirect 逐层解开指针和接口。遇到 nil（包括无效值）时 ok 为 false。
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// endsFromAny 校验并转换 ends 参数。
func endsFromAny(ends any) (Ends, error) {
	v, ok := indirect(reflect.ValueOf(ends))
	if !ok {
		return Both, nil
	}

	var n int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > uint64(Both) {
			return 0, fmt.Errorf("%w，实际为 '%d'", ErrInvalidEndsValue, u)
		}
		n = int64(u)
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) || f < float64(Left) || f > float64(Both) {
			return 0, fmt.Errorf("%w，实际为 '%v'", ErrInvalidEndsValue, f)
		}
		n = int64(f)
	default:
		return 0, fmt.Errorf("%w，实际为 '%T'", ErrInvalidEndsType, ends)
	}

	if n < int64(Left) || n > int64(Both) {
		return 0, fmt.Errorf("%w，实际为 '%d'", ErrInvalidEndsValue, n)
	}
	return Ends(n), nil
}
