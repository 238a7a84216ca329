package profile

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseGrowth разбирает значение прироста из API ("+1'278" -> 1278,
// "-500" -> -500). Числа возвращаются как есть, nil остаётся nil.
// Нечитаемая непустая строка даёт 0 — API иногда присылает мусор,
// и ошибка здесь не должна ронять весь профиль.
func ParseGrowth(v any) *int64 {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		n := int64(val)
		return &n
	case int:
		n := int64(val)
		return &n
	case int64:
		return &val
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if r == '\'' || unicode.IsSpace(r) {
				return -1
			}
			return r
		}, val)
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			n = 0
		}
		return &n
	default:
		return nil
	}
}
