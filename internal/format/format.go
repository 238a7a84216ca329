// Package format содержит форматирование чисел и дат для текстовой
// статистики и картинки. Обычные счётчики разделяются пробелами, дельты —
// апострофами: так исторически выводит сервис, и вывод должен совпадать.
package format

import (
	"strconv"
	"strings"
	"time"
)

// Dash прочерк для отсутствующих значений.
const Dash = "—"

// Num форматирует число с пробелами между тысячами ("12 345"); nil — прочерк.
func Num(n *int64) string {
	if n == nil {
		return Dash
	}
	if *n < 0 {
		return "-" + groupDigits(-*n, " ")
	}
	return groupDigits(*n, " ")
}

// Delta форматирует прирост: знак всегда явный, разряды отделяются
// апострофами ("+1'278", "-12'345"); nil — прочерк.
func Delta(n *int64) string {
	if n == nil {
		return Dash
	}
	sign := "+"
	v := *n
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + groupDigits(v, "'")
}

// Compact сокращённая запись: 1500 -> "1.5K", 2000000 -> "2M".
// Хвост ".0" убирается.
func Compact(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1000000:
		return trimZero(strconv.FormatFloat(float64(abs)/1000000, 'f', 1, 64)) + "M"
	case abs >= 1000:
		return trimZero(strconv.FormatFloat(float64(abs)/1000, 'f', 1, 64)) + "K"
	default:
		return strconv.FormatInt(abs, 10)
	}
}

// Float печатает число без лишних нулей ("4.5", "12").
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Date формат "дд.мм.гггг чч:мм".
func Date(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

func groupDigits(n int64, sep string) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
