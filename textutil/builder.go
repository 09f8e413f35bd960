package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AppendIf writes fmt.Sprint(get()) to b when cond is true. get is only
// called when needed.
func AppendIf(b *strings.Builder, cond bool, get func() any) *strings.Builder {
	if cond && get != nil {
		b.WriteString(fmt.Sprint(get()))
	}
	return b
}

// AppendLineIf writes get() followed by a newline to b when cond is true.
func AppendLineIf(b *strings.Builder, cond bool, get func() string) *strings.Builder {
	if cond {
		if get != nil {
			b.WriteString(get())
		}
		b.WriteByte('\n')
	}
	return b
}

// AppendFormatIf writes fmt.Sprintf(format, args...) to b when cond is true.
func AppendFormatIf(b *strings.Builder, cond bool, format string, args ...any) *strings.Builder {
	if cond {
		fmt.Fprintf(b, format, args...)
	}
	return b
}

// AppendFormatIfElse calls ifFn when cond is true and elseFn otherwise.
// Either function may be nil.
func AppendFormatIfElse(b *strings.Builder, cond bool, ifFn, elseFn func(*strings.Builder)) *strings.Builder {
	switch {
	case cond && ifFn != nil:
		ifFn(b)
	case !cond && elseFn != nil:
		elseFn(b)
	}
	return b
}

// InsertJoin joins the formatted items with sep and inserts the result into s
// at rune index at. Out-of-range indexes are clamped to the ends of s.
func InsertJoin[T any](s string, at int, items []T, format func(T) string, sep string) string {
	if len(items) == 0 {
		return s
	}
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	joined, _ := JoinFunc(items, format, sep)

	offset := byteOffset(s, at)
	return s[:offset] + joined + s[offset:]
}

// byteOffset converts a rune index into a byte offset within s.
func byteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	if runeIndex >= utf8.RuneCountInString(s) {
		return len(s)
	}
	n := 0
	for i := range s {
		if n == runeIndex {
			return i
		}
		n++
	}
	return len(s)
}
