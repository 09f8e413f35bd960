package textutil

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/erraggy/casekit/caseerrors"
)

// Join formats each item with %v and joins the results with sep.
func Join[T any](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}

// JoinFunc formats each item with format and joins the results with sep.
func JoinFunc[T any](items []T, format func(T) string, sep string) (string, error) {
	if format == nil {
		return "", &caseerrors.ArgumentError{Name: "format", Message: "formatter must not be nil"}
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format(item)
	}
	return strings.Join(parts, sep), nil
}

// JoinSeq consumes seq, formatting and joining items as they arrive.
// It stops early with ctx.Err() once ctx is done.
func JoinSeq[T any](ctx context.Context, seq iter.Seq[T], format func(T) string, sep string) (string, error) {
	if seq == nil {
		return "", &caseerrors.ArgumentError{Name: "seq", Message: "sequence must not be nil"}
	}
	if format == nil {
		return "", &caseerrors.ArgumentError{Name: "format", Message: "formatter must not be nil"}
	}

	var b strings.Builder
	first := true
	for item := range seq {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(format(item))
	}
	return b.String(), nil
}
