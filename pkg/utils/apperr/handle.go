package apperr

import (
	"context"
	"maps"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs err at error level together with the values attached to it by
// goerr.V. A nil err is ignored.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{"error", err}
	if goErr := goerr.Unwrap(err); goErr != nil {
		values := goErr.Values()
		for _, k := range slices.Sorted(maps.Keys(values)) {
			attrs = append(attrs, k, values[k])
		}
	}

	ctxlog.From(ctx).Error("application error", attrs...)
}
