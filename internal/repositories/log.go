package repositories

import (
	"context"
	"strings"

	"github.com/sbilibin2017/date-tracker/internal/logger"
)

// logQuery logs a statement on a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow(
		"query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
