// Package batch converts many names to one naming style at once.
//
// It wraps the single-string converters of package casing with the pieces a
// bulk job needs: reading names from a slice or a line-oriented reader,
// optional de-duplication, bounded concurrency, collision reporting, and
// structured logging.
//
// # Quick Start
//
//	result, err := batch.ConvertWithOptions(ctx,
//		batch.WithInputs([]string{"user id", "UserID", "created-at"}),
//		batch.WithStyle(casing.SnakeLower),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, item := range result.Items {
//		fmt.Printf("%s -> %s\n", item.Input, item.Output)
//	}
//
// Output order always matches input order, regardless of concurrency.
//
// # Collisions
//
// Distinct inputs can convert to the same name ("user id" and "UserId" both
// become "user_id"). Result.Collisions maps each such output to the inputs
// that produced it, and a warning is logged for each one.
//
// # Logging
//
// Pass any [Logger] with [WithLogger]. [NewSlogAdapter] wraps a *slog.Logger;
// the default [NopLogger] discards everything.
package batch
