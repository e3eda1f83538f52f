package ledger

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
	"github.com/tesserapay/ledger/errors"
)

// Context is just an alias for the standard implementation. We use functions
// to extend and access this data.
type Context = context.Context

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

type contextKey int // local to the ledger module

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
)

// WithHeight sets the block height for the Context. The height is the only
// notion of time the modules have; it must be a strictly non-decreasing
// value provided by the execution environment. Panics if the height was
// already set to avoid lower-level modules overwriting the value.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and whether it was set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// MustHeight returns the current block height or an error when the context
// is not properly initialized. A missing height is a broken setup, never a
// user mistake.
func MustHeight(ctx Context) (int64, error) {
	height, ok := GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block height not present in context")
	}
	return height, nil
}

// WithChainID sets the chain id for the Context.
func WithChainID(ctx Context, chainID string) Context {
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context, or an empty string.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithLogger sets the logger for the Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below... no problem.
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the Context, or the DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// IsExpired returns true if the given height is no later than the current
// block height as declared in the context. Expiration is inclusive: a value
// equal to the current height is considered expired.
func IsExpired(ctx Context, height int64) bool {
	now, err := MustHeight(ctx)
	if err != nil {
		panic(err)
	}
	return height <= now
}
