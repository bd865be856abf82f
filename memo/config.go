package memo

import (
	"github.com/on-the-ground/memoize_go/store"
	"go.uber.org/zap"
)

type Config struct {
	NumShards int         // default: store.DefaultNumShards
	Logger    *zap.Logger // default: no-op logger
}

func NewConfig(numShards int, logger *zap.Logger) Config {
	if numShards <= 0 {
		numShards = store.DefaultNumShards
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		NumShards: numShards,
		Logger:    logger,
	}
}

// normalizeConfig flattens the optional trailing config argument.
//
// Accepts either 0 or 1 configs. Panics if more than one is passed.
func normalizeConfig(cfg []Config) Config {
	switch len(cfg) {
	case 1:
		return NewConfig(cfg[0].NumShards, cfg[0].Logger)
	case 0:
		return NewConfig(0, nil)
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
}
