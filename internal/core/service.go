package core

import (
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

// Value kinds accepted by Print and ParseValue.
const (
	KindString = "string"
	KindInt    = "int"
	KindUint   = "uint"
	KindFloat  = "float"
	KindBool   = "bool"
)

// Service orchestrates foo CLI use cases.
type Service struct {
	// Out receives printed values. Nil means stdout.
	Out io.Writer
	// Logger carries the invocation's request_id.
	Logger *zap.Logger
	Config Config
}

// Print parses value as kind and prints it with the type's own textual form.
func (s Service) Print(value string, kind string) error {
	parsed, err := s.ParseValue(value, kind)
	if err != nil {
		return err
	}
	s.logger().Debug("print", zap.String("kind", parsed.Kind), zap.String("value", value))

	switch v := parsed.Value.(type) {
	case int64:
		return emit(s, v)
	case uint64:
		return emit(s, v)
	case float64:
		return emit(s, v)
	case bool:
		return emit(s, v)
	default:
		return emit(s, value)
	}
}

// ParseValue converts value into the Go type named by kind.
func (s Service) ParseValue(value string, kind string) (ValueResult, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	var (
		v   any
		err error
	)
	switch kind {
	case "", KindString:
		kind = KindString
		v = value
	case KindInt:
		v, err = strconv.ParseInt(value, 10, 64)
	case KindUint:
		v, err = strconv.ParseUint(value, 10, 64)
	case KindFloat:
		v, err = strconv.ParseFloat(value, 64)
	case KindBool:
		v, err = strconv.ParseBool(value)
	default:
		return ValueResult{}, UsageError("kind must be string|int|uint|float|bool")
	}
	if err != nil {
		return ValueResult{}, WrapError(ExitUsage, "invalid "+kind, err)
	}
	return ValueResult{Kind: kind, Value: v}, nil
}

// Square squares the integer in arg. An empty policy uses the configured one.
func (s Service) Square(arg string, policy string) (SquareResult, error) {
	if policy == "" {
		policy = string(s.Config.Policy)
	}
	p, err := foo.ParsePolicy(policy)
	if err != nil {
		return SquareResult{}, ErrorFor(err)
	}
	arg = strings.TrimSpace(arg)
	log := s.logger().With(zap.String("input", arg), zap.String("policy", string(p)))

	if p == foo.PolicyWide {
		n, ok := new(big.Int).SetString(arg, 10)
		if !ok {
			return SquareResult{}, UsageError("invalid integer %q", arg)
		}
		sq := foo.SquareBig(n)
		log.Debug("square", zap.Int("bits", sq.BitLen()))
		return SquareResult{Input: n.String(), Square: sq.String(), Policy: string(p)}, nil
	}

	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return SquareResult{}, UsageError("integer %q out of int64 range (use --policy wide)", arg)
		}
		return SquareResult{}, UsageError("invalid integer %q", arg)
	}

	var sq int64
	if p == foo.PolicyWrap {
		sq = foo.SquareWrap(n)
	} else {
		sq, err = foo.Square(n)
		if err != nil {
			log.Warn("square overflow", zap.Error(err))
			return SquareResult{}, ErrorFor(err)
		}
	}
	log.Debug("square", zap.Int64("square", sq))
	return SquareResult{
		Input:  strconv.FormatInt(n, 10),
		Square: strconv.FormatInt(sq, 10),
		Policy: string(p),
	}, nil
}

func (s Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func emit[T any](s Service, v T) error {
	var err error
	if s.Out == nil {
		err = foo.Print(v)
	} else {
		err = foo.Fprint(s.Out, v)
	}
	if err != nil {
		return WrapError(ExitRuntime, "write output", err)
	}
	return nil
}
