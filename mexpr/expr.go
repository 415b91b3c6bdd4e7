// Package mexpr evaluates the small arithmetic expression language used by
// function-surface solids: +, -, *, /, unary minus, and the functions sin,
// cos, tan, sqrt, exp, log, abs, min, max, div_euclid and rem_euclid, over
// the two variables x and y.
package mexpr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/HellOwhatAs/ln/lnerr"
)

// Expr is a compiled function-surface expression ready for repeated
// evaluation at different (x, y).
type Expr struct {
	evaluable *govaluate.EvaluableExpression
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"sqrt": unary(math.Sqrt),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"abs":  unary(math.Abs),
	"min":  binary(math.Min),
	"max":  binary(math.Max),
	"div_euclid": binary(func(a, b float64) float64 {
		q := math.Floor(a / b)
		if a-q*b < 0 {
			if b > 0 {
				q--
			} else {
				q++
			}
		}
		return q
	}),
	"rem_euclid": binary(func(a, b float64) float64 {
		r := math.Mod(a, b)
		if r < 0 {
			r += math.Abs(b)
		}
		return r
	}),
}

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected 1 argument, got %d", ErrParse, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: argument must be numeric", ErrParse)
		}
		return f(v), nil
	}
}

func binary(f func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: expected 2 arguments, got %d", ErrParse, len(args))
		}
		a, ok1 := args[0].(float64)
		b, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: arguments must be numeric", ErrParse)
		}
		return f(a, b), nil
	}
}

// Compile parses expr into a reusable Expr. Parse failures are reported as
// a lnerr.ConfigError wrapping ErrParse.
func Compile(expr string) (*Expr, error) {
	evaluable, err := govaluate.NewEvaluableExpressionWithFunctions(expr, functions)
	if err != nil {
		return nil, lnerr.NewConfigError("mexpr", "Compile", fmt.Errorf("%w: %v", ErrParse, err))
	}
	return &Expr{evaluable: evaluable}, nil
}

// Eval evaluates the compiled expression at (x, y). A runtime evaluation
// failure (e.g. a custom function called with the wrong arity) is wrapped
// as a ConfigError, since it can only be caused by the expression itself.
func (e *Expr) Eval(x, y float64) (float64, error) {
	result, err := e.evaluable.Evaluate(map[string]interface{}{"x": x, "y": y})
	if err != nil {
		return 0, lnerr.NewConfigError("mexpr", "Eval", fmt.Errorf("%w: %v", ErrParse, err))
	}
	v, ok := result.(float64)
	if !ok {
		return 0, lnerr.NewConfigError("mexpr", "Eval", fmt.Errorf("%w: expression did not evaluate to a number", ErrParse))
	}
	return v, nil
}
