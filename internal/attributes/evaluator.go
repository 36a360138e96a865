package attributes

import (
	"fmt"
	"log"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mrzor/gesture-tracer/internal/config"
	"github.com/mrzor/gesture-tracer/internal/gesture"
)

// exprEnv returns the evaluation environment for a gesture, also used as
// the type-checking environment at compile time. x/y are the end point,
// x2/y2 the session start.
func exprEnv(g *gesture.Gesture) map[string]interface{} {
	dx := g.X - g.StartX
	dy := g.Y - g.StartY
	return map[string]interface{}{
		"type":     g.Type.String(),
		"x":        g.X,
		"y":        g.Y,
		"x2":       g.StartX,
		"y2":       g.StartY,
		"dx":       dx,
		"dy":       dy,
		"distance": math.Hypot(float64(dx), float64(dy)),
		"duration": g.Duration.Seconds(),
	}
}

// Evaluator handles compilation and evaluation of custom attribute expressions.
type Evaluator struct {
	customAttrs   []config.CustomAttribute
	compiledExprs []*vm.Program
}

// NewEvaluator creates a new attribute evaluator.
// It pre-compiles all custom attribute expressions so invalid ones are
// rejected at startup.
func NewEvaluator(customAttrs []config.CustomAttribute) (*Evaluator, error) {
	typeEnv := exprEnv(&gesture.Gesture{Type: gesture.Click})

	compiledExprs := make([]*vm.Program, len(customAttrs))
	for i, attr := range customAttrs {
		program, err := expr.Compile(attr.Expression, expr.Env(typeEnv))
		if err != nil {
			return nil, fmt.Errorf("failed to compile expression for attribute %q: %w", attr.Name, err)
		}
		compiledExprs[i] = program
	}

	return &Evaluator{
		customAttrs:   customAttrs,
		compiledExprs: compiledExprs,
	}, nil
}

// Evaluate runs the pre-compiled expressions against a gesture.
// Per-gesture evaluation errors are logged and the attribute skipped;
// the remaining attributes still apply.
func (e *Evaluator) Evaluate(g *gesture.Gesture) []attribute.KeyValue {
	if len(e.customAttrs) == 0 {
		return nil
	}

	env := exprEnv(g)

	var attrs []attribute.KeyValue
	for i, customAttr := range e.customAttrs {
		output, err := expr.Run(e.compiledExprs[i], env)
		if err != nil {
			log.Printf("evaluating expression for attribute %q: %v", customAttr.Name, err)
			continue
		}

		switch v := output.(type) {
		case bool:
			attrs = append(attrs, attribute.Bool(customAttr.Name, v))
		case int:
			attrs = append(attrs, attribute.Int(customAttr.Name, v))
		case float64:
			attrs = append(attrs, attribute.Float64(customAttr.Name, v))
		case string:
			attrs = append(attrs, attribute.String(customAttr.Name, v))
		default:
			attrs = append(attrs, attribute.String(customAttr.Name, fmt.Sprint(v)))
		}
	}

	return attrs
}
