// Package filter evaluates expr-lang expressions against the JSON objects
// returned by FastPix list endpoints.
//
// Every top-level key of an item is available as a variable, and the whole
// item as "item":
//
//	status == "ready" and duration > 60
//	hasText(title, "trailer") and daysSince(createdAt) < 7
//	title contains "Trailer" or maxResolution startsWith "1080"
//	has("playbackIds") and len(playbackIds) > 0
//
// hasText, hasPrefix and hasSuffix are case-insensitive; the contains,
// startsWith and endsWith operators are case-sensitive.
package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one item.
func (f *Filter) Match(item map[string]any) (bool, error) {
	result, err := expr.Run(f.program, f.environment(item))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, ItemID: itemID(item), Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemID:     itemID(item),
			Err:        fmt.Errorf("expression returned %T, want bool", result),
		}
	}
	return matched, nil
}

// environment builds the runtime variables for item. Helpers shadow item
// keys of the same name; those stay reachable through item.
func (f *Filter) environment(item map[string]any) map[string]any {
	env := make(map[string]any, len(item)+len(f.helpers)+2)
	maps.Copy(env, item)
	maps.Copy(env, f.helpers)
	env["item"] = item
	env["has"] = func(key string) bool {
		_, ok := item[key]
		return ok
	}
	return env
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables caching of compiled filters with the given capacity
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds helper functions available to every expression
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler turns expressions into Filters.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache
}

// NewCompiler creates a compiler with the default helper functions
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{helpers: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses and type-checks expression.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// item, has and the item keys only exist at run time
	env := make(map[string]any, len(c.helpers)+2)
	maps.Copy(env, c.helpers)
	env["item"] = map[string]any{}
	env["has"] = func(string) bool { return false }

	opts := []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}
	for _, name := range fieldBuiltins {
		opts = append(opts, expr.DisableBuiltin(name))
	}

	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{expression: expression, program: program, helpers: c.helpers}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

var defaultCompiler = NewCompiler(WithCache(32))

// Compile compiles expression with the shared caching compiler.
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// fieldBuiltins are expr builtins named like FastPix response fields.
// Disabling them lets the identifier resolve to the item's value.
var fieldBuiltins = []string{"duration", "date", "timezone", "type"}

func helperFunctions() map[string]any {
	return map[string]any{
		// String helpers. contains, startsWith and endsWith are expr
		// operators and cannot be used as function names.
		"hasText": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers. API timestamps are RFC 3339 strings.
		"parseTime": parseTime,
		"daysSince": func(ts string) int {
			t := parseTime(ts)
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
	}
}

func parseTime(ts string) time.Time {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02", ts)
	return t
}
