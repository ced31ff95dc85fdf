package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []any {
	recent := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	old := time.Now().AddDate(0, -3, 0).UTC().Format(time.RFC3339)

	return []any{
		map[string]any{"id": "m1", "title": "Launch Trailer", "status": "ready", "duration": float64(95), "createdAt": recent},
		map[string]any{"id": "m2", "title": "Keynote", "status": "preparing", "duration": float64(3600), "createdAt": old},
		map[string]any{"id": "m3", "title": "Teaser", "status": "ready", "duration": float64(30), "createdAt": old,
			"playbackIds": []any{map[string]any{"id": "p1"}}},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `status == "ready"`},
		{name: "empty expression", expression: "  ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `hasText(title, "unclosed`, wantErr: true, errContains: "failed to compile"},
		{name: "non boolean", expression: `1 + 2`, wantErr: true},
		{name: "complex expression", expression: `status == "ready" and duration > 60 and daysSince(createdAt) < 7`},
		{name: "field named like a builtin", expression: `duration > 60`},
		{name: "type field", expression: `type == "video"`},
		{name: "string operators", expression: `title contains "Trailer" or title startsWith "Tea"`},
		{name: "case-insensitive helpers", expression: `hasText(title, "x") or hasPrefix(title, "x") or hasSuffix(title, "x")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	items := sampleItems()

	tests := []struct {
		expression string
		want       []string
	}{
		{`status == "ready"`, []string{"m1", "m3"}},
		{`duration > 60`, []string{"m1", "m2"}},
		{`hasText(title, "TRAILER")`, []string{"m1"}},
		{`hasPrefix(title, "tea")`, []string{"m3"}},
		{`hasSuffix(title, "NOTE")`, []string{"m2"}},
		{`title contains "Trailer"`, []string{"m1"}},
		{`title contains "trailer"`, nil},
		{`title endsWith "ser"`, []string{"m3"}},
		{`status == "ready" and duration > 60`, []string{"m1"}},
		{`daysSince(createdAt) < 7`, []string{"m1"}},
		{`has("playbackIds")`, []string{"m3"}},
		{`item.id in ["m2", "m3"]`, []string{"m2", "m3"}},
		{`status == "errored"`, nil},
	}

	compiler := NewCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			var got []string
			for _, raw := range items {
				item := raw.(map[string]any)
				matched, err := f.Match(item)
				require.NoError(t, err)
				if matched {
					got = append(got, item["id"].(string))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	f, err := NewCompiler().Compile(`status == "ready"`)
	require.NoError(t, err)

	t.Run("envelope", func(t *testing.T) {
		response := map[string]any{
			"success":    true,
			"data":       sampleItems(),
			"pagination": map[string]any{"totalRecords": float64(3)},
		}

		out, stats, err := Apply(f, response)
		require.NoError(t, err)
		assert.Equal(t, Stats{Total: 3, Kept: 2}, stats)

		envelope := out.(map[string]any)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, response["pagination"], envelope["pagination"])
		assert.Len(t, envelope["data"], 2)
		assert.Len(t, response["data"], 3, "input is not modified")
	})

	t.Run("bare array", func(t *testing.T) {
		items := append(sampleItems(), "not an object")
		out, stats, err := Apply(f, items)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Kept)
		assert.Equal(t, 1, stats.Skipped)
		assert.NoError(t, stats.Err)
		assert.Len(t, out, 2)
	})

	t.Run("evaluation errors are counted", func(t *testing.T) {
		upper, err := NewCompiler().Compile(`upper(title) == "KEYNOTE"`)
		require.NoError(t, err)

		items := append(sampleItems(), map[string]any{"id": "m4", "title": float64(7)})
		out, stats, err := Apply(upper, items)
		require.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 1, stats.Kept)
		assert.Equal(t, 1, stats.Skipped)

		var evalErr *EvaluationError
		require.ErrorAs(t, stats.Err, &evalErr)
		assert.Equal(t, "m4", evalErr.ItemID)
	})

	t.Run("single object", func(t *testing.T) {
		_, _, err := Apply(f, map[string]any{"data": map[string]any{"id": "m1"}})
		assert.ErrorIs(t, err, ErrNotAList)
	})

	t.Run("scalar", func(t *testing.T) {
		_, _, err := Apply(f, "nope")
		assert.ErrorIs(t, err, ErrNotAList)
	})
}

func TestCompilerCache(t *testing.T) {
	compiler := NewCompiler(WithCache(2))

	f1, err := compiler.Compile(`status == "ready"`)
	require.NoError(t, err)
	f2, err := compiler.Compile(`status == "ready"`)
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`duration > 1`)
	require.NoError(t, err)
	_, err = compiler.Compile(`duration > 2`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size(), "oldest entry evicted")

	f3, err := compiler.Compile(`status == "ready"`)
	require.NoError(t, err)
	assert.NotSame(t, f1, f3)

	compiler.Clear()
	assert.Zero(t, compiler.Size())

	assert.Zero(t, NewCompiler().Size(), "no cache by default")
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewCompiler(WithCustomFunctions(map[string]any{
		"isLong": func(d float64) bool { return d > 600 },
	}))

	f, err := compiler.Compile(`isLong(duration)`)
	require.NoError(t, err)

	matched, err := f.Match(map[string]any{"duration": float64(3600)})
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluationError(t *testing.T) {
	f, err := NewCompiler().Compile(`upper(title) == "X"`)
	require.NoError(t, err)

	_, err = f.Match(map[string]any{"id": "m9", "title": float64(1)})
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "m9", evalErr.ItemID)
}
