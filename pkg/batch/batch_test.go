package batch_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/ospath/pkg/batch"
	"github.com/MacroPower/ospath/pkg/ospath"
)

const testBatchYAML = `
manipulation: windows
operations:
  - name: home
    op: resolve
    paths: ["C:/Users", "me"]
  - op: resolveN
    paths: ["foo", '\\Whack////a//Box', "..", "Box"]
  - op: ResolveOne
    paths: ["D:/a//b/.."]
  - op: relative
    paths: ['\\a/b', '\\foo']
  - name: not absolute
    op: relative
    paths: ["a", "C:/"]
  - op: is-absolute
    paths: ["C:"]
    manipulation: default
`

func TestLoad(t *testing.T) {
	t.Parallel()

	f, err := batch.Load(strings.NewReader(testBatchYAML))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	assert.Equal(t, "windows", f.Manipulation)
	require.Len(t, f.Operations, 6)

	ops := make([]batch.Op, 0, len(f.Operations))
	for _, op := range f.Operations {
		ops = append(ops, op.Op)
	}
	assert.Equal(t, []batch.Op{
		batch.OpResolve, batch.OpResolveN, batch.OpResolveOne,
		batch.OpRelative, batch.OpRelative, batch.OpIsAbsolute,
	}, ops)
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	f, err := batch.Load(strings.NewReader(`{"operations": [{"op": "resolve_one", "paths": ["/a/../b"]}]}`))
	require.NoError(t, err)
	require.NoError(t, f.Validate())
	assert.Equal(t, batch.OpResolveOne, f.Operations[0].Op)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := batch.Load(strings.NewReader("operations: [{op: resolve, pathz: []}]"))
	require.ErrorIs(t, err, batch.ErrDecode)

	_, err = batch.Load(strings.NewReader("operations: {"))
	require.ErrorIs(t, err, batch.ErrDecode)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	f := &batch.File{
		Manipulation: "beos",
		Operations: []batch.Operation{
			{Op: "frobnicate", Paths: []string{"a"}},
			{Op: batch.OpResolve, Paths: []string{"a"}},
			{Op: batch.OpIsAbsolute, Paths: []string{"a", "b"}},
			{Op: batch.OpResolveN},
			{Op: batch.OpResolveOne, Paths: []string{"a"}, Manipulation: "plan9"},
		},
	}

	err := f.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, batch.ErrInvalidOperation)
	require.ErrorIs(t, err, batch.ErrUnknownOp)
	require.ErrorIs(t, err, batch.ErrArity)
	require.ErrorIs(t, err, ospath.ErrUnknownManipulation)

	assert.Contains(t, err.Error(), "operation 0 (frobnicate)")
	assert.Contains(t, err.Error(), "operation 2 (is_absolute)")
	assert.NotContains(t, err.Error(), "operation 3")
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	f, err := batch.Load(strings.NewReader(testBatchYAML))
	require.NoError(t, err)

	results, err := batch.Evaluate(context.Background(), f, batch.Options{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 6)

	paths := []string{"C:/Users/me", `\\Whack/a/Box`, "D:/a", "../../foo"}
	for i, want := range paths {
		require.NotNil(t, results[i].Path, "result %d", i)
		assert.Equal(t, want, *results[i].Path, "result %d", i)
		assert.False(t, results[i].Failed())
		assert.Equal(t, "windows", results[i].Manipulation)
	}

	assert.Equal(t, "home", results[0].Name)

	assert.True(t, results[4].Failed())
	assert.Contains(t, results[4].Error, ospath.ErrNotAbsolute.Error())
	assert.Nil(t, results[4].Path)

	require.NotNil(t, results[5].Absolute)
	assert.False(t, *results[5].Absolute)
	assert.Equal(t, "default", results[5].Manipulation)
}

func TestEvaluate_Invalid(t *testing.T) {
	t.Parallel()

	f := &batch.File{Operations: []batch.Operation{{Op: batch.OpRelative}}}

	_, err := batch.Evaluate(context.Background(), f, batch.Options{})
	require.ErrorIs(t, err, batch.ErrArity)
}

func TestEvaluate_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &batch.File{Operations: []batch.Operation{{Op: batch.OpResolveOne, Paths: []string{"a"}}}}

	_, err := batch.Evaluate(ctx, f, batch.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_Empty(t *testing.T) {
	t.Parallel()

	results, err := batch.Evaluate(context.Background(), &batch.File{}, batch.Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNormalizeOp(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]batch.Op{
		"resolve":     batch.OpResolve,
		"resolveN":    batch.OpResolveN,
		"ResolveOne":  batch.OpResolveOne,
		"resolve-one": batch.OpResolveOne,
		" relative ":  batch.OpRelative,
		"IsAbsolute":  batch.OpIsAbsolute,
		"is_absolute": batch.OpIsAbsolute,
	} {
		assert.Equal(t, want, batch.NormalizeOp(in), in)
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(batch.Schema())
	require.NoError(t, err)

	var s map[string]any
	require.NoError(t, json.Unmarshal(b, &s))
	assert.Equal(t, "ospath batch file", s["title"])

	props, ok := s["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "operations")
	assert.Contains(t, props, "manipulation")
}
