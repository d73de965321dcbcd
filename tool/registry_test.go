package tool

import (
	"context"
	"errors"
	"testing"

	ai "github.com/lexdraft/lexdraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("registers tool successfully", func(t *testing.T) {
		r := NewRegistry()
		testTool := ai.Tool{Name: "test_tool", Description: "A test tool"}
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "result", nil
		}

		err := r.Register(testTool, handler)

		assert.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("returns error for duplicate registration", func(t *testing.T) {
		r := NewRegistry()
		testTool := ai.Tool{Name: "test_tool"}
		handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "result", nil
		}

		require.NoError(t, r.Register(testTool, handler))
		err := r.Register(testTool, handler)

		var dup *ErrToolAlreadyRegistered
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "test_tool", dup.Name)
	})
}

func TestRegistry_Execute(t *testing.T) {
	t.Run("returns handler result", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(ai.Tool{Name: "echo"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return call.Arguments, nil
		})

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID: "call-1", Name: "echo", Arguments: `{"x":1}`,
		})

		require.NoError(t, err)
		assert.Equal(t, "call-1", result.ToolCallID)
		assert.Equal(t, `{"x":1}`, result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("handler errors become error results", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(ai.Tool{Name: "broken"}, func(ctx context.Context, call ai.ToolCall) (string, error) {
			return "", errors.New("upstream unavailable")
		})

		result, err := r.Execute(context.Background(), ai.ToolCall{ID: "call-1", Name: "broken"})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "upstream unavailable", result.Content)
	})

	t.Run("unknown tool returns ErrToolNotFound", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.Execute(context.Background(), ai.ToolCall{Name: "missing"})

		var notFound *ErrToolNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
	})
}

func TestRegisterFunc(t *testing.T) {
	type greetArgs struct {
		Name string `json:"name" desc:"Who to greet" required:"true"`
	}

	r := NewRegistry()
	err := RegisterFunc(r, "greet", "Greet someone", func(ctx context.Context, args greetArgs) (string, error) {
		return "hello " + args.Name, nil
	})
	require.NoError(t, err)

	tl, ok := r.GetTool("greet")
	require.True(t, ok)
	assert.Contains(t, string(tl.Parameters), `"name"`)
	assert.Contains(t, string(tl.Parameters), `"required"`)

	result, err := r.Execute(context.Background(), ai.ToolCall{
		ID: "call-1", Name: "greet", Arguments: `{"name":"ada"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello ada", result.Content)
}

func TestRegistry_Add(t *testing.T) {
	type noArgs struct{}

	r := NewRegistry().Add(
		Func("a", "first", func(ctx context.Context, args noArgs) (string, error) { return "a", nil }),
		Func("b", "second", func(ctx context.Context, args noArgs) (string, error) { return "b", nil }),
	)

	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, r.Names())
}
