package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunnerAggregatesErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx)
	r.Go(
		NamedRun("canceled", RunFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
		RunFunc(func(context.Context) error { return errors.New("bad listener") }),
		RunFunc(func(context.Context) error { return nil }),
	)
	cancel()
	err := r.Wait()
	require.Error(t, err)
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.Len(t, agg.Errors, 1)
	require.Equal(t, "Multiple errors:\nbad listener", err.Error())
}

func TestRunnerNoErrors(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(context.Context) error { return nil }))
	require.NoError(t, r.Wait())
}

type closer struct{ closed int }

func (c *closer) Close() error {
	c.closed++
	return nil
}

func TestRunWithContextCloser(t *testing.T) {
	var c closer
	require.NoError(t, RunWithContextCloser(context.Background(), &c, func() error { return nil }))
	require.Equal(t, 1, c.closed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	block := make(chan struct{})
	err := RunWithContextCloser(ctx, &closerFunc{fn: func() { close(block) }}, func() error {
		<-block
		return nil
	})
	require.Equal(t, context.Canceled, err)
}

type closerFunc struct{ fn func() }

func (c *closerFunc) Close() error {
	c.fn()
	return nil
}
