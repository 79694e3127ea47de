package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanfei1991/queuelab/pkg/errors"
)

func TestRunConsole(t *testing.T) {
	s, _ := newTestSession(t, "circular")

	in := strings.NewReader(`
# comments and blank lines are skipped
enqueue 1
enqueue 2
enqueue 3
enqueue 4
dequeue
enqueue x
peek
exit
enqueue 5
`)
	var out bytes.Buffer
	err := s.RunConsole(context.Background(), in, &out, ConsoleOptions{AutoRender: true})
	require.NoError(t, err)

	expected := []string{
		"Circular Queue: null",
		"Enqueued: 1",
		"Circular Queue: 1 -> null",
		"Enqueued: 2",
		"Circular Queue: 1 -> 2 -> null",
		"Enqueued: 3",
		"Circular Queue: 1 -> 2 -> 3 -> null",
		"Circular Queue is full, capacity 3",
		"Dequeued: 1",
		"Circular Queue: 2 -> 3 -> null",
		`please enter a valid integer, got "x"`,
		"Peek: 2",
	}
	require.Equal(t, strings.Join(expected, "\n")+"\n", out.String())
	// "enqueue 5" after exit was never run
	require.Equal(t, []int32{2, 3}, s.Values())
}

func TestRunConsolePromptAndStopOnError(t *testing.T) {
	s, _ := newTestSession(t, "queue")

	var out bytes.Buffer
	err := s.RunConsole(context.Background(), strings.NewReader("enqueue 1\ndequeue\ndequeue\nenqueue 2\n"), &out,
		ConsoleOptions{Prompt: "> ", StopOnError: true})
	require.True(t, errors.ErrEmptyQueue.Equal(err))
	require.Equal(t, "> Enqueued: 1\n> Dequeued: 1\n> Queue is empty\n", out.String())
	require.Empty(t, s.Values())
}

func TestRunConsoleCanceled(t *testing.T) {
	s, _ := newTestSession(t, "queue")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := s.RunConsole(ctx, strings.NewReader("enqueue 1\n"), &out, ConsoleOptions{})
	require.Error(t, err)
	require.Regexp(t, ".*context canceled.*", err.Error())
	require.Empty(t, s.Values())
}
