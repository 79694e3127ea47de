package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hanfei1991/queuelab/pkg/autoid"
	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/queue"
	"github.com/hanfei1991/queuelab/pkg/queue/mock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestSession(t *testing.T, kind string, opts ...Option) (*Session, *clock.Mock) {
	cfg := config.NewConfig()
	cfg.DefaultKind = kind
	cfg.Capacity = 3
	cfg.HistorySize = 4

	mockClock := clock.NewMock()
	opts = append([]Option{
		WithClock(mockClock),
		WithIDAllocator(autoid.NewSequenceAllocator("session")),
	}, opts...)
	s, err := New(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, mockClock
}

func mustExecute(t *testing.T, s *Session, line string) *Result {
	res, err := s.ExecuteLine(context.Background(), line)
	require.NoError(t, err, line)
	return res
}

func TestSessionQueueCommands(t *testing.T) {
	s, _ := newTestSession(t, "priority")
	require.Equal(t, "session-1", s.ID())
	require.Equal(t, "priority", s.Kind())

	for _, v := range []string{"5", "3", "8"} {
		res := mustExecute(t, s, "enqueue "+v)
		require.True(t, res.Changed)
		require.Equal(t, "Enqueued: "+v, res.Message())
	}
	require.Equal(t, "Priority Queue: 3 -> 5 -> 8 -> null", s.Render())

	res := mustExecute(t, s, "peek")
	require.False(t, res.Changed)
	require.Equal(t, "Peek: 3", res.Message())

	res = mustExecute(t, s, "dequeue")
	require.True(t, res.HasValue)
	require.Equal(t, int32(3), res.Value)
	require.Equal(t, "Dequeued: 3", res.Message())
	require.Equal(t, "Priority Queue: 5 -> 8 -> null", res.Rendering)

	res = mustExecute(t, s, "show")
	require.Equal(t, "Priority Queue: 5 -> 8 -> null", res.Message())
	require.Equal(t, []int32{5, 8}, s.Values())
}

func TestSessionErrors(t *testing.T) {
	s, _ := newTestSession(t, "queue")

	_, err := s.ExecuteLine(context.Background(), "dequeue")
	require.True(t, errors.ErrEmptyQueue.Equal(err))
	_, err = s.ExecuteLine(context.Background(), "peek")
	require.True(t, errors.ErrEmptyQueue.Equal(err))

	_, err = s.ExecuteLine(context.Background(), "enqueue five")
	require.True(t, errors.ErrInvalidInput.Equal(err))

	_, err = s.ExecuteLine(context.Background(), "append 1")
	require.True(t, errors.ErrUnsupportedOperation.Equal(err))
	require.Regexp(t, ".*Queue does not support append", err.Error())

	_, err = s.ExecuteLine(context.Background(), "push-front 1")
	require.True(t, errors.ErrUnsupportedOperation.Equal(err))

	_, err = s.ExecuteLine(context.Background(), "use heap")
	require.True(t, errors.ErrUnknownKind.Equal(err))
	require.Equal(t, "queue", s.Kind())

	require.Equal(t, Stats{Executed: 5, Failed: 6}, s.Stats())
	// the stats command counts itself
	require.Equal(t, "executed 6, failed 6", mustExecute(t, s, "stats").Message())
	require.Equal(t, Stats{Executed: 6, Failed: 6}, s.Stats())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Execute(ctx, Command{Verb: VerbShow, Line: "show"})
	require.Regexp(t, ".*context canceled.*", err.Error())

	s.Close()
	_, err = s.ExecuteLine(context.Background(), "show")
	require.True(t, errors.ErrSessionClosed.Equal(err))
}

func TestSessionCircularAndSwitch(t *testing.T) {
	s, _ := newTestSession(t, "circular")

	for _, v := range []string{"1", "2", "3"} {
		mustExecute(t, s, "enqueue "+v)
	}
	require.Equal(t, "Circular Queue: 1 -> 2 -> 3 -> null", s.Render())
	_, err := s.ExecuteLine(context.Background(), "enqueue 4")
	require.True(t, errors.ErrQueueFull.Equal(err))

	res := mustExecute(t, s, "dequeue")
	require.Equal(t, int32(1), res.Value)
	mustExecute(t, s, "enqueue 4")
	require.Equal(t, "Circular Queue: 2 -> 3 -> 4 -> null", s.Render())

	// switching drops the contents and honours the explicit capacity
	res = mustExecute(t, s, "use circular 1")
	require.Equal(t, "Switched to Circular Queue", res.Message())
	require.Equal(t, "Circular Queue: null", res.Rendering)
	mustExecute(t, s, "enqueue 9")
	_, err = s.ExecuteLine(context.Background(), "enqueue 10")
	require.True(t, errors.ErrQueueFull.Equal(err))

	require.NoError(t, s.Switch("Deque", 0))
	require.Equal(t, "deque", s.Kind())
	mustExecute(t, s, "enqueue 2")
	mustExecute(t, s, "push-front 1")
	mustExecute(t, s, "enqueue 3")
	require.Equal(t, "Rear: 3", mustExecute(t, s, "peek-rear").Message())
	require.Equal(t, "Removed from rear: 3", mustExecute(t, s, "pop-rear").Message())
	require.Equal(t, "Deque: 1 -> 2 -> null", s.Render())

	// an oversized capacity is rejected and the deque stays active
	_, err = s.ExecuteLine(context.Background(), "use circular 9000000000000000000")
	require.True(t, errors.ErrInvalidCapacity.Equal(err))
	err = s.Switch("circular", queue.MaxCircularCapacity+1)
	require.True(t, errors.ErrInvalidCapacity.Equal(err))
	require.Equal(t, "deque", s.Kind())
	require.Equal(t, "Deque: 1 -> 2 -> null", s.Render())
}

func TestSessionListCommands(t *testing.T) {
	s, _ := newTestSession(t, "dlist")

	for _, v := range []string{"10", "20", "30"} {
		require.Equal(t, "Appended: "+v, mustExecute(t, s, "append "+v).Message())
	}
	require.Equal(t, "Data at position 2: 20", mustExecute(t, s, "read 2").Message())
	require.Equal(t, "Updated position 2: 25", mustExecute(t, s, "update 2 25").Message())
	require.Equal(t, "Deleted position 1: 10", mustExecute(t, s, "delete 1").Message())
	require.Equal(t, "Doubly Linked List: 25 <-> 30 <-> null", s.Render())

	_, err := s.ExecuteLine(context.Background(), "read 5")
	require.True(t, errors.ErrPositionOutOfRange.Equal(err))
	_, err = s.ExecuteLine(context.Background(), "dequeue")
	require.Regexp(t, ".*Doubly Linked List does not support dequeue", err.Error())

	require.NoError(t, s.Switch("list", 0))
	mustExecute(t, s, "append 1")
	require.Equal(t, "Linked List: 1 -> null", s.Render())
}

func TestSessionHistory(t *testing.T) {
	s, mockClock := newTestSession(t, "queue")

	start := mockClock.Now()
	for i, line := range []string{"enqueue 1", "enqueue 2", "dequeue", "dequeue", "dequeue"} {
		mockClock.Add(time.Second)
		_, err := s.ExecuteLine(context.Background(), line)
		if i < 4 {
			require.NoError(t, err)
		} else {
			require.Error(t, err)
		}
	}

	// history-size is 4, so the first command was evicted
	entries := s.History()
	require.Len(t, entries, 4)
	require.Equal(t, "enqueue 2", entries[0].Line)
	require.Equal(t, start.Add(2*time.Second), entries[0].Time)
	require.Equal(t, "dequeue", entries[3].Line)
	require.Equal(t, "Queue is empty", entries[3].Err)

	res := mustExecute(t, s, "history")
	lines := strings.Split(res.Message(), "\n")
	require.Len(t, lines, 4)
	require.Regexp(t, `^  1  \d\d:\d\d:\d\d  enqueue 2$`, lines[0])
	require.Regexp(t, `^  4  \d\d:\d\d:\d\d  dequeue  \(Queue is empty\)$`, lines[3])
}

func TestSessionEvents(t *testing.T) {
	s, mockClock := newTestSession(t, "stacks")
	receiver := s.Subscribe()
	defer receiver.Close()

	mustExecute(t, s, "enqueue 1")
	mustExecute(t, s, "peek")
	mockClock.Add(time.Minute)
	mustExecute(t, s, "enqueue 2")
	mustExecute(t, s, "dequeue")
	require.NoError(t, s.Flush(context.Background()))

	var events []Event
	for i := 0; i < 3; i++ {
		events = append(events, <-receiver.C)
	}
	require.Equal(t, int64(1), events[0].Seq)
	require.Equal(t, "Queue Using Stacks: 1 -> null", events[0].Rendering)
	require.Equal(t, "Queue Using Stacks: 1 -> 2 -> null", events[1].Rendering)
	require.Equal(t, "Queue Using Stacks: 2 -> null", events[2].Rendering)
	require.Equal(t, int64(3), events[2].Seq)
	require.Equal(t, "stacks", events[2].Kind)
	require.Equal(t, "session-1", events[2].SessionID)
	require.Equal(t, mockClock.Now(), events[2].Time)

	// peek does not publish anything
	select {
	case ev := <-receiver.C:
		require.FailNow(t, "unexpected event", "%v", ev)
	default:
	}
}

func TestSessionDelegatesToQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueue := mock.NewMockQueue(ctrl)
	mockQueue.EXPECT().Kind().Return(queue.KindCircular).AnyTimes()
	mockQueue.EXPECT().Len().Return(1).AnyTimes()
	mockQueue.EXPECT().String().Return("Circular Queue: 7 -> null").AnyTimes()

	gomock.InOrder(
		mockQueue.EXPECT().Enqueue(int32(7)).Return(nil),
		mockQueue.EXPECT().Enqueue(int32(8)).Return(errors.ErrQueueFull.GenWithStackByArgs(1)),
		mockQueue.EXPECT().Peek().Return(int32(7), nil),
	)

	s, _ := newTestSession(t, "circular", WithFactory(func(name string, capacity int) (Structure, error) {
		require.Equal(t, "circular", name)
		require.Equal(t, 3, capacity)
		return mockQueue, nil
	}))

	res := mustExecute(t, s, "enqueue 7")
	require.Equal(t, "Circular Queue: 7 -> null", res.Rendering)
	_, err := s.ExecuteLine(context.Background(), "enqueue 8")
	require.True(t, errors.ErrQueueFull.Equal(err))
	require.Equal(t, "Peek: 7", mustExecute(t, s, "peek").Message())
}

func TestNewStructure(t *testing.T) {
	t.Parallel()

	for _, name := range StructureNames() {
		st, err := NewStructure(name, 2)
		require.NoError(t, err, name)
		require.Equal(t, name, nameOf(st))
		require.Equal(t, 0, st.Len())
	}

	_, err := NewStructure("circular", 0)
	require.True(t, errors.ErrInvalidCapacity.Equal(err))
	_, err = NewStructure("circular", queue.MaxCircularCapacity+1)
	require.True(t, errors.ErrInvalidCapacity.Equal(err))
	_, err = NewStructure("tree", 2)
	require.True(t, errors.ErrUnknownKind.Equal(err))

	cfg := config.NewConfig()
	cfg.DefaultKind = "tree"
	_, err = New(cfg)
	require.True(t, errors.ErrUnknownKind.Equal(err))
}
