package session

import (
	"strconv"
	"strings"

	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/queue"
)

// Verb is the operation a command performs.
type Verb string

// Supported verbs
const (
	VerbEnqueue   Verb = "enqueue"
	VerbDequeue   Verb = "dequeue"
	VerbPeek      Verb = "peek"
	VerbPushFront Verb = "push-front"
	VerbPopRear   Verb = "pop-rear"
	VerbPeekRear  Verb = "peek-rear"
	VerbAppend    Verb = "append"
	VerbRead      Verb = "read"
	VerbUpdate    Verb = "update"
	VerbDelete    Verb = "delete"
	VerbShow      Verb = "show"
	VerbUse       Verb = "use"
	VerbHistory   Verb = "history"
	VerbStats     Verb = "stats"
	VerbHelp      Verb = "help"
)

type verbSpec struct {
	argc  int
	usage string
}

var verbSpecs = map[Verb]verbSpec{
	VerbEnqueue:   {1, "enqueue N       insert N into the active queue"},
	VerbDequeue:   {0, "dequeue         remove the front element"},
	VerbPeek:      {0, "peek            show the front element"},
	VerbPushFront: {1, "push-front N    insert N at the front of a deque"},
	VerbPopRear:   {0, "pop-rear        remove the rear element of a deque"},
	VerbPeekRear:  {0, "peek-rear       show the rear element of a deque"},
	VerbAppend:    {1, "append N        append N to a linked list"},
	VerbRead:      {1, "read P          show the element at position P"},
	VerbUpdate:    {2, "update P N      replace the element at position P with N"},
	VerbDelete:    {1, "delete P        remove the element at position P"},
	VerbShow:      {0, "show            render the active structure"},
	VerbUse:       {-1, "use KIND [CAP]  switch to an empty structure of another kind"},
	VerbHistory:   {0, "history         list the commands of this session"},
	VerbStats:     {0, "stats           count the executed and failed commands"},
	VerbHelp:      {0, "help            print this message"},
}

var verbOrder = []Verb{
	VerbEnqueue, VerbDequeue, VerbPeek, VerbPushFront, VerbPopRear, VerbPeekRear,
	VerbAppend, VerbRead, VerbUpdate, VerbDelete, VerbShow, VerbUse, VerbHistory, VerbStats, VerbHelp,
}

var verbAliases = map[string]Verb{
	"add":         VerbEnqueue,
	"offer":       VerbEnqueue,
	"push-rear":   VerbEnqueue,
	"remove":      VerbDequeue,
	"poll":        VerbDequeue,
	"front":       VerbPeek,
	"add-front":   VerbPushFront,
	"remove-rear": VerbPopRear,
	"rear":        VerbPeekRear,
	"print":       VerbShow,
	"ls":          VerbShow,
	"switch":      VerbUse,
	"?":           VerbHelp,
}

// Command is a parsed command line.
type Command struct {
	Verb Verb
	Args []int32
	// Kind and Capacity are only set for VerbUse. A zero Capacity means
	// the configured default.
	Kind     string
	Capacity int
	Line     string
}

// ParseCommand parses one line of input, e.g. "enqueue 5" or "use circular 3".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, errors.ErrUnknownCommand.GenWithStackByArgs(`""`)
	}

	name := strings.ToLower(fields[0])
	verb, ok := verbAliases[name]
	if !ok {
		verb = Verb(name)
	}
	spec, ok := verbSpecs[verb]
	if !ok {
		return Command{}, errors.ErrUnknownCommand.GenWithStackByArgs(fields[0])
	}

	cmd := Command{Verb: verb, Line: strings.Join(fields, " ")}
	args := fields[1:]
	if verb == VerbUse {
		return parseUse(cmd, args)
	}
	if len(args) != spec.argc {
		return Command{}, errors.ErrCommandArgs.GenWithStackByArgs(verb, spec.argc, len(args))
	}
	for _, arg := range args {
		v, err := parseInt32(arg)
		if err != nil {
			return Command{}, err
		}
		cmd.Args = append(cmd.Args, v)
	}
	return cmd, nil
}

// parseUse accepts multi word kinds like "use Priority Queue" and an
// optional trailing capacity.
func parseUse(cmd Command, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, errors.ErrCommandArgs.GenWithStackByArgs(VerbUse, 1, 0)
	}
	if len(args) > 1 {
		last := args[len(args)-1]
		if capacity, err := strconv.Atoi(last); err == nil {
			if err := queue.ValidateCapacity(capacity); err != nil {
				return Command{}, err
			}
			cmd.Capacity = capacity
			args = args[:len(args)-1]
		} else if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return Command{}, errors.ErrInvalidInput.GenWithStackByArgs(last)
		}
	}
	cmd.Kind = strings.Join(args, " ")
	return cmd, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.ErrInvalidInput.GenWithStackByArgs(s)
	}
	return int32(v), nil
}

// Usage returns the help text listing every verb.
func Usage() string {
	var sb strings.Builder
	sb.WriteString("commands:\n")
	for _, verb := range verbOrder {
		sb.WriteString("  ")
		sb.WriteString(verbSpecs[verb].usage)
		sb.WriteString("\n")
	}
	sb.WriteString("  exit            leave the session\n")
	sb.WriteString("kinds: ")
	sb.WriteString(strings.Join(StructureNames(), ", "))
	return sb.String()
}
