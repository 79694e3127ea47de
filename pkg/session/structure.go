package session

import (
	"strings"

	"github.com/hanfei1991/queuelab/pkg/list"
	"github.com/hanfei1991/queuelab/pkg/queue"
)

// Structure is the data structure a session operates on: a queue
// variant or a linked list.
type Structure interface {
	Len() int
	Values() []int32
	String() string
}

// Factory creates an empty structure by name. capacity only matters for
// circular queues.
type Factory func(name string, capacity int) (Structure, error)

// Names of the list structures. Queue kinds are named by queue.Kind.
const (
	NameList  = "list"
	NameDList = "dlist"
)

// NewStructure is the default Factory.
func NewStructure(name string, capacity int) (Structure, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameList, "linked list", "singly":
		return list.New(list.Singly), nil
	case NameDList, "doubly linked list", "doubly":
		return list.New(list.Doubly), nil
	}

	kind, err := queue.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return queue.New(kind, capacity)
}

// StructureNames lists every name NewStructure accepts in its short form.
func StructureNames() []string {
	names := make([]string, 0, len(queue.Kinds())+2)
	for _, k := range queue.Kinds() {
		names = append(names, string(k))
	}
	return append(names, NameList, NameDList)
}

func nameOf(s Structure) string {
	switch v := s.(type) {
	case queue.Queue:
		return string(v.Kind())
	case *list.List:
		if v.Style() == list.Doubly {
			return NameDList
		}
		return NameList
	default:
		return "unknown"
	}
}

func labelOf(s Structure) string {
	switch v := s.(type) {
	case queue.Queue:
		return v.Kind().Label()
	case *list.List:
		return v.Style().Label()
	default:
		return "unknown"
	}
}
