package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hanfei1991/queuelab/pkg/autoid"
	"github.com/hanfei1991/queuelab/pkg/config"
	qerrors "github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/queue"
	"github.com/hanfei1991/queuelab/pkg/session"
)

// Step is the observable outcome of one script line on one queue kind.
type Step struct {
	Line string
	// Output is the returned value, "ok", or the error class.
	Output string
	Values []int32
}

// Transcript is the outcome of a whole script on one queue kind.
type Transcript struct {
	Kind  queue.Kind
	Steps []Step
}

// Divergence is the first step where a kind behaved differently from
// the baseline kind.
type Divergence struct {
	Step         int
	Line         string
	BaselineKind queue.Kind
	Baseline     Step
	Kind         queue.Kind
	Got          Step
}

func (d Divergence) String() string {
	return fmt.Sprintf("step %d %q: %s gave %s %v, %s gave %s %v",
		d.Step+1, d.Line, d.BaselineKind, d.Baseline.Output, d.Baseline.Values, d.Kind, d.Got.Output, d.Got.Values)
}

// Report holds the transcripts of every kind, in the order requested,
// and the divergences from the first kind.
type Report struct {
	Transcripts []Transcript
	Divergences []Divergence
}

// Equivalent reports whether every kind behaved like the first one.
func (r *Report) Equivalent() bool {
	return len(r.Divergences) == 0
}

var allowedVerbs = map[session.Verb]struct{}{
	session.VerbEnqueue: {},
	session.VerbDequeue: {},
	session.VerbPeek:    {},
	session.VerbShow:    {},
}

// Run executes script against a private queue of every kind
// concurrently and compares the observable behaviour with kinds[0].
func Run(ctx context.Context, cfg *config.Config, script []string, kinds []queue.Kind) (*Report, error) {
	if len(kinds) < 2 {
		return nil, qerrors.ErrCompareNoKinds.GenWithStackByArgs(len(kinds))
	}
	commands, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	transcripts := make([]Transcript, len(kinds))
	ids := autoid.NewSequenceAllocator("compare")
	g, gCtx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			t, err := runOne(gCtx, cfg, ids, kind, commands)
			if err != nil {
				return err
			}
			transcripts[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Trace(err)
	}

	report := &Report{Transcripts: transcripts}
	baseline := transcripts[0]
	for _, t := range transcripts[1:] {
		for i := range baseline.Steps {
			if !sameStep(baseline.Steps[i], t.Steps[i]) {
				report.Divergences = append(report.Divergences, Divergence{
					Step:         i,
					Line:         baseline.Steps[i].Line,
					BaselineKind: baseline.Kind,
					Baseline:     baseline.Steps[i],
					Kind:         t.Kind,
					Got:          t.Steps[i],
				})
				break
			}
		}
	}
	log.L().Info("compare finished",
		zap.Int("steps", len(commands)),
		zap.Int("kinds", len(kinds)),
		zap.Int("divergences", len(report.Divergences)))
	return report, nil
}

func parseScript(script []string) ([]session.Command, error) {
	commands := make([]session.Command, 0, len(script))
	for _, line := range script {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := session.ParseCommand(line)
		if err != nil {
			return nil, err
		}
		if _, ok := allowedVerbs[cmd.Verb]; !ok {
			return nil, qerrors.ErrUnsupportedOperation.GenWithStackByArgs("compare", string(cmd.Verb))
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

func runOne(
	ctx context.Context, cfg *config.Config, ids *autoid.SequenceAllocator,
	kind queue.Kind, commands []session.Command,
) (Transcript, error) {
	kindCfg := *cfg
	kindCfg.DefaultKind = string(kind)
	kindCfg.HistorySize = 0

	s, err := session.New(&kindCfg, session.WithIDAllocator(ids))
	if err != nil {
		return Transcript{}, err
	}
	defer s.Close()

	t := Transcript{Kind: kind, Steps: make([]Step, 0, len(commands))}
	for _, cmd := range commands {
		step := Step{Line: cmd.Line}
		res, err := s.Execute(ctx, cmd)
		switch {
		case err == nil && res.HasValue:
			step.Output = fmt.Sprintf("%d", res.Value)
		case err == nil:
			step.Output = "ok"
		case qerrors.IsEmpty(err):
			step.Output = "empty"
		case qerrors.ErrQueueFull.Equal(err):
			step.Output = "full"
		case ctx.Err() != nil:
			return Transcript{}, errors.Trace(ctx.Err())
		default:
			return Transcript{}, err
		}
		step.Values = s.Values()
		t.Steps = append(t.Steps, step)
	}
	return t, nil
}

func sameStep(a, b Step) bool {
	if a.Output != b.Output || len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	return true
}
