package generation

import (
	"fmt"
	"strings"

	"floorgen/ecs"
)

// Step is one transformation of the shared map context.
// A non-nil error aborts the run; the context is then discarded by the caller.
type Step interface {
	Apply(ctx *MapContext) error
}

// StepFunc adapts a function to the Step interface
type StepFunc func(ctx *MapContext) error

func (f StepFunc) Apply(ctx *MapContext) error { return f(ctx) }

// StepAppliedEventType is emitted on the context's world after each step
const StepAppliedEventType ecs.EventType = "step_applied"

// StepAppliedEvent reports a completed step
type StepAppliedEvent struct {
	Index int
	Name  string
}

func (StepAppliedEvent) Type() ecs.EventType { return StepAppliedEventType }

// RunPipeline applies steps in order on the calling goroutine and stops at the first error
func RunPipeline(steps []Step, ctx *MapContext) error {
	for i, step := range steps {
		name := StepName(step)
		if err := step.Apply(ctx); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, name, err)
		}
		ctx.Log.Debug("step applied", "index", i, "step", name)
		ctx.World.EmitEvent(StepAppliedEvent{Index: i, Name: name})
	}
	return nil
}

// StepName returns a short type name for logs
func StepName(step Step) string {
	name := fmt.Sprintf("%T", step)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
