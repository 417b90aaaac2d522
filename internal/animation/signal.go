package animation

import "context"

// StopSignal is polled once per tick. Stopped must not block.
type StopSignal interface {
	Stopped() bool
}

// StopFunc adapts a function to StopSignal.
type StopFunc func() bool

func (f StopFunc) Stopped() bool { return f() }

// ContextSignal fires once ctx is done.
func ContextSignal(ctx context.Context) StopSignal {
	return StopFunc(func() bool { return ctx.Err() != nil })
}

// TickLimit lets n polls pass and fires on every poll after that.
func TickLimit(n int) StopSignal {
	return &tickLimit{remaining: n}
}

type tickLimit struct{ remaining int }

func (t *tickLimit) Stopped() bool {
	if t.remaining <= 0 {
		return true
	}
	t.remaining--
	return false
}

// AnyOf fires when any of signals fires. Nil entries are skipped.
func AnyOf(signals ...StopSignal) StopSignal {
	return StopFunc(func() bool {
		for _, s := range signals {
			if s != nil && s.Stopped() {
				return true
			}
		}
		return false
	})
}
