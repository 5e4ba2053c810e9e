// Package observe defines the narrow contract core components hold on the
// observability sink. The sink is write-only: components emit results and
// findings as a side channel and never read it back or branch on its state.
package observe

// Logger accepts the two message classes the pipeline produces, plus
// warnings for degraded-but-defined conditions (salvage-parsed lines,
// unmapped abjad runes).
type Logger interface {
	Result(msg string, args ...any)
	Notable(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nop struct{}

func (nop) Result(string, ...any)  {}
func (nop) Notable(string, ...any) {}
func (nop) Warn(string, ...any)    {}

// Nop returns a Logger that drops everything.
func Nop() Logger { return nop{} }

// OrNop returns l, or a no-op Logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nop{}
	}
	return l
}
