package core

// Cue is a named, fire-and-forget audio event emitted by a simulation.
type Cue string

const (
	CueLaser      Cue = "laser"
	CueEnemyLaser Cue = "enemyLaser"
	CueThrust     Cue = "thrust"
	CueExplosion  Cue = "explosion"
)

// Cues lists every cue a simulation can emit.
var Cues = []Cue{CueLaser, CueEnemyLaser, CueThrust, CueExplosion}

// CueSink receives cues during a tick. Implementations must not block;
// playback policy (overlap, failures) is entirely theirs.
type CueSink interface {
	Emit(cue Cue)
}

// CueSinkFunc adapts a function to CueSink.
type CueSinkFunc func(Cue)

// Emit calls f(cue).
func (f CueSinkFunc) Emit(cue Cue) { f(cue) }

// Discard is a CueSink that drops everything.
var Discard CueSink = CueSinkFunc(func(Cue) {})

// MultiSink fans a cue out to several sinks in order.
func MultiSink(sinks ...CueSink) CueSink {
	return CueSinkFunc(func(c Cue) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(c)
			}
		}
	})
}
