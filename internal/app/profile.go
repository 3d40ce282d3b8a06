package app

import (
	"github.com/pkg/profile"

	"github.com/agbru/sumbench/internal/logging"
)

// profileModes maps --profile values to pkg/profile modes.
var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"block": profile.BlockProfile,
	"mutex": profile.MutexProfile,
	"trace": profile.TraceProfile,
}

type stopper interface{ Stop() }

type noopStopper struct{}

func (noopStopper) Stop() {}

// startProfile starts the profile selected by mode, writing into dir. Signal
// handling stays with the application, so the profile is only flushed by
// the returned Stop.
func startProfile(mode, dir string, logger logging.Logger) stopper {
	m, ok := profileModes[mode]
	if !ok {
		return noopStopper{}
	}
	logger.Info("profiling enabled", logging.String("mode", mode), logging.String("dir", dir))
	return profile.Start(m, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
}
