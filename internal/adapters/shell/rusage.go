package shell

import (
	"syscall"
	"time"

	"go.trai.ch/bsh/internal/core/domain"
)

func usageFromRusage(ru *syscall.Rusage, wall time.Duration) domain.ResourceUsage {
	return domain.ResourceUsage{
		WallClock:           wall,
		CPUTime:             time.Duration(ru.Utime.Nano() + ru.Stime.Nano()),
		VoluntarySwitches:   int64(ru.Nvcsw),  //nolint:unconvert // int32 on some platforms
		InvoluntarySwitches: int64(ru.Nivcsw), //nolint:unconvert // int32 on some platforms
		MajorFaults:         int64(ru.Majflt), //nolint:unconvert // int32 on some platforms
		MinorFaults:         int64(ru.Minflt), //nolint:unconvert // int32 on some platforms
	}
}
