package tracing

import (
	"time"
)

// ReportExecutionForRE runs action and hands report a logger annotated with
// the elapsed time and the measured duration.
func ReportExecutionForRE[R any](log *Logger, action func() (R, error), report func(l *Logger, elapsed time.Duration, result R, err error)) (R, error) {
	start := time.Now()
	result, err := action()
	elapsed := time.Since(start)
	report(log.With(ExecutionTime, elapsed.String()), elapsed, result, err)
	return result, err
}

func ReportExecutionForR[R any](log *Logger, action func() R, report func(l *Logger)) R {
	start, result := time.Now(), action()
	report(log.With(ExecutionTime, time.Since(start).String()))
	return result
}
