package expansion

import (
	"autotable/sources/metrics"
	"autotable/sources/texting/titles"
	"autotable/sources/texting/transform"
	"autotable/sources/tracing"
	"time"
)

// Outcome is the result of expanding one title. Err is set when the title
// could not be classified or expanded; Indices is nil in that case.
type Outcome struct {
	Title   string
	Pattern titles.Pattern
	Indices []string
	Err     error
}

type Summary struct {
	Titles  int
	Failed  int
	Indices int
}

type Expander struct {
	log     *tracing.Logger
	metrics *metrics.MetricsService
	config  *ExpanderConfig
}

func NewExpander(log *tracing.Logger, metrics *metrics.MetricsService, config *ExpanderConfig) *Expander {
	return &Expander{log: log, metrics: metrics, config: config}
}

func (x *Expander) Expand(raw string) ([]string, error) {
	outcome := x.ExpandOne(raw)
	return outcome.Indices, outcome.Err
}

func (x *Expander) ExpandOne(raw string) Outcome {
	log := x.log.With(tracing.TitleContent, transform.SmartTruncate(raw, x.config.MaxLoggedTitle))
	outcome := Outcome{Title: raw}

	title, err := titles.NewWithOptions(raw, x.config.Options)
	if err != nil {
		return x.fail(log, outcome, err)
	}

	outcome.Pattern = title.Pattern()
	x.metrics.RecordClassified(outcome.Pattern.String())

	indices, err := tracing.ReportExecutionForRE(log, title.Expand, func(l *tracing.Logger, elapsed time.Duration, indices []string, err error) {
		x.metrics.RecordExpansionDuration(elapsed)
		if err == nil {
			l.D("Title expanded", tracing.TitlePattern, outcome.Pattern.String(), tracing.IndicesCount, len(indices))
		}
	})
	if err != nil {
		return x.fail(log, outcome, err)
	}

	outcome.Indices = indices
	x.metrics.RecordExpanded(len(indices))
	return outcome
}

// ExpandAll expands every title on its own; a failing title never affects
// the others.
func (x *Expander) ExpandAll(raws []string) []Outcome {
	defer tracing.ProfilePoint(x.log, "Titles batch expanded", "expansion.expand_all", tracing.TitlesCount, len(raws))()

	outcomes := make([]Outcome, 0, len(raws))
	for _, raw := range raws {
		outcomes = append(outcomes, x.ExpandOne(raw))
	}

	summary := Summarize(outcomes)
	if summary.Failed > 0 {
		x.log.W("Some titles could not be expanded", tracing.TitlesCount, summary.Titles, tracing.FailedCount, summary.Failed, tracing.IndicesCount, summary.Indices)
	} else {
		x.log.I("All titles expanded", tracing.TitlesCount, summary.Titles, tracing.IndicesCount, summary.Indices)
	}

	return outcomes
}

func (x *Expander) fail(log *tracing.Logger, outcome Outcome, err error) Outcome {
	reason := titles.Reason(err)
	log.W("Title could not be expanded", tracing.TitlePattern, outcome.Pattern.String(), tracing.TitleReason, reason, tracing.InnerError, err)
	x.metrics.RecordFailed(reason)

	outcome.Err = err
	return outcome
}

func Summarize(outcomes []Outcome) Summary {
	summary := Summary{Titles: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			summary.Failed++
			continue
		}
		summary.Indices += len(outcome.Indices)
	}
	return summary
}
