package adapter

import (
	"fmt"
	"strings"

	"ResearchSync/internal/content"
	"ResearchSync/internal/model"
)

// AdaptTimeline 按标的登记的结构分派到对应变体
func AdaptTimeline(ticker string, tl content.Timeline) []*model.TimelineEvent {
	switch tl.Shape {
	case content.ShapeFlat:
		return AdaptFlatTimeline(ticker, tl.Flat)
	case content.ShapeSourced:
		return AdaptSourcedTimeline(ticker, tl.Sourced)
	case content.ShapeRevision:
		return AdaptRevisionTimeline(ticker, tl.Revision)
	default:
		return []*model.TimelineEvent{}
	}
}

// AdaptFlatTimeline 变体A：字段一一对应，verdict 原样保留
func AdaptFlatTimeline(ticker string, events []content.FlatTimelineEvent) []*model.TimelineEvent {
	rows := make([]*model.TimelineEvent, 0, len(events))
	for _, e := range events {
		rows = append(rows, &model.TimelineEvent{
			Ticker:   ticker,
			Date:     e.Date,
			Category: e.Category,
			Event:    e.Event,
			Impact:   e.Impact,
			Verdict:  e.Verdict,
			Source:   e.Source,
			Details:  e.Details,
			URL:      optional(e.URL),
		})
	}
	return rows
}

// AdaptSourcedTimeline 变体B：details = summary + details[]，sources 用", "拼接
func AdaptSourcedTimeline(ticker string, events []content.SourcedTimelineEvent) []*model.TimelineEvent {
	rows := make([]*model.TimelineEvent, 0, len(events))
	for _, e := range events {
		parts := append([]string{e.Summary}, e.Details...)
		rows = append(rows, &model.TimelineEvent{
			Ticker:   ticker,
			Date:     e.Date,
			Category: e.Category,
			Event:    e.Title,
			Impact:   e.Impact,
			Verdict:  DeriveVerdict(e.Impact),
			Source:   strings.Join(e.Sources, ", "),
			Details:  joinNonEmpty("\n", parts...),
			URL:      optional(e.URL),
		})
	}
	return rows
}

// AdaptRevisionTimeline 变体C：details = notes + 指标修订行
func AdaptRevisionTimeline(ticker string, events []content.RevisionTimelineEvent) []*model.TimelineEvent {
	rows := make([]*model.TimelineEvent, 0, len(events))
	for _, e := range events {
		rows = append(rows, &model.TimelineEvent{
			Ticker:   ticker,
			Date:     e.Date,
			Category: e.Category,
			Event:    e.Title,
			Impact:   e.Impact,
			Verdict:  DeriveVerdict(e.Impact),
			Source:   e.Source,
			Details:  joinNonEmpty("\n", e.Notes, renderChanges(e.Changes)),
			URL:      optional(e.URL),
		})
	}
	return rows
}

// renderChanges 每项一行：metric: previous → new (change)
func renderChanges(changes []content.MetricChange) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("%s: %s → %s (%s)", c.Metric, c.Previous, c.New, c.Change))
	}
	return strings.Join(lines, "\n")
}
