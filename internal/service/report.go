package service

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ResearchSync/internal/model"
	"ResearchSync/internal/validation"
)

// Phase 单个标的重建所处阶段
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseClearing  Phase = "clearing"
	PhaseLoading   Phase = "loading"
	PhaseReporting Phase = "reporting"
	PhaseFailed    Phase = "failed"
)

// SubjectReport 单个标的的结果；成功时 Phase 回到 idle
type SubjectReport struct {
	Ticker      string                 `json:"ticker"`
	Phase       Phase                  `json:"phase"`
	FailedPhase Phase                  `json:"failed_phase,omitempty"` // 失败发生时所处阶段
	Counts      map[string]int         `json:"counts"`
	Rows        int                    `json:"rows"`
	Warnings    []validation.Warning   `json:"warnings,omitempty"`
	Violations  []validation.Violation `json:"violations,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// Report 一次重建的汇总：按标的、按表的行数与总数
type Report struct {
	RunID      string                    `json:"run_id"`
	Trigger    string                    `json:"trigger"`
	StartedAt  time.Time                 `json:"started_at"`
	FinishedAt time.Time                 `json:"finished_at"`
	Subjects   []SubjectReport           `json:"subjects"`
	Counts     map[string]map[string]int `json:"counts"` // 每个标的一项，失败的标的各表为 0
	Total      int                       `json:"total"`
	Failed     int                       `json:"failed"`
}

func (r *Report) add(sr SubjectReport) {
	r.Subjects = append(r.Subjects, sr)
	if sr.Phase == PhaseFailed {
		r.Failed++
		r.Counts[sr.Ticker] = zeroCounts()
		return
	}
	r.Counts[sr.Ticker] = sr.Counts
	r.Total += sr.Rows
}

func zeroCounts() map[string]int {
	counts := make(map[string]int, len(model.TableOrder))
	for _, table := range model.TableOrder {
		counts[table] = 0
	}
	return counts
}

// WriteSummary 输出人可读的汇总表，表的顺序固定为 model.TableOrder
func (r *Report) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "TICKER")
	for _, table := range model.TableOrder {
		fmt.Fprintf(tw, "\t%s", table)
	}
	fmt.Fprint(tw, "\tTOTAL\n")

	for _, s := range r.Subjects {
		fmt.Fprint(tw, s.Ticker)
		if s.Phase == PhaseFailed {
			fmt.Fprintf(tw, "\tFAILED (%s): %s\n", s.FailedPhase, s.Error)
			continue
		}
		for _, table := range model.TableOrder {
			fmt.Fprintf(tw, "\t%d", s.Counts[table])
		}
		fmt.Fprintf(tw, "\t%d\n", s.Rows)
	}
	fmt.Fprintf(tw, "ALL")
	for range model.TableOrder {
		fmt.Fprint(tw, "\t")
	}
	fmt.Fprintf(tw, "\t%d\n", r.Total)
	return tw.Flush()
}
