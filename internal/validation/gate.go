// Package validation 在加载前校验竞争对手新闻：结构错误阻断整批，词表不匹配只给出提示。
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ResearchSync/internal/content"
)

//go:embed schema/competitor_news.schema.json
var competitorNewsSchema []byte

const competitorNewsSchemaURL = "https://researchsync.local/schemas/competitor_news.schema.json"

// Violation 一处结构错误，Path 为 JSON Pointer（如 /2/implication）
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Warning 一条词表提示，不阻断加载
type Warning struct {
	Path    string `json:"path"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Result 校验结果
type Result struct {
	Ticker     string      `json:"ticker"`
	Records    int         `json:"records"`
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations,omitempty"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

func (r *Result) WarningCount() int { return len(r.Warnings) }

// Err 未通过时返回 *StructuralError
func (r *Result) Err() error {
	if r.Passed {
		return nil
	}
	return &StructuralError{Ticker: r.Ticker, Violations: r.Violations}
}

// StructuralError 结构校验失败，整批拒绝
type StructuralError struct {
	Ticker     string
	Violations []Violation
}

func (e *StructuralError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return fmt.Sprintf("%s竞争对手新闻结构校验失败（%d处）: %s", e.Ticker, len(e.Violations), strings.Join(parts, "; "))
}

// Gate 持有编译好的 schema，可复用
type Gate struct {
	schema *jsonschema.Schema
}

func NewGate() (*Gate, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(competitorNewsSchemaURL, bytes.NewReader(competitorNewsSchema)); err != nil {
		return nil, fmt.Errorf("加载校验schema失败: %w", err)
	}
	compiled, err := c.Compile(competitorNewsSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("编译校验schema失败: %w", err)
	}
	return &Gate{schema: compiled}, nil
}

// CheckCompetitorNews 先做结构校验；通过后才做词表校验
func (g *Gate) CheckCompetitorNews(ticker string, records []content.CompetitorNews, vocab content.Vocabulary) *Result {
	res := &Result{Ticker: ticker, Records: len(records)}

	res.Violations = g.structural(records)
	if len(res.Violations) > 0 {
		return res
	}
	res.Passed = true

	entities := toSet(vocab.Entities)
	categories := toSet(vocab.Categories)
	for i, r := range records {
		if !entities[r.Competitor] {
			res.Warnings = append(res.Warnings, Warning{
				Path:    fmt.Sprintf("/%d/competitor", i),
				Field:   "competitor",
				Value:   r.Competitor,
				Message: fmt.Sprintf("竞争对手%q未登记", r.Competitor),
			})
		}
		if !categories[r.Category] {
			res.Warnings = append(res.Warnings, Warning{
				Path:    fmt.Sprintf("/%d/category", i),
				Field:   "category",
				Value:   r.Category,
				Message: fmt.Sprintf("分类%q未登记", r.Category),
			})
		}
	}
	return res
}

func (g *Gate) structural(records []content.CompetitorNews) []Violation {
	if records == nil {
		records = []content.CompetitorNews{}
	}
	// schema 校验的是 JSON 形态
	raw, err := json.Marshal(records)
	if err != nil {
		return []Violation{{Path: "", Message: err.Error()}}
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []Violation{{Path: "", Message: err.Error()}}
	}

	err = g.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Violation{{Path: "", Message: err.Error()}}
	}
	var out []Violation
	collectLeaves(ve, &out)
	return out
}

// collectLeaves 只报告最底层原因，路径与消息一一对应
func collectLeaves(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{Path: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
