// Package content 定义各标的研究内容的源结构（按标的独立演进），并从内嵌 YAML 加载。
// 源内容是只追加的记录：历史条目不删除，派生表由重建任务整体替换。
package content

// Filing SEC 文件（各标的结构一致）
type Filing struct {
	Date            string `yaml:"date" json:"date"`
	Type            string `yaml:"type" json:"type"`
	Description     string `yaml:"description" json:"description"`
	Period          string `yaml:"period" json:"period"`
	Color           string `yaml:"color,omitempty" json:"color,omitempty"`
	AccessionNumber string `yaml:"accessionNumber,omitempty" json:"accessionNumber,omitempty"`
}

// CrossRefEntry 某个文件分组键下的一条交叉引用
type CrossRefEntry struct {
	Source string `yaml:"source" json:"source"`
	Data   string `yaml:"data" json:"data"`
}

// TimelineShape 时间线源结构变体，每个标的固定一种
type TimelineShape string

const (
	ShapeFlat     TimelineShape = "flat"     // category/event/impact/source/verdict/details
	ShapeSourced  TimelineShape = "sourced"  // title/summary/details[]/sources[]
	ShapeRevision TimelineShape = "revision" // title/changes[]/notes
)

// FlatTimelineEvent 变体A：verdict 已在源头归一化
type FlatTimelineEvent struct {
	Date     string `yaml:"date" json:"date"`
	Category string `yaml:"category" json:"category"`
	Event    string `yaml:"event" json:"event"`
	Impact   string `yaml:"impact" json:"impact"`
	Source   string `yaml:"source" json:"source"`
	Verdict  string `yaml:"verdict" json:"verdict"`
	Details  string `yaml:"details" json:"details"`
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
}

// SourcedTimelineEvent 变体B：无 verdict，需由 impact 推导
type SourcedTimelineEvent struct {
	Date     string   `yaml:"date" json:"date"`
	Category string   `yaml:"category" json:"category"`
	Title    string   `yaml:"title" json:"title"`
	Impact   string   `yaml:"impact,omitempty" json:"impact,omitempty"`
	Summary  string   `yaml:"summary" json:"summary"`
	Details  []string `yaml:"details,omitempty" json:"details,omitempty"`
	Sources  []string `yaml:"sources,omitempty" json:"sources,omitempty"`
	URL      string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// MetricChange 变体C中的一项指标修订
type MetricChange struct {
	Metric   string `yaml:"metric" json:"metric"`
	Previous string `yaml:"previous" json:"previous"`
	New      string `yaml:"new" json:"new"`
	Change   string `yaml:"change" json:"change"`
}

// RevisionTimelineEvent 变体C：指标修订 + 备注
type RevisionTimelineEvent struct {
	Date     string         `yaml:"date" json:"date"`
	Category string         `yaml:"category" json:"category"`
	Title    string         `yaml:"title" json:"title"`
	Impact   string         `yaml:"impact,omitempty" json:"impact,omitempty"`
	Source   string         `yaml:"source,omitempty" json:"source,omitempty"`
	Notes    string         `yaml:"notes,omitempty" json:"notes,omitempty"`
	Changes  []MetricChange `yaml:"changes,omitempty" json:"changes,omitempty"`
	URL      string         `yaml:"url,omitempty" json:"url,omitempty"`
}

// Timeline 按 Shape 标记的时间线，只有与 Shape 对应的切片有值
type Timeline struct {
	Shape    TimelineShape
	Flat     []FlatTimelineEvent
	Sourced  []SourcedTimelineEvent
	Revision []RevisionTimelineEvent
}

// Len 时间线条目数
func (t Timeline) Len() int {
	switch t.Shape {
	case ShapeFlat:
		return len(t.Flat)
	case ShapeSourced:
		return len(t.Sourced)
	case ShapeRevision:
		return len(t.Revision)
	default:
		return 0
	}
}

type UpcomingCatalyst struct {
	Event    string `yaml:"event" json:"event"`
	Timeline string `yaml:"timeline" json:"timeline"`
	Impact   string `yaml:"impact" json:"impact"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

type CompletedCatalyst struct {
	Event    string `yaml:"event" json:"event"`
	Date     string `yaml:"date" json:"date"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Catalysts 待发生与已完成两类催化剂
type Catalysts struct {
	Upcoming  []UpcomingCatalyst  `yaml:"upcoming,omitempty"`
	Completed []CompletedCatalyst `yaml:"completed,omitempty"`
}

type PartnerNews struct {
	Date          string `yaml:"date" json:"date"`
	Partner       string `yaml:"partner" json:"partner"`
	Category      string `yaml:"category" json:"category"`
	Headline      string `yaml:"headline" json:"headline"`
	Summary       string `yaml:"summary" json:"summary"`
	AstsRelevance string `yaml:"astsRelevance,omitempty" json:"astsRelevance,omitempty"`
	Impact        string `yaml:"impact" json:"impact"`
	Source        string `yaml:"source,omitempty" json:"source,omitempty"`
	URL           string `yaml:"url,omitempty" json:"url,omitempty"`
}

type CompetitorNews struct {
	Date             string   `yaml:"date" json:"date"`
	Competitor       string   `yaml:"competitor" json:"competitor"`
	Category         string   `yaml:"category" json:"category"`
	Headline         string   `yaml:"headline" json:"headline"`
	Details          []string `yaml:"details,omitempty" json:"details,omitempty"`
	ThesisComparison string   `yaml:"thesisComparison,omitempty" json:"thesisComparison,omitempty"`
	Implication      string   `yaml:"implication" json:"implication"`
	Source           string   `yaml:"source,omitempty" json:"source,omitempty"`
	URL              string   `yaml:"url,omitempty" json:"url,omitempty"`
}

type EthereumAdoption struct {
	Date            string `yaml:"date" json:"date"`
	Company         string `yaml:"company" json:"company"`
	Category        string `yaml:"category" json:"category"`
	Title           string `yaml:"title" json:"title"`
	Summary         string `yaml:"summary" json:"summary"`
	BmnrImplication string `yaml:"bmnrImplication,omitempty" json:"bmnrImplication,omitempty"`
	Impact          string `yaml:"impact" json:"impact"`
	Source          string `yaml:"source,omitempty" json:"source,omitempty"`
	URL             string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Vocabulary 每个标的已登记的实体与分类，用于提示性校验
type Vocabulary struct {
	Entities   []string `yaml:"entities,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// Subject 单个标的的全部源内容
type Subject struct {
	Ticker           string
	Filings          []Filing
	CrossReferences  map[string][]CrossRefEntry
	Timeline         Timeline
	Catalysts        Catalysts
	PartnerNews      []PartnerNews
	CompetitorNews   []CompetitorNews
	EthereumAdoption []EthereumAdoption
	Vocabulary       Vocabulary
}
