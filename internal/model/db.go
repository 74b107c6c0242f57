package model

// 研究数据派生表：每行只属于一个 ticker，按 ticker 整体清空重建，不做 update

type SecFiling struct {
	ID              uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Ticker          string `gorm:"column:ticker;type:varchar(16);index;not null;comment:标的代码"`
	Date            string `gorm:"column:date;type:varchar(32);not null;comment:披露日期（展示用字符串）"`
	Type            string `gorm:"column:type;type:varchar(32);not null;comment:文件类型，如10-K/8-K"`
	Description     string `gorm:"column:description;type:text;not null;comment:描述"`
	Period          string `gorm:"column:period;type:varchar(64);not null;comment:报告期"`
	Color           string `gorm:"column:color;type:varchar(32);not null;default:'';comment:展示颜色标签"`
	AccessionNumber string `gorm:"column:accession_number;type:varchar(64);not null;default:'';comment:SEC accession 编号"`
}

type FilingCrossReference struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Ticker    string `gorm:"column:ticker;type:varchar(16);index;not null;comment:标的代码"`
	FilingKey string `gorm:"column:filing_key;type:varchar(64);index;not null;comment:文件分组键（非外键）"`
	Source    string `gorm:"column:source;type:varchar(128);not null;comment:来源标签"`
	Data      string `gorm:"column:data;type:text;not null;comment:数据文本"`
}

type TimelineEvent struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Ticker   string  `gorm:"column:ticker;type:varchar(16);index;not null;comment:标的代码"`
	Date     string  `gorm:"column:date;type:varchar(32);not null;comment:日期"`
	Category string  `gorm:"column:category;type:varchar(64);not null;comment:分类"`
	Event    string  `gorm:"column:event;type:text;not null;comment:事件标题"`
	Impact   string  `gorm:"column:impact;type:varchar(32);not null;comment:原始影响标签"`
	Verdict  string  `gorm:"column:verdict;type:varchar(16);not null;comment:归一化结论：positive/negative/mixed/neutral"`
	Source   string  `gorm:"column:source;type:text;not null;comment:来源（可能为逗号拼接）"`
	Details  string  `gorm:"column:details;type:text;not null;comment:详情（换行拼接）"`
	URL      *string `gorm:"column:url;type:text;comment:链接"`
}

type Catalyst struct {
	ID             uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Ticker         string  `gorm:"column:ticker;type:varchar(16);index;not null;comment:标的代码"`
	Event          string  `gorm:"column:event;type:text;not null;comment:催化事件"`
	Timeline       *string `gorm:"column:timeline;type:varchar(64);comment:预期时间（仅active）"`
	Impact         *string `gorm:"column:impact;type:varchar(32);comment:影响（仅active）"`
	Category       *string `gorm:"column:category;type:varchar(64);comment:分类"`
	Status         string  `gorm:"column:status;type:varchar(16);not null;comment:状态：active/completed"`
	CompletionDate *string `gorm:"column:completion_date;type:varchar(32);comment:完成日期（仅completed）"`
}

type EntityNewsRecord struct {
	ID            uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	Ticker        string  `gorm:"column:ticker;type:varchar(16);index;not null;comment:标的代码"`
	Date          string  `gorm:"column:date;type:varchar(32);not null;comment:日期"`
	EntityName    string  `gorm:"column:entity_name;type:varchar(128);not null;comment:合作方/竞争对手/公司名称"`
	Category      string  `gorm:"column:category;type:varchar(64);not null;comment:分类"`
	Headline      string  `gorm:"column:headline;type:text;not null;comment:标题"`
	Summary       string  `gorm:"column:summary;type:text;not null;comment:摘要"`
	RelevanceText *string `gorm:"column:relevance_text;type:text;comment:与本标的的关联/对比"`
	Impact        string  `gorm:"column:impact;type:varchar(32);not null;comment:影响"`
	Source        *string `gorm:"column:source;type:varchar(256);comment:来源"`
	URL           *string `gorm:"column:url;type:text;comment:链接"`
	EntryType     string  `gorm:"column:entry_type;type:varchar(32);index;not null;comment:来源类型：partner_news/competitor_news/ethereum_adoption"`
}

func (SecFiling) TableName() string            { return "sec_filings" }
func (FilingCrossReference) TableName() string { return "filing_cross_references" }
func (TimelineEvent) TableName() string        { return "timeline_events" }
func (Catalyst) TableName() string             { return "catalysts" }
func (EntityNewsRecord) TableName() string     { return "entity_news_records" }

const (
	TableSecFilings            = "sec_filings"
	TableFilingCrossReferences = "filing_cross_references"
	TableTimelineEvents        = "timeline_events"
	TableCatalysts             = "catalysts"
	TableEntityNewsRecords     = "entity_news_records"
)

// TableOrder 清空与加载共用的固定顺序（交叉引用在文件之后）
var TableOrder = []string{
	TableSecFilings,
	TableFilingCrossReferences,
	TableTimelineEvents,
	TableCatalysts,
	TableEntityNewsRecords,
}

const (
	VerdictPositive = "positive"
	VerdictNegative = "negative"
	VerdictMixed    = "mixed"
	VerdictNeutral  = "neutral"

	CatalystActive    = "active"
	CatalystCompleted = "completed"

	EntryPartnerNews      = "partner_news"
	EntryCompetitorNews   = "competitor_news"
	EntryEthereumAdoption = "ethereum_adoption"
)

// Models 迁移用的全部模型，顺序与 TableOrder 一致，末尾为运行记录
func Models() []interface{} {
	return []interface{}{
		&SecFiling{},
		&FilingCrossReference{},
		&TimelineEvent{},
		&Catalyst{},
		&EntityNewsRecord{},
		&ReconcileRun{},
	}
}
