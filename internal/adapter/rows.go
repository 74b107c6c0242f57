package adapter

import (
	"ResearchSync/internal/content"
	"ResearchSync/internal/model"
)

// SubjectRows 单个标的转换后的全部行，按表分组
type SubjectRows struct {
	Filings         []*model.SecFiling
	CrossReferences []*model.FilingCrossReference
	Timeline        []*model.TimelineEvent
	Catalysts       []*model.Catalyst
	EntityNews      []*model.EntityNewsRecord
}

// BuildSubjectRows 对一个标的运行全部适配器；三类新闻并入同一张表，顺序为合作方、竞争对手、以太坊采用
func BuildSubjectRows(s *content.Subject) SubjectRows {
	news := AdaptPartnerNews(s.Ticker, s.PartnerNews)
	news = append(news, AdaptCompetitorNews(s.Ticker, s.CompetitorNews)...)
	news = append(news, AdaptEthereumAdoption(s.Ticker, s.EthereumAdoption)...)

	return SubjectRows{
		Filings:         AdaptFilings(s.Ticker, s.Filings),
		CrossReferences: AdaptCrossReferences(s.Ticker, s.CrossReferences),
		Timeline:        AdaptTimeline(s.Ticker, s.Timeline),
		Catalysts:       AdaptCatalysts(s.Ticker, s.Catalysts.Upcoming, s.Catalysts.Completed),
		EntityNews:      news,
	}
}

// Counts 各表行数，键为表名
func (r SubjectRows) Counts() map[string]int {
	return map[string]int{
		model.TableSecFilings:            len(r.Filings),
		model.TableFilingCrossReferences: len(r.CrossReferences),
		model.TableTimelineEvents:        len(r.Timeline),
		model.TableCatalysts:             len(r.Catalysts),
		model.TableEntityNewsRecords:     len(r.EntityNews),
	}
}
