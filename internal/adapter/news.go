package adapter

import (
	"strings"

	"ResearchSync/internal/content"
	"ResearchSync/internal/model"
)

func AdaptPartnerNews(ticker string, items []content.PartnerNews) []*model.EntityNewsRecord {
	rows := make([]*model.EntityNewsRecord, 0, len(items))
	for _, n := range items {
		rows = append(rows, &model.EntityNewsRecord{
			Ticker:        ticker,
			Date:          n.Date,
			EntityName:    n.Partner,
			Category:      n.Category,
			Headline:      n.Headline,
			Summary:       n.Summary,
			RelevanceText: optional(n.AstsRelevance),
			Impact:        n.Impact,
			Source:        optional(n.Source),
			URL:           optional(n.URL),
			EntryType:     model.EntryPartnerNews,
		})
	}
	return rows
}

// AdaptCompetitorNews details[] 换行拼接为 summary，implication 作为 impact
func AdaptCompetitorNews(ticker string, items []content.CompetitorNews) []*model.EntityNewsRecord {
	rows := make([]*model.EntityNewsRecord, 0, len(items))
	for _, n := range items {
		rows = append(rows, &model.EntityNewsRecord{
			Ticker:        ticker,
			Date:          n.Date,
			EntityName:    n.Competitor,
			Category:      n.Category,
			Headline:      n.Headline,
			Summary:       strings.Join(n.Details, "\n"),
			RelevanceText: optional(n.ThesisComparison),
			Impact:        n.Implication,
			Source:        optional(n.Source),
			URL:           optional(n.URL),
			EntryType:     model.EntryCompetitorNews,
		})
	}
	return rows
}

func AdaptEthereumAdoption(ticker string, items []content.EthereumAdoption) []*model.EntityNewsRecord {
	rows := make([]*model.EntityNewsRecord, 0, len(items))
	for _, n := range items {
		rows = append(rows, &model.EntityNewsRecord{
			Ticker:        ticker,
			Date:          n.Date,
			EntityName:    n.Company,
			Category:      n.Category,
			Headline:      n.Title,
			Summary:       n.Summary,
			RelevanceText: optional(n.BmnrImplication),
			Impact:        n.Impact,
			Source:        optional(n.Source),
			URL:           optional(n.URL),
			EntryType:     model.EntryEthereumAdoption,
		})
	}
	return rows
}
