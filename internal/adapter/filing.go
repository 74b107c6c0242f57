package adapter

import (
	"sort"

	"ResearchSync/internal/content"
	"ResearchSync/internal/model"
)

// AdaptFilings 可选字段缺省时写入空串而不是 NULL
func AdaptFilings(ticker string, filings []content.Filing) []*model.SecFiling {
	rows := make([]*model.SecFiling, 0, len(filings))
	for _, f := range filings {
		rows = append(rows, &model.SecFiling{
			Ticker:          ticker,
			Date:            f.Date,
			Type:            f.Type,
			Description:     f.Description,
			Period:          f.Period,
			Color:           f.Color,
			AccessionNumber: f.AccessionNumber,
		})
	}
	return rows
}

// AdaptCrossReferences 按 (key, entry) 展平；空列表不产生行。key 按字典序遍历以保证输出稳定
func AdaptCrossReferences(ticker string, refs map[string][]content.CrossRefEntry) []*model.FilingCrossReference {
	keys := make([]string, 0, len(refs))
	total := 0
	for k, entries := range refs {
		keys = append(keys, k)
		total += len(entries)
	}
	sort.Strings(keys)

	rows := make([]*model.FilingCrossReference, 0, total)
	for _, k := range keys {
		for _, e := range refs[k] {
			rows = append(rows, &model.FilingCrossReference{
				Ticker:    ticker,
				FilingKey: k,
				Source:    e.Source,
				Data:      e.Data,
			})
		}
	}
	return rows
}
