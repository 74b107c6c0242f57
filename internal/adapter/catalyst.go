package adapter

import (
	"ResearchSync/internal/content"
	"ResearchSync/internal/model"
)

// AdaptCatalysts 合并两类输入：active 行有 timeline/impact 无完成日期，completed 行相反
func AdaptCatalysts(ticker string, upcoming []content.UpcomingCatalyst, completed []content.CompletedCatalyst) []*model.Catalyst {
	rows := make([]*model.Catalyst, 0, len(upcoming)+len(completed))
	for _, u := range upcoming {
		rows = append(rows, &model.Catalyst{
			Ticker:   ticker,
			Event:    u.Event,
			Timeline: required(u.Timeline),
			Impact:   required(u.Impact),
			Category: optional(u.Category),
			Status:   model.CatalystActive,
		})
	}
	for _, c := range completed {
		rows = append(rows, &model.Catalyst{
			Ticker:         ticker,
			Event:          c.Event,
			Category:       optional(c.Category),
			Status:         model.CatalystCompleted,
			CompletionDate: required(c.Date),
		})
	}
	return rows
}
