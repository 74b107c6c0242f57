package content

import (
	"fmt"
	"strings"
)

// SubjectSpec 标的登记信息：内容文件与时间线结构在编译期固定
type SubjectSpec struct {
	Ticker   string
	File     string
	Timeline TimelineShape
}

// Catalog 已跟踪标的，顺序即重建顺序
var Catalog = []SubjectSpec{
	{Ticker: "ASTS", File: "asts.yaml", Timeline: ShapeFlat},
	{Ticker: "BMNR", File: "bmnr.yaml", Timeline: ShapeSourced},
	{Ticker: "CRCL", File: "crcl.yaml", Timeline: ShapeRevision},
}

// SelectSpecs 按 ticker 过滤登记表，tickers 为空时返回全部；未登记的 ticker 报错
func SelectSpecs(specs []SubjectSpec, tickers []string) ([]SubjectSpec, error) {
	if len(tickers) == 0 {
		return specs, nil
	}
	byTicker := make(map[string]SubjectSpec, len(specs))
	for _, s := range specs {
		byTicker[s.Ticker] = s
	}
	wanted := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		t = strings.ToUpper(strings.TrimSpace(t))
		if _, ok := byTicker[t]; !ok {
			return nil, fmt.Errorf("未登记的标的: %s", t)
		}
		wanted[t] = true
	}
	// 保持登记表顺序
	selected := make([]SubjectSpec, 0, len(wanted))
	for _, s := range specs {
		if wanted[s.Ticker] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}
