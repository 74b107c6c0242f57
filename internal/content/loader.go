package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// subjectFile YAML 文件结构；timeline 先保留为节点，按登记的结构再解码
type subjectFile struct {
	Ticker           string                     `yaml:"ticker"`
	Filings          []Filing                   `yaml:"filings"`
	CrossReferences  map[string][]CrossRefEntry `yaml:"cross_references"`
	Timeline         yaml.Node                  `yaml:"timeline"`
	Catalysts        Catalysts                  `yaml:"catalysts"`
	PartnerNews      []PartnerNews              `yaml:"partner_news"`
	CompetitorNews   []CompetitorNews           `yaml:"competitor_news"`
	EthereumAdoption []EthereumAdoption         `yaml:"ethereum_adoption"`
	Vocabulary       Vocabulary                 `yaml:"vocabulary"`
}

// Source 提供标的内容
type Source interface {
	Load(spec SubjectSpec) (*Subject, error)
}

// FSSource 从文件系统读取 YAML 内容，Dir 为文件所在目录
type FSSource struct {
	FS  fs.FS
	Dir string
}

// Embedded 程序内嵌的内容
func Embedded() *FSSource {
	return &FSSource{FS: embedded, Dir: "data"}
}

// Load 读取并解码一个标的
func (s *FSSource) Load(spec SubjectSpec) (*Subject, error) {
	raw, err := fs.ReadFile(s.FS, path.Join(s.Dir, spec.File))
	if err != nil {
		return nil, fmt.Errorf("读取%s内容失败: %w", spec.Ticker, err)
	}
	return Decode(spec, raw)
}

// Decode 按登记信息解码单个标的的 YAML
func Decode(spec SubjectSpec, raw []byte) (*Subject, error) {
	var f subjectFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("解析%s内容失败: %w", spec.Ticker, err)
	}
	if f.Ticker != "" && f.Ticker != spec.Ticker {
		return nil, fmt.Errorf("内容文件%s的ticker为%s，与登记的%s不一致", spec.File, f.Ticker, spec.Ticker)
	}

	timeline, err := decodeTimeline(spec.Timeline, &f.Timeline)
	if err != nil {
		return nil, fmt.Errorf("解析%s时间线失败: %w", spec.Ticker, err)
	}

	return &Subject{
		Ticker:           spec.Ticker,
		Filings:          f.Filings,
		CrossReferences:  f.CrossReferences,
		Timeline:         timeline,
		Catalysts:        f.Catalysts,
		PartnerNews:      f.PartnerNews,
		CompetitorNews:   f.CompetitorNews,
		EthereumAdoption: f.EthereumAdoption,
		Vocabulary:       f.Vocabulary,
	}, nil
}

func decodeTimeline(shape TimelineShape, node *yaml.Node) (Timeline, error) {
	tl := Timeline{Shape: shape}
	// 未写 timeline 字段
	if node.Kind == 0 {
		return tl, nil
	}
	var err error
	switch shape {
	case ShapeFlat:
		err = node.Decode(&tl.Flat)
	case ShapeSourced:
		err = node.Decode(&tl.Sourced)
	case ShapeRevision:
		err = node.Decode(&tl.Revision)
	default:
		err = fmt.Errorf("未知的时间线结构: %q", shape)
	}
	return tl, err
}

// LoadAll 按登记顺序加载
func LoadAll(src Source, specs []SubjectSpec) ([]*Subject, error) {
	subjects := make([]*Subject, 0, len(specs))
	for _, spec := range specs {
		s, err := src.Load(spec)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}
