package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	subjects, err := LoadAll(Embedded(), Catalog)
	require.NoError(t, err)
	require.Len(t, subjects, len(Catalog))

	for i, s := range subjects {
		assert.Equal(t, Catalog[i].Ticker, s.Ticker)
		assert.Equal(t, Catalog[i].Timeline, s.Timeline.Shape)
		assert.NotEmpty(t, s.Filings, s.Ticker)
		assert.Positive(t, s.Timeline.Len(), s.Ticker)
	}
}

func TestDecodeTimelineByDeclaredShape(t *testing.T) {
	raw := []byte(`
ticker: TEST
timeline:
  - date: "2025-01-01"
    title: Guidance cut
    impact: bearish
    notes: Lower volumes
    changes:
      - {metric: Revenue, previous: "10", new: "8", change: "-20%"}
`)
	s, err := Decode(SubjectSpec{Ticker: "TEST", Timeline: ShapeRevision}, raw)
	require.NoError(t, err)
	require.Len(t, s.Timeline.Revision, 1)
	assert.Empty(t, s.Timeline.Flat)
	assert.Equal(t, "Revenue", s.Timeline.Revision[0].Changes[0].Metric)
	assert.Equal(t, "-20%", s.Timeline.Revision[0].Changes[0].Change)
}

func TestDecodeRejectsTickerMismatch(t *testing.T) {
	_, err := Decode(SubjectSpec{Ticker: "ASTS", File: "x.yaml", Timeline: ShapeFlat}, []byte("ticker: BMNR\n"))
	assert.Error(t, err)
}

func TestDecodeWithoutTimeline(t *testing.T) {
	s, err := Decode(SubjectSpec{Ticker: "TEST", Timeline: ShapeSourced}, []byte("filings: []\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Timeline.Len())
}

func TestFSSourceMissingFile(t *testing.T) {
	src := &FSSource{FS: fstest.MapFS{}, Dir: "data"}
	_, err := src.Load(SubjectSpec{Ticker: "NONE", File: "none.yaml"})
	assert.Error(t, err)
}

func TestSelectSpecs(t *testing.T) {
	all, err := SelectSpecs(Catalog, nil)
	require.NoError(t, err)
	assert.Equal(t, Catalog, all)

	some, err := SelectSpecs(Catalog, []string{"crcl", "ASTS"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "ASTS", some[0].Ticker)
	assert.Equal(t, "CRCL", some[1].Ticker)

	_, err = SelectSpecs(Catalog, []string{"TSLA"})
	assert.Error(t, err)
}
