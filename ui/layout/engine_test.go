package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHideHeuristic(t *testing.T) {
	t.Run("expanded map hides alerts and smallstack", func(t *testing.T) {
		e := NewEngine()
		r := e.Compute(map[string]bool{WidgetMap: true}, 1300, nil)

		assert.Equal(t, []string{WidgetAlerts, WidgetSmallStack}, r.HiddenWidgets)
		assert.False(t, r.Placed(WidgetAlerts))
		assert.False(t, r.Placed(WidgetSmallStack))
		assert.Len(t, r.AreaMap, 8)
	})

	t.Run("expanded map plus expanded brackets hides nothing", func(t *testing.T) {
		e := NewEngine()
		r := e.Compute(map[string]bool{WidgetMap: true, WidgetBrackets: true}, 1300, nil)

		assert.Empty(t, r.HiddenWidgets)
		assert.Len(t, r.AreaMap, 10)
		assert.True(t, r.Placed(WidgetAlerts))
		assert.True(t, r.Placed(WidgetSmallStack))
	})
}

func TestComputeAbsentWidgets(t *testing.T) {
	e := NewEngine()
	r := e.Compute(nil, 1300, []string{WidgetMap, "ghost"})

	assert.False(t, r.Placed(WidgetMap))
	assert.NotContains(t, r.HiddenWidgets, WidgetMap, "absent is not hidden")
	assert.Len(t, r.AreaMap, 9)
}

func TestComputeIgnoresUnknownExpansionIDs(t *testing.T) {
	e := NewEngine()
	r1 := e.Compute(map[string]bool{}, 1300, nil)
	r2 := e.Compute(map[string]bool{"ghost": true}, 1300, nil)

	// Unknown IDs do not change the canonical key, so this is a cache hit.
	assert.Same(t, r1, r2)
}

func TestComputeWidensGridForMinFloor(t *testing.T) {
	// At xs every widget is forced to one column, but brackets, models, map,
	// and discussion declare two-column floors; the grid widens rather than
	// shrinking them.
	e := NewEngine()
	r := e.Compute(nil, 400, nil)

	assert.Equal(t, BreakpointXS, r.Breakpoint)
	assert.Equal(t, 2, r.TotalCols)
	assert.Len(t, r.AreaMap, 10)
}

func TestComputeColumnCeiling(t *testing.T) {
	e := NewEngine()
	for _, width := range []int{320, 480, 600, 900, 1300} {
		r := e.Compute(map[string]bool{WidgetBrackets: true, WidgetDiscussion: true}, width, nil)
		for i, row := range r.Grid.AreaTemplate {
			assert.Len(t, row, r.TotalCols, "width %d row %d", width, i)
		}
	}
}

func TestComputeTrimInvariant(t *testing.T) {
	e := NewEngine()
	for _, width := range []int{400, 600, 900, 1300, 2000} {
		r := e.Compute(map[string]bool{WidgetModels: true}, width, nil)
		require.Equal(t, r.TotalRows, len(r.Grid.AreaTemplate), "width %d", width)
		if r.TotalRows > 0 {
			assert.False(t, rowEmpty(r.Grid.AreaTemplate[r.TotalRows-1]),
				"width %d: trailing row must be occupied", width)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	// Two independent engines, no shared cache: byte-identical templates.
	state := map[string]bool{WidgetMap: true, WidgetNearby: true}
	r1 := NewEngine().Compute(state, 900, nil)
	r2 := NewEngine().Compute(state, 900, nil)

	assert.Equal(t, r1.Grid.AreaTemplate, r2.Grid.AreaTemplate)
	assert.Equal(t, r1.Grid.TemplateString(), r2.Grid.TemplateString())
	assert.Equal(t, r1.AreaMap, r2.AreaMap)
	assert.Equal(t, r1.HiddenWidgets, r2.HiddenWidgets)
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	expanded := map[string]bool{WidgetMap: true, WidgetAlerts: false}
	absent := []string{WidgetRounding}

	NewEngine().Compute(expanded, 1300, absent)

	assert.Equal(t, map[string]bool{WidgetMap: true, WidgetAlerts: false}, expanded)
	assert.Equal(t, []string{WidgetRounding}, absent)
}

func TestComputeEmptyCatalog(t *testing.T) {
	e := NewEngine(WithCatalog(nil))
	r := e.Compute(map[string]bool{WidgetMap: true}, 1300, nil)

	assert.Empty(t, r.AreaMap)
	assert.Empty(t, r.HiddenWidgets)
	assert.Equal(t, 0, r.TotalRows)
	assert.Equal(t, 4, r.TotalCols)
}

func TestTemplateString(t *testing.T) {
	g := GridStyles{
		Columns: 2,
		Rows:    2,
		AreaTemplate: [][]string{
			{"a", "a"},
			{"b", EmptyCell},
		},
	}
	assert.Equal(t, "\"a a\"\n\"b .\"", g.TemplateString())
}

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalog(DefaultCatalog()))

	tests := []struct {
		name    string
		catalog []WidgetConstraint
	}{
		{
			name:    "empty id",
			catalog: []WidgetConstraint{{Min: Size{1, 1}, Collapsed: Size{1, 1}, Expanded: Size{1, 1}}},
		},
		{
			name: "duplicate id",
			catalog: []WidgetConstraint{
				{ID: "x", Min: Size{1, 1}, Collapsed: Size{1, 1}, Expanded: Size{1, 1}},
				{ID: "x", Min: Size{1, 1}, Collapsed: Size{1, 1}, Expanded: Size{1, 1}},
			},
		},
		{
			name:    "zero min",
			catalog: []WidgetConstraint{{ID: "x", Collapsed: Size{1, 1}, Expanded: Size{1, 1}}},
		},
		{
			name:    "collapsed below min",
			catalog: []WidgetConstraint{{ID: "x", Min: Size{2, 2}, Collapsed: Size{1, 1}, Expanded: Size{2, 2}}},
		},
		{
			name:    "expanded below collapsed",
			catalog: []WidgetConstraint{{ID: "x", Min: Size{1, 1}, Collapsed: Size{2, 2}, Expanded: Size{1, 1}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateCatalog(tt.catalog))
		})
	}
}
