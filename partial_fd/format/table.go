package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"rds-pfd/partial_fd/core"
	"rds-pfd/partial_fd/search"
)

// RenderDependencies 依赖列表打成表格，同一个rhs的行合并
func RenderDependencies(w io.Writer, dependencies []search.Dependency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("PARTIAL FUNCTIONAL DEPENDENCIES")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "RHS", Align: text.AlignCenter, AlignHeader: text.AlignCenter, AutoMerge: true},
		{Name: "LHS", AlignHeader: text.AlignCenter, WidthMax: 70},
		{Name: "G1", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "SCORE", Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	t.AppendHeader(table.Row{"RHS", "LHS", "G1", "SCORE"})
	for _, dependency := range dependencies {
		t.AppendRow(table.Row{
			dependency.Rhs.Name(),
			dependency.Lhs.String(),
			fmt.Sprintf("%.6f", dependency.Error),
			fmt.Sprintf("%.6f", dependency.Score),
		})
	}
	t.AppendFooter(table.Row{"", "TOTAL", len(dependencies), ""})
	t.Render()
}

// RenderProfiling 计数器打成表格
func RenderProfiling(w io.Writer, snapshot core.ProfilingSnapshot) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("PROFILING")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Item", AlignHeader: text.AlignCenter, WidthMin: 20},
		{Name: "Count", Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Name: "Time", Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})
	t.AppendHeader(table.Row{"Item", "Count", "Time"})
	t.AppendRow(table.Row{"exact error", snapshot.NumErrorCalculations, time.Duration(snapshot.ErrorCalculationNanos).String()})
	t.AppendRow(table.Row{"error estimation", snapshot.NumErrorEstimations, time.Duration(snapshot.ErrorEstimationNanos).String()})
	t.AppendRow(table.Row{"pli intersection", snapshot.NumPliIntersections, time.Duration(snapshot.PliIntersectionNanos).String()})
	t.AppendRow(table.Row{"agree set sample", snapshot.NumSamplesCreated, time.Duration(snapshot.SampleCreationNanos).String()})
	t.AppendSeparator()
	t.AppendRow(table.Row{"dependencies", snapshot.NumDependencies, "/"})
	t.AppendRow(table.Row{"average lhs arity", fmt.Sprintf("%.2f", averageArity(snapshot)), "/"})
	t.Render()
}

func averageArity(snapshot core.ProfilingSnapshot) float64 {
	if snapshot.NumDependencies == 0 {
		return 0
	}
	return float64(snapshot.DependencyArity) / float64(snapshot.NumDependencies)
}
