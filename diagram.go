package splitstat

import (
	"fmt"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"strings"
)

//SplitReport summarizes one evaluated candidate split for rendering.
type SplitReport struct {
	Statistic float64
	NodeSize  int
	LeftSize  int
	RghtSize  int
}

//NewSplitReport collects the daughter sizes and the statistic value of an
//evaluated node.
func NewSplitReport(node NodeData, statistic float64) SplitReport {
	report := SplitReport{Statistic: statistic, NodeSize: node.validatedLength()}
	report.LeftSize, report.RghtSize = node.daughterSizes()
	return report
}

//parentDescription returns the parent label for diagram rendering.
func (report SplitReport) parentDescription() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintln("#", report.NodeSize))
	sb.WriteString(fmt.Sprintf("statistic: %6.5f", report.Statistic))
	return sb.String()
}

//daughterDescription returns a daughter label for diagram rendering.
func (report SplitReport) daughterDescription(tag string, size int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintln(tag))
	sb.WriteString(fmt.Sprintf("# %d", size))
	return sb.String()
}

//DrawSplit renders the parent node with its two daughters and the statistic
//value as a graph.
func (report SplitReport) DrawSplit() (*graphviz.Graphviz, *cgraph.Graph) {
	graphViz := graphviz.New()
	graph, err := graphViz.Graph()
	HandleError(err)

	parent, err := graph.CreateNode("parent")
	HandleError(err)
	parent.Set("label", report.parentDescription())

	left, err := graph.CreateNode("left")
	HandleError(err)
	left.Set("label", report.daughterDescription("LEFT", report.LeftSize))
	left.Set("shape", "box")
	graph.CreateEdge("", parent, left)

	right, err := graph.CreateNode("right")
	HandleError(err)
	right.Set("label", report.daughterDescription("RIGHT", report.RghtSize))
	right.Set("shape", "box")
	graph.CreateEdge("", parent, right)

	return graphViz, graph
}
