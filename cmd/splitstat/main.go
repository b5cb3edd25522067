package main

import (
	"encoding/json"
	"flag"
	"github.com/goccy/go-graphviz"
	"github.com/rfutils/splitstat"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
	"log"
	"os"
)

//EvalConfig names the inputs of one statistic evaluation.  The
//per-observation arrays arrive as .npy files of shape n or n x 1; the
//feature file, when present, is featureCount x n.  Membership uses 1 for
//LEFT and anything else for RIGHT.
type EvalConfig struct {
	Family             string `json:"family"`
	Slot               int    `json:"slot"`
	FileNameMembership string `json:"filename_membership"`
	FileNameTime       string `json:"filename_time"`
	FileNameEvent      string `json:"filename_event"`
	FileNameResponse   string `json:"filename_response"`
	FileNameFeature    string `json:"filename_feature"`
	FileNameDiagram    string `json:"filename_diagram"`
}

var families = map[string]splitstat.Family{
	"regression":     splitstat.Regression,
	"classification": splitstat.Classification,
	"survival":       splitstat.Survival,
	"competing_risk": splitstat.CompetingRisk,
}

func decodeConfig(srcConfig string, out interface{}) {
	file, err := os.Open(srcConfig)
	splitstat.HandleError(err)
	defer func() { splitstat.HandleError(file.Close()) }()

	decoder := json.NewDecoder(file)
	splitstat.HandleError(decoder.Decode(out))
}

//readNpy reads the content of a npy file
func readNpy(fileName string) (denseMat *mat.Dense) {
	f, err := os.Open(fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { splitstat.HandleError(f.Close()) }()

	r, err := npyio.NewReader(f)
	if err != nil {
		log.Fatal(err)
	}

	denseMat = &mat.Dense{}
	splitstat.HandleError(r.Read(denseMat))
	return
}

//readColumn flattens an n or n x 1 npy array into a float slice.
func readColumn(fileName string) []float64 {
	m := readNpy(fileName)
	h, w := m.Dims()
	values := make([]float64, 0, h*w)
	for p := 0; p < h; p++ {
		for q := 0; q < w; q++ {
			values = append(values, m.At(p, q))
		}
	}
	return values
}

//buildNode loads the configured arrays and fills in the convenience
//aggregates the statistics expect from the host.
func buildNode(cfg EvalConfig) splitstat.NodeData {
	var node splitstat.NodeData

	for _, value := range readColumn(cfg.FileNameMembership) {
		if int(value) == 1 {
			node.Membership = append(node.Membership, splitstat.Left)
		} else {
			node.Membership = append(node.Membership, splitstat.Right)
		}
	}

	if cfg.FileNameTime != "" {
		node.Time = readColumn(cfg.FileNameTime)
		node.Event = readColumn(cfg.FileNameEvent)
		node.EventTime = splitstat.EventTimeGrid(node.Time, node.Event)
		node.EventTypeSize = splitstat.EventTypeCount(node.Event)
	}

	if cfg.FileNameResponse != "" {
		node.Response = readColumn(cfg.FileNameResponse)
		node.Mean = splitstat.ResponseMean(node.Response)
		node.Variance = splitstat.ResponseVariance(node.Response)
		node.MaxLevel = splitstat.MaxClassLevel(node.Response)
	}

	if cfg.FileNameFeature != "" {
		node.Feature = readNpy(cfg.FileNameFeature)
	}

	return node
}

func main() {
	srcConfig := flag.String("config", "", "path to the json evaluation config")
	flag.Parse()

	if *srcConfig == "" {
		log.Fatal("an evaluation config is required")
	}

	var cfg EvalConfig
	decodeConfig(*srcConfig, &cfg)

	family, ok := families[cfg.Family]
	if !ok {
		log.Fatal("unknown statistic family <", cfg.Family, ">")
	}
	slot := cfg.Slot
	if slot == 0 {
		slot = 1
	}

	fn, ok := splitstat.Lookup(family, slot)
	if !ok {
		log.Fatalf("no statistic registered for family %s slot %d", cfg.Family, slot)
	}

	node := buildNode(cfg)
	delta := fn(node)
	log.Print("split statistic = ", delta)

	if cfg.FileNameDiagram != "" {
		report := splitstat.NewSplitReport(node, delta)
		graphViz, graph := report.DrawSplit()
		splitstat.HandleError(graphViz.RenderFilename(graph, graphviz.SVG, cfg.FileNameDiagram))
	}
}
