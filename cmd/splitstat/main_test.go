package main

import (
	"encoding/json"
	"github.com/rfutils/splitstat"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
	"math"
	"os"
	"path"
	"testing"
)

func writeNpy(t *testing.T, fileName string, m *mat.Dense) {
	f, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { splitstat.HandleError(f.Close()) }()

	if err := npyio.Write(f, m); err != nil {
		t.Fatal(err)
	}
}

func TestEvaluateSurvivalFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := EvalConfig{
		Family:             "survival",
		FileNameMembership: path.Join(dir, "membership.npy"),
		FileNameTime:       path.Join(dir, "time.npy"),
		FileNameEvent:      path.Join(dir, "event.npy"),
	}
	writeNpy(t, cfg.FileNameMembership, mat.NewDense(4, 1, []float64{1, 2, 1, 2}))
	writeNpy(t, cfg.FileNameTime, mat.NewDense(4, 1, []float64{1, 2, 3, 4}))
	writeNpy(t, cfg.FileNameEvent, mat.NewDense(4, 1, []float64{1, 0, 1, 1}))

	srcConfig := path.Join(dir, "eval.json")
	raw, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(srcConfig, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	var decoded EvalConfig
	decodeConfig(srcConfig, &decoded)
	if decoded.Family != "survival" || decoded.FileNameTime != cfg.FileNameTime {
		t.Fatalf("config did not round-trip: %+v", decoded)
	}

	node := buildNode(decoded)
	if node.EventTypeSize != 1 || len(node.EventTime) != 3 {
		t.Fatalf("wrong node aggregates: %d causes, grid %v", node.EventTypeSize, node.EventTime)
	}

	fn, ok := splitstat.Lookup(families[decoded.Family], 1)
	if !ok {
		t.Fatal("survival statistic not registered")
	}
	if delta := fn(node); math.Abs(delta-math.Sqrt2) > 1e-9 {
		t.Errorf("wrong end-to-end statistic %v, expected %v", delta, math.Sqrt2)
	}
}
