package sentiment

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDataset(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testPipelineConfig(t *testing.T) PipelineConfig {
	dir := t.TempDir()

	var train strings.Builder
	train.WriteString("sentiment,id,date,query,user,tweet\n")
	// "sunshine" appears in 15 positive tweets: 15*5 - 15 = 60.
	for i := 0; i < 15; i++ {
		train.WriteString("4,1,d,q,u,sunshine everywhere\n")
	}
	train.WriteString("0,2,d,q,u,gloomy rain\n")

	return PipelineConfig{
		TrainPath: writeDataset(t, dir, "train.csv", train.String()),
		TestPath: writeDataset(t, dir, "test.csv", "id,date,query,user,tweet\n"+
			"1,d,q,u,more sunshine please\n"+
			"2,d,q,u,gloomy rain again\n"+
			"3,d,q,u,sunshine\n"),
		TruthPath: writeDataset(t, dir, "truth.csv", "sentiment,id\n4,1\n0,2\n0,3\n"),
		Reader:    DefaultReaderConfig(),
		Weights:   DefaultWeights(),
		Labels:    DefaultLabels(),
		Threshold: DefaultThreshold,
		TopWords:  2,
	}
}

func TestPipelineRun(t *testing.T) {
	var out bytes.Buffer
	p := NewPipeline(testPipelineConfig(t), newTestTokenizer(), nil, &out)

	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Training.Records != 16 || res.Training.Vocabulary != 4 {
		t.Errorf("training metrics = %+v", res.Training)
	}
	if res.TestRecords != 3 || res.Predictions != 3 {
		t.Errorf("test records = %d, predictions = %d", res.TestRecords, res.Predictions)
	}
	if res.Report.Correct != 2 || res.Report.Total != 3 {
		t.Errorf("report = %+v", res.Report)
	}

	for _, want := range []string{"Read 16 training tweets", "Vocabulary size: 4", "Accuracy: 66.67%", "sunshine", "Time to execute"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPipelineStopsAtFirstFailure(t *testing.T) {
	config := testPipelineConfig(t)
	config.TrainPath = filepath.Join(t.TempDir(), "missing.csv")

	var out bytes.Buffer
	_, err := NewPipeline(config, newTestTokenizer(), nil, &out).Run()

	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("Run error = %v, want *DataSourceError", err)
	}
	if strings.Contains(out.String(), "test tweets") {
		t.Errorf("prediction ran after training failed:\n%s", out.String())
	}
}

func TestPipelineEmptyTestSet(t *testing.T) {
	config := testPipelineConfig(t)
	config.TestPath = writeDataset(t, t.TempDir(), "empty.csv", "id,date,query,user,tweet\n")

	_, err := NewPipeline(config, newTestTokenizer(), nil, nil).Run()
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Run error = %v, want ErrEmptyInput", err)
	}
}

func TestPipelineEmptyTrainingAndTruth(t *testing.T) {
	config := testPipelineConfig(t)
	dir := t.TempDir()
	config.TrainPath = writeDataset(t, dir, "train.csv", "sentiment,id,date,query,user,tweet\n")
	config.TruthPath = writeDataset(t, dir, "truth.csv", "sentiment,id\n")

	res, err := NewPipeline(config, newTestTokenizer(), nil, nil).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Training.Records != 0 || res.Training.Vocabulary != 0 {
		t.Errorf("training metrics = %+v, want empty", res.Training)
	}
	if res.Report.Accuracy != 0 || res.Report.Unmatched != 3 || res.Report.Total != 3 {
		t.Errorf("report = %+v, want 0%% with every prediction unmatched", res.Report)
	}
}
