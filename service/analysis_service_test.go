package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"casetriage-backend/agent"
	"casetriage-backend/classifier"
	"casetriage-backend/models"
	"casetriage-backend/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return "SCORE: 60\nREASONING: solid basis", nil
}

type fixedClassifier struct {
	flags classifier.Flags
}

func (c fixedClassifier) Classify(ctx context.Context, text string) (classifier.Flags, error) {
	return c.flags, nil
}

func TestAnalyzeCaseSync(t *testing.T) {
	pipeline := agent.NewPipeline(
		fixedGenerator{},
		agent.WithClassifier(fixedClassifier{flags: classifier.Flags{EmploymentLaw: true}}),
	)
	svc := NewAnalysisService(WithPipeline(pipeline))

	result, err := svc.AnalyzeCase(context.Background(), AnalyzeCaseRequest{
		Input: models.CaseInput{Text: "My employer withheld my salary."},
	})
	if err != nil {
		t.Fatalf("AnalyzeCase returned error: %v", err)
	}
	if result.Output.Category != "Arbeitsrecht" {
		t.Errorf("category = %q", result.Output.Category)
	}
	if result.Output.LikelihoodWin == nil {
		t.Error("expected a likelihood for a supported category")
	}
}

func TestAnalyzeCaseRequiresPipeline(t *testing.T) {
	svc := NewAnalysisService()
	if _, err := svc.AnalyzeCase(context.Background(), AnalyzeCaseRequest{}); !errors.Is(err, ErrPipelineNotSet) {
		t.Fatalf("expected ErrPipelineNotSet, got %v", err)
	}
}

func TestStartAnalysisRequiresJobRepository(t *testing.T) {
	svc := NewAnalysisService(WithPipeline(agent.NewPipeline(fixedGenerator{})))
	_, err := svc.StartAnalysis(context.Background(), StartAnalysisRequest{
		Input: models.CaseInput{Text: "some case"},
	})
	if !errors.Is(err, ErrJobRepositoryNotSet) {
		t.Fatalf("expected ErrJobRepositoryNotSet, got %v", err)
	}
}

func TestArchiveReportRoundTrip(t *testing.T) {
	archive, err := storage.NewLocalArchive(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	svc := NewAnalysisService(WithReportArchive(archive))

	likelihood := "60%"
	output := &models.AgentOutput{
		Category:        "Arbeitsrecht",
		LikelihoodWin:   &likelihood,
		Explanation:     "baseline applied",
		SourceDocuments: []models.Doc{},
	}

	jobID := uuid.New()
	path := svc.archiveReport(context.Background(), jobID, output)
	if path == "" {
		t.Fatal("expected an archive path")
	}

	reader, err := archive.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to open archived report: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("failed to read archived report: %v", err)
	}

	var restored models.AgentOutput
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("archived report is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(output, &restored); diff != "" {
		t.Errorf("archived report mismatch (-want +got):\n%s", diff)
	}
}

func TestPendingStepsCoverAllStages(t *testing.T) {
	steps := pendingSteps()
	if len(steps) != len(agent.Stages) {
		t.Fatalf("got %d steps, want %d", len(steps), len(agent.Stages))
	}
	for i, step := range steps {
		if step.Name != agent.Stages[i] {
			t.Errorf("step %d = %q, want %q", i, step.Name, agent.Stages[i])
		}
		if step.Status != "pending" {
			t.Errorf("step %q status = %q, want pending", step.Name, step.Status)
		}
	}
}
