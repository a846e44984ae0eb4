package rules_test

import (
	"testing"

	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/rules"
)

func TestClassifierRegistry(t *testing.T) {
	if _, err := rules.Classifier(rules.ClassifierClassic); err != nil {
		t.Fatalf("classic table missing: %v", err)
	}
	if _, err := rules.Classifier(rules.ClassifierRevised); err != nil {
		t.Fatalf("revised table missing: %v", err)
	}
	if _, err := rules.Classifier("v3"); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestClassifyClassic(t *testing.T) {
	classify, _ := rules.Classifier(rules.ClassifierClassic)

	cases := []struct {
		name                        string
		title, description, project string
		want                        model.Quadrant
	}{
		{"all three fields", "Report", "Q3 numbers", "proj-A", model.QuadrantDelegate},
		{"title and description", "Report", "Q3 numbers", "", model.QuadrantDoNow},
		{"title and project", "Report", "", "proj-A", model.QuadrantSchedule},
		{"title only", "Buy milk", "", "", model.QuadrantMinimize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.title, tc.description, tc.project); got != tc.want {
				t.Errorf("classify(%q, %q, %q) = %s, want %s", tc.title, tc.description, tc.project, got, tc.want)
			}
		})
	}
}

func TestClassifyRevised(t *testing.T) {
	classify, _ := rules.Classifier(rules.ClassifierRevised)

	cases := []struct {
		name                        string
		title, description, project string
		want                        model.Quadrant
	}{
		{"all three fields", "Report", "Q3 numbers", "proj-A", model.QuadrantDelegate},
		{"title and description", "Report", "Q3 numbers", "", model.QuadrantSchedule},
		{"title and project", "Report", "", "proj-A", model.QuadrantSchedule},
		{"title only", "Buy milk", "", "", model.QuadrantDoNow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.title, tc.description, tc.project); got != tc.want {
				t.Errorf("classify(%q, %q, %q) = %s, want %s", tc.title, tc.description, tc.project, got, tc.want)
			}
		})
	}
}

// Regardless of table version, a title-only task never lands in Delegate or
// Schedule, and a fully-specified task always lands in Delegate.
func TestClassifierProperties(t *testing.T) {
	for _, version := range []string{rules.ClassifierClassic, rules.ClassifierRevised} {
		classify, _ := rules.Classifier(version)

		got := classify("solo title", "", "")
		if got == model.QuadrantDelegate || got == model.QuadrantSchedule {
			t.Errorf("%s: title-only task classified as %s", version, got)
		}

		if got := classify("a", "b", "c"); got != model.QuadrantDelegate {
			t.Errorf("%s: fully-specified task classified as %s, want delegate", version, got)
		}
	}
}

func TestWizardTable(t *testing.T) {
	recommend, err := rules.WizardTable(rules.WizardDefault)
	if err != nil {
		t.Fatalf("default wizard table missing: %v", err)
	}
	if _, err := rules.WizardTable("other"); err == nil {
		t.Fatal("expected error for unknown wizard table")
	}

	cases := []struct {
		name string
		a    rules.WizardAnswers
		want model.Quadrant
	}{
		{"urgent important", rules.WizardAnswers{Urgent: true, Important: true}, model.QuadrantDoNow},
		{"important delegatable with project and details",
			rules.WizardAnswers{Important: true, BelongsToProject: true, HasDetails: true, CanDelegate: true},
			model.QuadrantDelegate},
		{"important with project only",
			rules.WizardAnswers{Important: true, BelongsToProject: true},
			model.QuadrantSchedule},
		{"important without project", rules.WizardAnswers{Important: true}, model.QuadrantDoNow},
		{"urgent not important", rules.WizardAnswers{Urgent: true}, model.QuadrantDelegate},
		{"neither", rules.WizardAnswers{}, model.QuadrantMinimize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := recommend(tc.a)
			if rec.Quadrant != tc.want {
				t.Errorf("recommend(%+v) = %s, want %s", tc.a, rec.Quadrant, tc.want)
			}
			if rec.Reason == "" {
				t.Error("recommendation must carry a reason")
			}
		})
	}
}
