package assessment

import (
	"testing"

	"github.com/vark-assess/backend/internal/models"
)

func TestCatalogCoversEveryModality(t *testing.T) {
	counts := map[models.Modality]int{}
	for _, tmpl := range templateCatalog {
		counts[tmpl.target]++
	}
	for _, m := range models.Modalities {
		if counts[m] == 0 {
			t.Errorf("catalog has no template targeting %s", m)
		}
	}
}

func TestTemplateOptionsCoverEveryModality(t *testing.T) {
	check := func(name string, q models.Question) {
		if len(q.Options) != 4 {
			t.Fatalf("%s: expected 4 options, got %d", name, len(q.Options))
		}
		seen := map[models.Modality]bool{}
		keys := map[string]bool{}
		for _, o := range q.Options {
			seen[o.Modality] = true
			keys[o.Key] = true
		}
		for _, m := range models.Modalities {
			if !seen[m] {
				t.Errorf("%s: no option maps to %s", name, m)
			}
		}
		for _, k := range []string{"A", "B", "C", "D"} {
			if !keys[k] {
				t.Errorf("%s: missing option key %s", name, k)
			}
		}
	}

	for step := 1; step <= len(templateCatalog); step++ {
		check(questionID(step), SelectTemplate(step, nil))
	}
	check("clarifying", SelectClarifyingTemplate(1))
}

func TestSelectTemplate_Deterministic(t *testing.T) {
	target := models.ModalityK
	first := SelectTemplate(3, &target)
	second := SelectTemplate(3, &target)

	if first.Text != second.Text || first.ID != second.ID {
		t.Errorf("SelectTemplate not deterministic: %q vs %q", first.Text, second.Text)
	}
	if first.Target != models.ModalityK {
		t.Errorf("filtered template targets %s, want K", first.Target)
	}
}

func TestSelectTemplate_TargetFilter(t *testing.T) {
	for _, m := range models.Modalities {
		for step := 1; step <= 6; step++ {
			modality := m
			q := SelectTemplate(step, &modality)
			if q.Target != m {
				t.Errorf("SelectTemplate(%d, %s).Target = %s", step, m, q.Target)
			}
			if q.ID != questionID(step) {
				t.Errorf("SelectTemplate(%d, %s).ID = %q, want %q", step, m, q.ID, questionID(step))
			}
		}
	}
}

func TestSelectTemplate_StepWrapsCatalog(t *testing.T) {
	// Step past the catalog size wraps around rather than running out
	wrapped := SelectTemplate(len(templateCatalog)+1, nil)
	first := SelectTemplate(1, nil)
	if wrapped.Text != first.Text {
		t.Errorf("step wrap: got %q, want %q", wrapped.Text, first.Text)
	}
	if wrapped.ID == first.ID {
		t.Errorf("wrapped question reused id %q, want fresh step-derived id", wrapped.ID)
	}
}

func TestSelectTemplate_ZeroStep(t *testing.T) {
	q := SelectTemplate(0, nil)
	if q.Text != templateCatalog[0].text {
		t.Errorf("step 0 should fall back to first template, got %q", q.Text)
	}
}

func TestSelectClarifyingTemplate(t *testing.T) {
	q3 := SelectClarifyingTemplate(3)
	q5 := SelectClarifyingTemplate(5)

	if q3.Text != q5.Text {
		t.Errorf("clarifying template content varies by step: %q vs %q", q3.Text, q5.Text)
	}
	if q3.ID == q5.ID {
		t.Errorf("clarifying questions share id %q across steps", q3.ID)
	}
}
