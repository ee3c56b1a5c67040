package ai

import (
	"strings"
	"testing"

	"railmadad/internal/modules/grievance"
)

func TestCategoryPromptListsAllKnownCategories(t *testing.T) {
	p := categoryPrompt("My berth was dirty")
	for _, c := range grievance.KnownCategories {
		if !strings.Contains(p, c) {
			t.Errorf("category prompt missing %q", c)
		}
	}
	if !strings.Contains(p, `"My berth was dirty"`) {
		t.Error("category prompt missing the grievance text")
	}
	if strings.Contains(p, grievance.CategoryGoodsRelated) {
		t.Error("the goods sentinel must not be offered to the category classifier")
	}
}

func TestDomainPromptShape(t *testing.T) {
	p := domainPrompt("Broken tap at the station")
	if !strings.Contains(p, "Train/Station") {
		t.Error("domain prompt must constrain the answer to Train/Station")
	}
	if !strings.Contains(p, `"Broken tap at the station"`) {
		t.Error("domain prompt missing the grievance text")
	}
}

func TestGoodsPromptShape(t *testing.T) {
	p := goodsPrompt("Parcel damaged")
	if !strings.Contains(p, "(Yes/No)") {
		t.Error("goods prompt must request a yes/no answer")
	}
}

func TestFollowupPromptIncludesCategory(t *testing.T) {
	p := followupPrompt("My berth was dirty", "Coach Cleanliness")
	if !strings.Contains(p, `"Coach Cleanliness"`) {
		t.Error("follow-up prompt missing the category")
	}
	if !strings.Contains(p, "3-4 follow-up questions") {
		t.Error("follow-up prompt should ask for 3-4 questions")
	}
}
