package domain

import "testing"

func TestExpertStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to ExpertStatus }{
		{ExpertPending, ExpertApproved},
		{ExpertPending, ExpertRejected},
		{ExpertApproved, ExpertActive},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to ExpertStatus }{
		{ExpertPending, ExpertActive},
		{ExpertRejected, ExpertApproved},
		{ExpertApproved, ExpertPending},
		{ExpertActive, ExpertApproved},
		{ExpertApproved, ExpertApproved},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("%s -> %s should be denied", tc.from, tc.to)
		}
	}
}

func TestExpertStatus_Listable(t *testing.T) {
	if !ExpertApproved.Listable() || !ExpertActive.Listable() {
		t.Fatalf("approved and active experts belong in the directory")
	}
	if ExpertPending.Listable() || ExpertRejected.Listable() || ExpertInactive.Listable() {
		t.Fatalf("pending, rejected and inactive experts must stay hidden")
	}
}

func TestExpert_HasSkill(t *testing.T) {
	e := &Expert{Skills: []string{"Go", "Kubernetes"}}
	if !e.HasSkill("Go") {
		t.Fatalf("expected skill match")
	}
	if e.HasSkill("go") {
		t.Fatalf("skill match is exact, not case-insensitive")
	}

	none := &Expert{}
	if none.HasSkill("Go") {
		t.Fatalf("expert without skills never matches")
	}
}
