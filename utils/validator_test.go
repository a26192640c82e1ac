package utils

import "testing"

type sampleTaskPayload struct {
	Title    string  `validate:"required"`
	Status   *string `validate:"statusok"`
	Priority string  `validate:"priorityok"`
	DueDate  *string `validate:"dateymd"`
}

func strPtr(s string) *string { return &s }

func TestValidateStructRequired(t *testing.T) {
	if err := ValidateStruct(&sampleTaskPayload{Priority: "low"}); err == nil {
		t.Fatal("expected error for missing Title")
	}
	if err := ValidateStruct(&sampleTaskPayload{Title: "x", Priority: "low"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructEnums(t *testing.T) {
	p := sampleTaskPayload{Title: "x", Status: strPtr("sleeping"), Priority: "low"}
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for invalid status")
	}
	p.Status = strPtr("processing")
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Priority = "urgent"
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for invalid priority")
	}
}

func TestValidateStructNilPointerSkipped(t *testing.T) {
	// Unset pointer fields are not validated.
	p := sampleTaskPayload{Title: "x", Priority: "low"}
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructDate(t *testing.T) {
	p := sampleTaskPayload{Title: "x", Priority: "low", DueDate: strPtr("10-03-2026")}
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for malformed date")
	}
	p.DueDate = strPtr("2026-03-10")
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
