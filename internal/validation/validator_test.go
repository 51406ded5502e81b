// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50,username"`
	Email       string `json:"email" validate:"omitempty,email"`
	ElementType string `json:"elementType" validate:"required,elementtype"`
	Limit       int    `json:"limit" validate:"min=0,max=100"`
	Action      string `json:"action" validate:"omitempty,oneof=like unlike toggle"`
}

func validRequest() testRequest {
	return testRequest{Username: "amy_k", ElementType: "skill", Limit: 3, Action: "toggle"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*testRequest)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*testRequest) {}, "", ""},
		{"snake case element type", func(r *testRequest) { r.ElementType = "work_setting" }, "", ""},
		{"missing username", func(r *testRequest) { r.Username = "" }, "username", "username is required"},
		{"short username", func(r *testRequest) { r.Username = "ab" }, "username", "at least 3 characters"},
		{"bad username chars", func(r *testRequest) { r.Username = "amy k" }, "username", "may only contain"},
		{"bad email", func(r *testRequest) { r.Email = "nope" }, "email", "valid email"},
		{"unknown element type", func(r *testRequest) { r.ElementType = "hobby" }, "elementType", "known element type"},
		{"limit too large", func(r *testRequest) { r.Limit = 101 }, "limit", "at most 100"},
		{"bad action", func(r *testRequest) { r.Action = "flip" }, "action", "one of: like unlike toggle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			verr := ValidateStruct(&req)

			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 || errs[0].Field() != tt.wantField {
				t.Fatalf("errors = %v, want one for %q", verr, tt.wantField)
			}
			if !strings.Contains(errs[0].Error(), tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	req := testRequest{Username: "", ElementType: "nope"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected errors")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if len(apiErr.Details) != 2 {
		t.Fatalf("Details = %v, want 2 fields", apiErr.Details)
	}
	if apiErr.Details["username"] != "username is required" {
		t.Errorf("Details[username] = %q", apiErr.Details["username"])
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" || empty.Details != nil {
		t.Errorf("empty ToAPIError() = %+v", empty)
	}
}
