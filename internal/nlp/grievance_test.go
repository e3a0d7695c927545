package nlp_test

import (
	"reflect"
	"testing"

	"customer-care-assistant/internal/model"
	"customer-care-assistant/internal/nlp"
)

func TestParseGrievance(t *testing.T) {
	t.Run("Full Object", func(t *testing.T) {
		raw := `{"classification": "Billing Error", "suggested_routing": ["Billing Department", "Technical Support"], "priority": "High"}`
		got := nlp.ParseGrievance(raw)
		if got.Classification != "Billing Error" {
			t.Errorf("classification: %q", got.Classification)
		}
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"Billing Department", "Technical Support"}) {
			t.Errorf("routing: %v", got.SuggestedRouting)
		}
		if got.Priority != model.PriorityHigh {
			t.Errorf("priority: %q", got.Priority)
		}
	})

	t.Run("Scalar Routing Wrapped Into Sequence", func(t *testing.T) {
		got := nlp.ParseGrievance(`{"classification": "Billing", "suggested_routing": "Billing Department", "priority": "Medium"}`)
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"Billing Department"}) {
			t.Errorf("expected one-element sequence, got %v", got.SuggestedRouting)
		}
	})

	t.Run("Duplicate Routing Preserved In Order", func(t *testing.T) {
		got := nlp.ParseGrievance(`{"classification": "X", "suggested_routing": ["Billing Department", "Billing Department"], "priority": "Low"}`)
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"Billing Department", "Billing Department"}) {
			t.Errorf("routing must keep duplicates and order, got %v", got.SuggestedRouting)
		}
	})

	t.Run("Missing Fields Get Defaults", func(t *testing.T) {
		got := nlp.ParseGrievance(`{}`)
		if got.Classification != "Unclassified" {
			t.Errorf("classification default: %q", got.Classification)
		}
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"General Support"}) {
			t.Errorf("routing default: %v", got.SuggestedRouting)
		}
		if got.Priority != model.PriorityLow {
			t.Errorf("priority default: %q", got.Priority)
		}
	})

	t.Run("Unparseable Text", func(t *testing.T) {
		got := nlp.ParseGrievance("I would route this to billing.")
		if got.Classification != "Parsing Error" {
			t.Errorf("classification: %q", got.Classification)
		}
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"Unknown"}) {
			t.Errorf("routing: %v", got.SuggestedRouting)
		}
		if got.Priority != model.PriorityLow {
			t.Errorf("priority: %q", got.Priority)
		}
	})

	t.Run("Gateway Sentinel", func(t *testing.T) {
		got := nlp.ParseGrievance("ERROR: failed to get response from model.")
		if got.Classification != "Error" {
			t.Errorf("classification: %q", got.Classification)
		}
		if !reflect.DeepEqual(got.SuggestedRouting, []string{"Unknown"}) {
			t.Errorf("routing: %v", got.SuggestedRouting)
		}
	})

	t.Run("Prose Around Object", func(t *testing.T) {
		got := nlp.ParseGrievance("Sure! ```json\n{\"classification\": \"Outage\", \"suggested_routing\": [\"Network Operations\"], \"priority\": \"high\"}\n```")
		if got.Classification != "Outage" || got.Priority != model.PriorityHigh {
			t.Errorf("unexpected result: %+v", got)
		}
	})
}
