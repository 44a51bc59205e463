package filter

import "testing"

func TestCountRules(t *testing.T) {
	if got := CountRules(nil); got != 0 {
		t.Errorf("nil group: expected 0, got %d", got)
	}
	if got := CountRules(NewFilterGroup(CombinatorAnd)); got != 0 {
		t.Errorf("empty group: expected 0, got %d", got)
	}

	inner := NewFilterGroup(CombinatorOr, NewFilterRule(), NewFilterRule())
	group := NewFilterGroup(CombinatorAnd, NewFilterRule(), inner)
	if got := CountRules(group); got != 3 {
		t.Errorf("nested group: expected 3, got %d", got)
	}
}
