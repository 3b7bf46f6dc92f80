package repository

import "testing"

func TestSetClauseBuildsOnlyPresentFields(t *testing.T) {
	var sc setClause
	sc.set("chef_name", "Aya")
	sc.set("hourly_rate", 120.0)

	body, next := sc.build()
	if body != "chef_name=$1, hourly_rate=$2, updated_at=NOW()" {
		t.Errorf("body = %q", body)
	}
	if next != 3 {
		t.Errorf("next placeholder = %d, want 3", next)
	}
	if len(sc.args) != 2 {
		t.Errorf("args = %d, want 2", len(sc.args))
	}
}

func TestSetClauseEmpty(t *testing.T) {
	var sc setClause
	if !sc.empty() {
		t.Fatal("fresh clause should be empty")
	}
	sc.set("name", "x")
	if sc.empty() {
		t.Fatal("clause with a field should not be empty")
	}
}
