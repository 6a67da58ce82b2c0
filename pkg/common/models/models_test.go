package models

import "testing"

func TestHealthStatusRankOrdering(t *testing.T) {
	if !(StatusNormal.Rank() < StatusWarning.Rank() && StatusWarning.Rank() < StatusCritical.Rank()) {
		t.Fatalf("expected Normal < Warning < Critical, got %d %d %d",
			StatusNormal.Rank(), StatusWarning.Rank(), StatusCritical.Rank())
	}
	if HealthStatus("unknown").Rank() != StatusNormal.Rank() {
		t.Fatal("expected unknown status to rank as Normal")
	}
}
