package application

import "testing"

func TestStatusCatalog(t *testing.T) {
	if len(StatusCatalog) != 21 {
		t.Errorf("catalog has %d labels, want 21", len(StatusCatalog))
	}
	if StatusCatalog[0] != "Application Created" {
		t.Errorf("first label = %q", StatusCatalog[0])
	}
	if StatusCatalog[len(StatusCatalog)-1] != "Pending document" {
		t.Errorf("last label = %q", StatusCatalog[len(StatusCatalog)-1])
	}
}

func TestIsKnownStatus(t *testing.T) {
	if !IsKnownStatus(StatusVisaGranted) {
		t.Error("Visa Granted missing from catalog")
	}
	if IsKnownStatus("Totally Made Up") {
		t.Error("unknown label reported as known")
	}
}
