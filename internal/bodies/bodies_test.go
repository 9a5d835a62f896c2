package bodies

import "testing"

func TestByName(t *testing.T) {
	if b := ByName("earth"); b == nil || b.Name != "Earth" {
		t.Fatalf("lookup for 'earth' failed: %+v", b)
	}
	if b := ByName("MARS"); b == nil || b.Name != "Mars" {
		t.Fatalf("lookup for 'MARS' failed: %+v", b)
	}
	if b := ByName("Pluto"); b != nil {
		t.Fatalf("expected nil for unknown body, got %+v", b)
	}
}

func TestCatalogSanity(t *testing.T) {
	for _, b := range Catalog {
		if b.Radius <= 0 || b.Mu <= 0 {
			t.Errorf("%s has non-physical radius/μ: %+v", b.Name, b)
		}
		if b.MarkerSize <= 0 {
			t.Errorf("%s has no marker size", b.Name)
		}
	}
}
