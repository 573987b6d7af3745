package ingredient

import "testing"

func TestKey_CaseFolding(t *testing.T) {
	if Key("Tomatoes") != Key("tomatoes") {
		t.Errorf("expected case variants to share a key")
	}

	if Key("Soy Sauce") != "soy sauce" {
		t.Errorf("expected lowercased key, got '%s'", Key("Soy Sauce"))
	}
}

func TestKey_NoStemming(t *testing.T) {
	// Pluralization and synonyms intentionally do not unify.
	if Key("Tomato") == Key("Tomatoes") {
		t.Errorf("expected plural variant to keep a distinct key")
	}
	if Key("Bell peppers") == Key("Peppers") {
		t.Errorf("expected synonyms to keep distinct keys")
	}
}

func TestKey_Deterministic(t *testing.T) {
	if Key("Feta Cheese") != Key("Feta Cheese") {
		t.Errorf("expected identical input to give identical keys")
	}
	if Key("") != "" {
		t.Errorf("expected empty name to stay empty")
	}
}
