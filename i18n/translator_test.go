package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := Render("required", "description", nil); msg != `"description" is required` {
		t.Fatalf("unexpected en message: %q", msg)
	}

	SetLanguage("ja")
	if msg := Render("required", "description", nil); msg == `"description" is required` {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestRender_Placeholders(t *testing.T) {
	got := Render("too_short", "description", map[string]any{"limit": 150})
	if got != `"description" length must be at least 150 characters long` {
		t.Fatalf("unexpected message: %q", got)
	}
	got = Render("invalid_enum", "type", map[string]any{"valids": []string{"DOCKER"}})
	if got != `"type" must be one of [DOCKER]` {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRender_UnknownCodeFallsBackToLabel(t *testing.T) {
	if got := Render("custom", "x", nil); got != `"x" custom` {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage_UnknownFallsBackToEnglish(t *testing.T) {
	SetLanguage("fr")
	defer SetLanguage("en")
	if got := Render("unknown_key", "foo", nil); got != `"foo" is not allowed` {
		t.Fatalf("unexpected message: %q", got)
	}
}
