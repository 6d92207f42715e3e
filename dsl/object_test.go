package dsl_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/iexec-tools/iexecschema"
	g "github.com/iexec-tools/iexecschema/dsl"
)

func TestObject_RequiredUnknownAndOrder(t *testing.T) {
	s := g.Object().
		Field("name", g.String()).Required().
		Field("org", g.String().Max(3)).Required().
		Field("rank", g.Number().Integer()).
		MustBuild()
	ctx := context.Background()

	out, err := s.Parse(ctx, map[string]any{"name": "n", "org": "abc", "rank": 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out["name"] != "n" || out["rank"] != float64(1) {
		t.Fatalf("unexpected value: %#v", out)
	}

	_, err = s.Parse(ctx, map[string]any{"org": "abcd", "zeta": 1, "alpha": 2})
	iss, ok := iexecschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	want := []string{
		`"name" is required`,
		`"org" length must be less than or equal to 3 characters long`,
		`"alpha" is not allowed`,
		`"zeta" is not allowed`,
	}
	if got := iss.Messages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("messages mismatch:\n got %q\nwant %q", got, want)
	}
	if iss[0].Path != "/name" || iss[2].Path != "/alpha" {
		t.Fatalf("unexpected paths: %v", iss)
	}

	// fail fast keeps only the first violation
	_, err = s.Parse(iexecschema.WithFailFast(ctx, true), map[string]any{"org": "abcd", "zeta": 1})
	if iss, _ := iexecschema.AsIssues(err); len(iss) != 1 || iss[0].Code != iexecschema.CodeRequired {
		t.Fatalf("expected a single required issue, got %v", iss)
	}

	if _, err := s.Parse(ctx, []any{}); err == nil {
		t.Fatalf("expected invalid_type for non-object input")
	}
}

func TestObject_UnknownKeyHint(t *testing.T) {
	s := g.Object().Field("license", g.String()).Field("author", g.String()).MustBuild()
	ctx := context.Background()

	_, err := s.Parse(ctx, map[string]any{"licence": "MIT", "zzzzzz": 1})
	iss, _ := iexecschema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Hint != `did you mean "license"?` {
		t.Fatalf("unexpected hint: %q", iss[0].Hint)
	}
	if iss[1].Hint != "" {
		t.Fatalf("no hint expected for distant key, got %q", iss[1].Hint)
	}

	iexecschema.SetHintDistance(0)
	defer iexecschema.SetHintDistance(iexecschema.DefaultConfig().HintDistance)
	_, err = s.Parse(ctx, map[string]any{"licence": "MIT"})
	if iss, _ := iexecschema.AsIssues(err); len(iss) != 1 || iss[0].Hint != "" {
		t.Fatalf("hints should be disabled, got %v", iss)
	}
}

func TestObject_ExtendAndNested(t *testing.T) {
	base := g.Object().
		Field("description", g.String().Min(3)).Required().
		Field("repo", g.String()).
		MustBuild()
	child := g.Object().Extend(base).
		Field("repo", g.String()).Required().
		Field("app", g.Object().
			Field("owner", g.String().Address()).Required().
			MustBuild()).Required().
		MustBuild()

	if want := []string{"description", "repo", "app"}; !reflect.DeepEqual(child.Keys(), want) {
		t.Fatalf("keys = %v, want %v", child.Keys(), want)
	}
	if base.IsRequired("repo") || !child.IsRequired("repo") {
		t.Fatalf("override must only affect the extended schema")
	}

	ctx := context.Background()
	_, err := child.Parse(ctx, map[string]any{
		"description": "abc",
		"repo":        "r",
		"app":         map[string]any{"owner": "nope", "name": "x"},
	})
	iss, _ := iexecschema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "/app/owner" || iss[0].Label != "owner" || iss[0].Code != iexecschema.CodeEthAddress {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Path != "/app/name" || iss[1].Code != iexecschema.CodeUnknownKey {
		t.Fatalf("unexpected second issue: %+v", iss[1])
	}
}

func TestObject_BuildErrors(t *testing.T) {
	if _, err := g.Object().Field("a", g.String()).Require("b").Build(); err == nil {
		t.Fatalf("expected error for undeclared required field")
	}
	if _, err := g.Object().Field("a", nil).Build(); err == nil {
		t.Fatalf("expected error for nil field schema")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustBuild should panic")
		}
	}()
	g.Object().Require("missing").MustBuild()
}

func TestMap_PatternAndMinKeys(t *testing.T) {
	s := g.PatternMap(`^(app|dataset|workerpool)$`, g.Map(g.String().Address())).Fold().MinKeys(1)
	ctx := context.Background()

	addr := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	if err := s.Validate(ctx, map[string]any{"APP": map[string]any{"1": addr}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := s.Parse(ctx, map[string]any{})
	if got := codes(t, err); len(got) != 1 || got[0] != iexecschema.CodeTooFewKeys {
		t.Fatalf("expected too_few_keys, got %v", got)
	}

	_, err = s.Parse(ctx, map[string]any{
		"dataset": map[string]any{"5": "0xbad"},
		"order":   map[string]any{},
	})
	iss, _ := iexecschema.AsIssues(err)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "/dataset/5" || iss[0].Code != iexecschema.CodeEthAddress {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Path != "/order" || iss[1].Code != iexecschema.CodeUnknownKey {
		t.Fatalf("unexpected second issue: %+v", iss[1])
	}

	strict := g.PatternMap(`^(app|dataset|workerpool)$`, g.Any())
	if err := strict.Validate(ctx, map[string]any{"App": 1}); err == nil {
		t.Fatalf("pattern should be case sensitive without Fold")
	}
}

func TestArray_Elements(t *testing.T) {
	arr := g.Array(g.Object().Field("name", g.String()).Required().MustBuild())
	ctx := context.Background()

	got, err := arr.Parse(ctx, []any{map[string]any{"name": "a"}})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v err=%v", got, err)
	}

	_, err = arr.Parse(ctx, []any{map[string]any{"name": "a"}, map[string]any{}, 3})
	iss, _ := iexecschema.AsIssues(err)
	if len(iss) != 2 || iss[0].Path != "/1/name" || iss[1].Path != "/2" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	if _, err := arr.Parse(ctx, "not array"); err == nil {
		t.Fatalf("expected invalid_type for non-array input")
	}
}

func TestSchemaOf(t *testing.T) {
	wrapped := g.SchemaOf[string](g.String().Min(2))
	s := g.Object().Field("tag", wrapped).MustBuild()
	_, err := s.Parse(context.Background(), map[string]any{"tag": "x"})
	if got := codes(t, err); len(got) != 1 || got[0] != iexecschema.CodeTooShort {
		t.Fatalf("expected too_short, got %v", got)
	}
}
