package fallible

import (
	"testing"

	"github.com/ib-77/fallible/pkg/fallible/option"
	"github.com/ib-77/fallible/pkg/fallible/result"
)

func TestOptionConversion(t *testing.T) {
	t.Parallel()
	if got := Success[int]().Option(); got.IsSome() {
		t.Fatalf("expected None from Success, got: %v", got)
	}
	got := Fail(9).Option()
	if v, ok := got.Get(); !ok || v != 9 {
		t.Fatalf("expected Some(9) from Fail(9), got: %v", got)
	}
}

func TestFromOption(t *testing.T) {
	t.Parallel()
	if got := FromOption(option.None[int]()); !got.IsSuccess() {
		t.Fatalf("expected Success from None, got: %v", got)
	}
	if got := FromOption(option.Some(9)); !Equal(got, Fail(9)) {
		t.Fatalf("expected Fail(9) from Some(9), got: %v", got)
	}
}

func TestOptionRoundTrip(t *testing.T) {
	t.Parallel()
	for _, f := range []Fallible[string]{Success[string](), Fail("e")} {
		if got := FromOption(f.Option()); !Equal(got, f) {
			t.Fatalf("round trip changed %v into %v", f, got)
		}
	}
	for _, o := range []option.Option[string]{option.None[string](), option.Some("e")} {
		got := FromOption(o).Option()
		if got.IsSome() != o.IsSome() || got.OrElse("") != o.OrElse("") {
			t.Fatalf("round trip changed %v into %v", o, got)
		}
	}
}

func TestResultConversion(t *testing.T) {
	t.Parallel()
	r := Success[string]().Result()
	if !r.IsSuccess() {
		t.Fatalf("expected unit success, got: %v", r)
	}
	r = Fail("e").Result()
	if !r.IsFail() || r.Err() != "e" {
		t.Fatalf("expected Fail(e), got: %v", r)
	}
}

func TestResultRoundTrip(t *testing.T) {
	t.Parallel()
	for _, f := range []Fallible[string]{Success[string](), Fail("e")} {
		if got := FromResult(f.Result()); !Equal(got, f) {
			t.Fatalf("round trip changed %v into %v", f, got)
		}
	}
	for _, r := range []result.Result[result.Unit, string]{
		result.Success[result.Unit, string](result.Unit{}),
		result.Fail[result.Unit, string]("e"),
	} {
		if got := FromResult(r).Result(); !result.Equal(got, r) {
			t.Fatalf("round trip changed %v into %v", r, got)
		}
	}
}

func TestErrOrValue(t *testing.T) {
	t.Parallel()
	r := ErrOrValue(Success[string](), 42)
	if !r.IsSuccess() || r.Result() != 42 {
		t.Fatalf("expected Success(42), got: %v", r)
	}
	r = ErrOrValue(Fail("e"), 42)
	if !r.IsFail() || r.Err() != "e" {
		t.Fatalf("expected Fail(e), got: %v", r)
	}
}

func TestDiscardIsExplicit(t *testing.T) {
	t.Parallel()
	got := Discard(result.Success[int, string](1234))
	if !got.IsSuccess() {
		t.Fatalf("expected Success after discarding value, got: %v", got)
	}
	got = Discard(result.Fail[int, string]("kept"))
	if !Equal(got, Fail("kept")) {
		t.Fatalf("expected failure payload to survive discard, got: %v", got)
	}
}
