package localeinfo

import (
	"reflect"
	"testing"
)

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "pt", "es", "pt")

	got := resolver.Resolve("pt-BR")
	want := []string{"pt", "es"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve pt-BR = %v, want %v", got, want)
	}

	if got := resolver.Resolve("de"); got != nil {
		t.Fatalf("Resolve de = %v, want nil", got)
	}
}

func TestStaticFallbackResolverClear(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("fr-CA", "fr")
	resolver.Set("fr-CA")

	if got := resolver.Resolve("fr-CA"); got != nil {
		t.Fatalf("cleared chain = %v, want nil", got)
	}
}

func TestStaticFallbackResolverCopies(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("fr-CA", "fr", "en")

	chain := resolver.Resolve("fr-CA")
	chain[0] = "mutated"

	if got := resolver.Resolve("fr-CA"); got[0] != "fr" {
		t.Fatalf("internal chain mutated: %v", got)
	}
}

func TestStaticFallbackResolverNil(t *testing.T) {
	var resolver *StaticFallbackResolver
	if got := resolver.Resolve("en"); got != nil {
		t.Fatalf("nil resolver Resolve = %v", got)
	}
	resolver.Set("en", "de")
}
