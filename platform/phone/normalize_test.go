package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := map[string]string{
		"(212) 555-0175":   "+12125550175",
		"212-555-0175":     "+12125550175",
		"+12125550175":     "+12125550175",
		"  +12125550175  ": "+12125550175",
		"":                 "",
		"not a number":     "not a number",
		"123":              "123",
	}

	for input, want := range cases {
		if got := NormalizeE164(input); got != want {
			t.Fatalf("NormalizeE164(%q) = %q, want %q", input, got, want)
		}
	}
}
