package normalize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"\t \n", ""},
		{"jan", "Jan"},
		{"JAN", "Jan"},
		{"  jan   de   bakker ", "Jan De Bakker"},
		{"antwerpsesteenweg 12", "Antwerpsesteenweg 12"},
		{"jan@example.com", "Jan@example.com"},
		{"be 0123 456 789", "Be 0123 456 789"},
		{"éléonore d'hondt", "Éléonore D'hondt"},
		{"12", "12"},
	}
	for _, c := range cases {
		if got := Text(c.in); got != c.want {
			t.Errorf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"", "   ", "jan de bakker", "  MIXED   Case\tinput ",
		"jan@example.com", "BE0123456789", "rue de l'église 5",
	}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
