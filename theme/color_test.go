package theme

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestColorResolve(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		mode  Mode
		want  string
	}{
		{"pair light", Pair("white", "black"), Light, "white"},
		{"pair dark", Pair("white", "black"), Dark, "black"},
		{"single light", Single("#ff0000"), Light, "#ff0000"},
		{"single dark", Single("#ff0000"), Dark, "#ff0000"},
		{"transparent passes through", Single(Transparent), Dark, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Resolve(tt.mode); got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestColorResolveInvalidModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve(Mode(2)) on a pair did not panic")
		}
	}()
	Pair("white", "black").Resolve(Mode(2))
}

func TestColorPredicates(t *testing.T) {
	var zero Color
	if !zero.IsZero() {
		t.Error("zero Color: IsZero() = false")
	}
	if Single("red").IsZero() {
		t.Error("Single(red): IsZero() = true")
	}
	if !Single("Transparent").IsTransparent() {
		t.Error("IsTransparent should ignore case")
	}
	if Pair(Transparent, Transparent).IsTransparent() {
		t.Error("a pair is never the transparent sentinel")
	}
	c := Single("red")
	if c.Light() != "red" || c.Dark() != "red" {
		t.Errorf("Single: Light/Dark = %q/%q", c.Light(), c.Dark())
	}
	if s := Pair("a", "b").String(); s != "(a, b)" {
		t.Errorf("String() = %q", s)
	}
}

func TestColorValidate(t *testing.T) {
	tests := []struct {
		name             string
		color            Color
		allowTransparent bool
		wantErr          error
	}{
		{"hex", Single("#3B8ED0"), false, nil},
		{"pair of names", Pair("gray92", "gray14"), false, nil},
		{"transparent allowed", Single(Transparent), true, nil},
		{"transparent refused", Single(Transparent), false, ErrTransparentNotAllowed},
		{"bad hex", Single("#12345"), false, ErrInvalidColor},
		{"unknown name", Pair("white", "no-such-color"), false, ErrUnknownColorName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.color.Validate(tt.allowTransparent)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestColorJSON(t *testing.T) {
	var v struct {
		A Color `json:"a"`
		B Color `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":"red","b":["white","black"]}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.A.IsPair() || v.A.Resolve(Dark) != "red" {
		t.Errorf("a = %v", v.A)
	}
	if !v.B.IsPair() || v.B.Resolve(Dark) != "black" {
		t.Errorf("b = %v", v.B)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"a":"red","b":["white","black"]}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestColorJSONErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{`["a","b","c"]`, ErrPairLength},
		{`["a"]`, ErrPairLength},
		{`42`, ErrInvalidColor},
		{`{"x":1}`, ErrInvalidColor},
	}
	for _, tt := range tests {
		var c Color
		err := json.Unmarshal([]byte(tt.in), &c)
		if !errors.Is(err, tt.want) {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if Light.String() != "Light" || Dark.String() != "Dark" {
		t.Errorf("got %q/%q", Light, Dark)
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("got %q", Mode(7))
	}
}
