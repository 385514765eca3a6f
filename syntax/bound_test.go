package syntax

import "testing"

func TestRepetitionBoundConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  RepetitionBound
		want RepetitionBound
	}{
		{"Once", Once(), RepetitionBound{Min: 1, Max: 1}},
		{"Locked", Locked(), RepetitionBound{Min: 0, Max: 0}},
		{"Optional", Optional(), RepetitionBound{Min: 0, Max: 1}},
		{"ZeroOrMore", ZeroOrMore(), RepetitionBound{Min: 0, MaxUnbounded: true}},
		{"OneOrMore", OneOrMore(), RepetitionBound{Min: 1, MaxUnbounded: true}},
		{"Exactly3", Exactly(3), RepetitionBound{Min: 3, Max: 3}},
		{"AtLeast2", AtLeast(2), RepetitionBound{Min: 2, MaxUnbounded: true}},
		{"AtMost4", AtMost(4), RepetitionBound{Min: 0, Max: 4}},
		{"Between2And5", Between(2, 5), RepetitionBound{Min: 2, Max: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRepetitionBoundValid(t *testing.T) {
	tests := []struct {
		name string
		b    RepetitionBound
		want bool
	}{
		{"OneOrMore", OneOrMore(), true},
		{"Between2And5", Between(2, 5), true},
		{"Exactly0", Exactly(0), true},
		{"InvalidMinGreaterThanMax", Between(5, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.valid(); got != tt.want {
				t.Errorf("%+v.valid() = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}
