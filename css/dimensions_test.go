package css_test

import (
	"fmt"
	"testing"

	"csskit/css"
)

func TestResolutionFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Resolution
		expected string
	}{
		{"dpi", css.Dpi(300), "300dpi"},
		{"dpcm", css.Dpcm(118), "118dpcm"},
		{"dppx", css.Dppx(2), "2dppx"},
		{"x_shorthand", css.X(2), "2x"},
		{"fractional", css.Dppx(1.5), "1.5dppx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Resolution.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFrequencyFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Frequency
		expected string
	}{
		{"hertz", css.Hz(5), "5Hz"},
		{"kilohertz", css.KHz(2.5), "2.5kHz"},
		{"zero", css.Hz(0), "0Hz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Frequency.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTimeFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Time
		expected string
	}{
		{"seconds", css.Seconds(1.5), "1.5s"},
		{"milliseconds", css.Milliseconds(300), "300ms"},
		{"zero_seconds", css.Seconds(0), "0s"},
		{"fractional_milliseconds", css.Milliseconds(16.7), "16.7ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Time.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFlexFormatting(t *testing.T) {
	tests := []struct {
		name     string
		input    css.Flex
		expected string
	}{
		{"single", css.Flex(1), "1fr"},
		{"multiple", css.Flex(3), "3fr"},
		{"fractional", css.Flex(0.5), "0.5fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("Flex.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDimensionsAreStringers(t *testing.T) {
	// Every dimension type must satisfy fmt.Stringer so it can be used
	// directly as a declaration value.
	values := []fmt.Stringer{
		css.Dpi(96),
		css.Hz(60),
		css.Seconds(2),
		css.Flex(1),
	}
	for _, v := range values {
		if v.String() == "" {
			t.Errorf("%T rendered as empty string", v)
		}
	}
}
