package normalize

import "testing"

func TestInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"14", 14},
		{" 14 ", 14},
		{"+9", 9},
		{"-5", -5},
		{"83%", 83},
		{"1,204", 1204},
		{"1.7", 1},
		{"", 0},
		{"N/A", 0},
		{"n/a", 0},
		{"-", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := Int(tc.in); got != tc.want {
			t.Errorf("Int(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.27", 1.27},
		{"83%", 83},
		{"+0.12", 0.12},
		{"-5", -5},
		{"", 0},
		{"N/A", 0},
		{"—", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := Float(tc.in); got != tc.want {
			t.Errorf("Float(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPercentClamps(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"83%", 83},
		{"0%", 0},
		{"100", 100},
		{"104%", 100},
		{"-3%", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Percent(tc.in); got != tc.want {
			t.Errorf("Percent(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  TenZ  ", "TenZ"},
		{"N/A", ""},
		{"na", ""},
		{"-", ""},
		{"", ""},
		{"Sentinels", "Sentinels"},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Errorf("Text(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseSpace(t *testing.T) {
	in := "\n\t\tGroup Stage\n\t\t\tWeek 1\n"
	if got := CollapseSpace(in); got != "Group Stage Week 1" {
		t.Fatalf("CollapseSpace() = %q", got)
	}
}
