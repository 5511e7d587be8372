package pnl

import (
	"testing"
	"time"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"buy", Buy, false},
		{"sell", Sell, false},
		{"", "", true},
		{"margin", "", true},
		{"BUY", "", true},
	}
	for _, tc := range tests {
		got, err := ParseSide(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSide(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSide(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTradeValidate(t *testing.T) {
	valid := Trade{
		Side:   Buy,
		Price:  "26500.1",
		Fee:    "0.26",
		Volume: "0.0025",
		Cost:   "66.25",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on a valid trade = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Trade)
	}{
		{"invalid side", func(tr *Trade) { tr.Side = "short" }},
		{"unparsable price", func(tr *Trade) { tr.Price = "x" }},
		{"unparsable fee", func(tr *Trade) { tr.Fee = "" }},
		{"unparsable volume", func(tr *Trade) { tr.Volume = "1,5" }},
		{"unparsable cost", func(tr *Trade) { tr.Cost = "-" }},
		{"zero price", func(tr *Trade) { tr.Price = "0" }},
		{"negative price", func(tr *Trade) { tr.Price = "-10" }},
		{"zero volume", func(tr *Trade) { tr.Volume = "0" }},
		{"negative fee", func(tr *Trade) { tr.Fee = "-0.1" }},
	}
	for _, tc := range tests {
		tr := valid
		tc.mutate(&tr)
		if err := tr.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

func TestTradeTimestamp(t *testing.T) {
	tr := Trade{Time: 1688671834.6} // 2023-07-06T19:30:34.6Z
	got := tr.Timestamp()

	want := time.Date(2023, time.July, 6, 19, 30, 34, 0, time.UTC)
	if !got.Truncate(time.Second).Equal(want) {
		t.Errorf("Timestamp() = %v, want %v", got, want)
	}
	if tr.Year() != 2023 {
		t.Errorf("Year() = %d, want 2023", tr.Year())
	}
}
