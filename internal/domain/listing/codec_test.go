package listing

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringList
	}{
		{"null", nil, StringList{}},
		{"empty string", "", StringList{}},
		{"valid array", `["Retail","Food"]`, StringList{"Retail", "Food"}},
		{"valid empty array", `[]`, StringList{}},
		{"json null literal", `null`, StringList{}},
		{"bare scalar", "Retail", StringList{"Retail"}},
		{"invalid syntax", `["Retail`, StringList{`["Retail`}},
		{"wrong shape", `{"a":1}`, StringList{`{"a":1}`}},
		{"bytes", []byte(`["a"]`), StringList{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := l.Scan(tt.input); err != nil {
				t.Fatalf("Scan(%v) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(l, tt.want) {
				t.Errorf("Scan(%v) = %v, want %v", tt.input, l, tt.want)
			}
		})
	}
}

func TestStringListRoundTrip(t *testing.T) {
	orig := StringList{"Retail", "Food & Beverage", "服务"}
	v, err := orig.Value()
	if err != nil {
		t.Fatal(err)
	}
	var got StringList
	if err := got.Scan(v); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestStringListMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Industry StringList `json:"industry"`
	}{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"industry":[]}` {
		t.Errorf("nil StringList marshaled to %s, want []", b)
	}
}

func TestFloatListScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  FloatList
	}{
		{"null", nil, FloatList{}},
		{"valid array", `[60.5,39.5]`, FloatList{60.5, 39.5}},
		{"bare number", "42.5", FloatList{42.5}},
		{"garbage", "not a number", FloatList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l FloatList
			if err := l.Scan(tt.input); err != nil {
				t.Fatalf("Scan(%v) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(l, tt.want) {
				t.Errorf("Scan(%v) = %v, want %v", tt.input, l, tt.want)
			}
		})
	}
}

func TestFloatListRoundTrip(t *testing.T) {
	orig := FloatList{100, 0, 33.3}
	v, err := orig.Value()
	if err != nil {
		t.Fatal(err)
	}
	var got FloatList
	if err := got.Scan(v); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2020, time.March, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2020-03-15"` {
		t.Errorf("marshal = %s, want \"2020-03-15\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("unmarshal = %v, want %v", back, d)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2021-06-01"); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2021-06-01" {
		t.Errorf("scanned string date = %s", d)
	}

	var fromTime Date
	if err := fromTime.Scan(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if fromTime.String() != "2021-06-01" {
		t.Errorf("scanned time date = %s", fromTime)
	}
}
