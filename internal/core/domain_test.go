package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnixTimeDecoding(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		secs  int64
		valid bool
	}{
		{"number", `1713182400`, 1713182400, true},
		{"fractional number truncates", `1713182400.9`, 1713182400, true},
		{"numeric string", `"1713182400"`, 1713182400, true},
		{"padded string", `"  1713182400 "`, 1713182400, true},
		{"garbage string", `"soon"`, 0, false},
		{"null", `null`, 0, false},
		{"object", `{}`, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var u UnixTime
			if err := json.Unmarshal([]byte(tc.raw), &u); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if u.Secs != tc.secs || u.Valid != tc.valid {
				t.Fatalf("decode %s = {%d %v}, want {%d %v}", tc.raw, u.Secs, u.Valid, tc.secs, tc.valid)
			}
		})
	}
}

// A re-serialized ledger entry must keep the exact tokens it came in with,
// string-encoded timestamps included.
func TestTransactionRoundTripKeepsEncoding(t *testing.T) {
	for _, raw := range []string{
		`{"timeStamp":"1713182400","value":"5","to":"0xa","from":"0xb"}`,
		`{"timeStamp":1713182400,"value":"5","to":"0xa","from":"0xb"}`,
		`{"timestamp":"not yet","value":"5","to":"0xa","from":"0xb"}`,
	} {
		var tx Transaction
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		out, err := json.Marshal(tx)
		if err != nil {
			t.Fatalf("marshal %s: %v", raw, err)
		}
		if string(out) != raw {
			t.Errorf("round trip of %s produced %s", raw, out)
		}
	}
}

func TestTransactionTimePrecedence(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	primary := &UnixTime{Secs: 100, Valid: true}
	secondary := &UnixTime{Secs: 200, Valid: true}

	if got := (Transaction{TimeStamp: primary, Timestamp: secondary}).Time(now); got.Unix() != 100 {
		t.Errorf("timeStamp should win, got %d", got.Unix())
	}
	if got := (Transaction{Timestamp: secondary}).Time(now); got.Unix() != 200 {
		t.Errorf("timestamp fallback, got %d", got.Unix())
	}
	if got := (Transaction{TimeStamp: &UnixTime{}}).Time(now); !got.Equal(now) {
		t.Errorf("invalid timestamps should fall back to now, got %v", got)
	}
}
