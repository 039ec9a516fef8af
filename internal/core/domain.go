package core

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DefaultAddress is the sentinel reference address used when no wallet
// address has been supplied. Transactions are classified as income or
// spending relative to this address.
const DefaultAddress = "0xYourAddress"

type (
	// UnixTime is an epoch-seconds timestamp that tolerates the loose
	// encodings seen in raw ledger exports: a JSON number, a numeric
	// string, or nothing at all. The original token is retained so a
	// stored ledger re-serializes exactly as it was submitted.
	UnixTime struct {
		Secs  int64
		Valid bool

		raw json.RawMessage
	}

	// Transaction is a single raw ledger entry. It is externally supplied
	// and read-only to the analytics code. Both timestamp spellings map to
	// the same concept; Value keeps the raw token so the ledger round-trips
	// through storage unchanged.
	Transaction struct {
		TimeStamp *UnixTime       `json:"timeStamp,omitempty"`
		Timestamp *UnixTime       `json:"timestamp,omitempty"`
		Value     json.RawMessage `json:"value,omitempty"`
		To        string          `json:"to"`
		From      string          `json:"from"`
	}

	// Project is a tracked client engagement. Append-only; there is no
	// update or delete operation.
	Project struct {
		Name        string `json:"name"`
		Client      string `json:"client,omitempty"`
		Description string `json:"description,omitempty"`
		Status      string `json:"status"`
		Due         string `json:"due,omitempty"`
		Created     string `json:"created"`
	}

	// Document is the persisted memory document: the transaction ledger,
	// saved projects, and light session metadata.
	Document struct {
		Projects      []Project         `json:"projects"`
		Transactions  []Transaction     `json:"transactions"`
		Notes         []json.RawMessage `json:"notes"`
		LastSeen      string            `json:"last_seen,omitempty"`
		WalletAddress string            `json:"wallet_address,omitempty"`
	}
)

// NewDocument returns the empty document shape.
func NewDocument() *Document {
	return &Document{
		Projects:     []Project{},
		Transactions: []Transaction{},
		Notes:        []json.RawMessage{},
	}
}

// EnsureShape replaces nil collections with empty ones so the document
// always serializes with its full shape.
func (d *Document) EnsureShape() {
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Notes == nil {
		d.Notes = []json.RawMessage{}
	}
}

// Time resolves the transaction's effective timestamp. The Etherscan-style
// "timeStamp" field wins over "timestamp"; when neither parses, now is
// substituted.
func (t Transaction) Time(now time.Time) time.Time {
	if t.TimeStamp != nil && t.TimeStamp.Valid {
		return time.Unix(t.TimeStamp.Secs, 0)
	}
	if t.Timestamp != nil && t.Timestamp.Valid {
		return time.Unix(t.Timestamp.Secs, 0)
	}
	return now
}

// UnmarshalJSON accepts a JSON number (fractional seconds truncate) or a
// base-10 numeric string. Anything else leaves the timestamp invalid
// without raising an error.
func (u *UnixTime) UnmarshalJSON(b []byte) error {
	tok := strings.TrimSpace(string(b))
	if tok == "" || tok == "null" {
		return nil
	}
	u.raw = append(json.RawMessage(nil), b...)
	if tok[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil
		}
		u.Secs, u.Valid = n, true
		return nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil
	}
	u.Secs, u.Valid = int64(f), true
	return nil
}

// MarshalJSON re-emits the token the timestamp was decoded from, so string
// and number encodings survive a round trip unchanged. Constructed values
// render as numbers, invalid ones as null.
func (u UnixTime) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}
	if !u.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(u.Secs, 10)), nil
}
