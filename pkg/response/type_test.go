package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"jishu-admin/pkg/response"
)

func TestDateMarshal(t *testing.T) {
	d := response.Date(time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	got := strings.Trim(string(raw), `"`)
	if len(got) != len(response.DateFormat) {
		t.Errorf("unexpected date format: %s", got)
	}
	if !strings.HasPrefix(got, "2026-03-") {
		t.Errorf("unexpected date value: %s", got)
	}
}

func TestDateTimeMarshal(t *testing.T) {
	d := response.DateTime(time.Date(2026, 3, 14, 10, 30, 45, 0, time.UTC))

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	got := strings.Trim(string(raw), `"`)
	if len(got) != len(response.DateTimeFormat) {
		t.Errorf("unexpected datetime format: %s", got)
	}
}

func TestZeroTimesMarshalNull(t *testing.T) {
	if raw, err := json.Marshal(response.Date{}); err != nil || string(raw) != "null" {
		t.Errorf("zero Date: got %s, %v", raw, err)
	}
	if raw, err := json.Marshal(response.DateTime{}); err != nil || string(raw) != "null" {
		t.Errorf("zero DateTime: got %s, %v", raw, err)
	}
}
