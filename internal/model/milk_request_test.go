package model

import "testing"

func TestNextRequestStatus(t *testing.T) {
	cases := []struct {
		current RequestStatus
		action  RequestAction
		want    RequestStatus
		ok      bool
	}{
		{RequestPending, ActionAccept, RequestOnHold, true},
		{RequestPending, ActionReject, RequestRejected, true},
		{RequestOnHold, ActionMarkReceived, RequestReceived, true},

		// Everything else is illegal
		{RequestPending, ActionMarkReceived, "", false},
		{RequestOnHold, ActionAccept, "", false},
		{RequestOnHold, ActionReject, "", false},
		{RequestReceived, ActionAccept, "", false},
		{RequestReceived, ActionMarkReceived, "", false},
		{RequestReceived, ActionReject, "", false},
		{RequestRejected, ActionAccept, "", false},
		{RequestRejected, ActionMarkReceived, "", false},
		{RequestRejected, ActionReject, "", false},
	}

	for _, tc := range cases {
		got, ok := NextRequestStatus(tc.current, tc.action)
		if ok != tc.ok {
			t.Errorf("NextRequestStatus(%s, %s): ok = %v, want %v", tc.current, tc.action, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("NextRequestStatus(%s, %s) = %s, want %s", tc.current, tc.action, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(d) != "2026-08-28" {
		t.Errorf("round trip = %s, want 2026-08-28", FormatDate(d))
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("parsed date not at midnight: %v", d)
	}

	today, err := ParseDate("")
	if err != nil {
		t.Fatalf("ParseDate empty: %v", err)
	}
	if !today.Equal(Today()) {
		t.Errorf("empty input = %v, want today %v", today, Today())
	}

	if _, err := ParseDate("28/08/2026"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}
