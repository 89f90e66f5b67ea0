package log

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPublish, "PUBLISH"},
		{KindShare, "SHARE"},
		{KindRetrieve, "RETRIEVE"},
		{KindError, "ERROR"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindPublish, KindShare, KindRetrieve, KindError} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("publish"); ok {
		t.Error("ParseKind should be case-sensitive")
	}
}

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		vt   ValueType
		want string
	}{
		{ValueFloat, "FLOAT"},
		{ValueInt, "INT"},
		{ValueUint, "UINT"},
		{ValueBool, "BOOL"},
		{ValueType(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.vt.String(); got != tt.want {
			t.Errorf("ValueType(%d).String() = %q, want %q", tt.vt, got, tt.want)
		}
	}
}

func TestSiteLabel(t *testing.T) {
	if got := (&ResultEvent{Site: 0}).SiteLabel(); got != "0" {
		t.Errorf("SiteLabel(0) = %q", got)
	}
	if got := (&ResultEvent{Site: 12}).SiteLabel(); got != "12" {
		t.Errorf("SiteLabel(12) = %q", got)
	}
	if got := (&ResultEvent{Site: -1}).SiteLabel(); got != "system" {
		t.Errorf("SiteLabel(-1) = %q", got)
	}
}

func TestEventValidate(t *testing.T) {
	result := &ResultEvent{DataID: "Vout", Type: ValueFloat}
	share := &ShareEvent{ID: "trim"}
	failure := &ErrorEventData{Message: "boom"}

	tests := []struct {
		name  string
		event Event
		valid bool
	}{
		{"publish", Event{Kind: KindPublish, Result: result}, true},
		{"share", Event{Kind: KindShare, Share: share}, true},
		{"retrieve", Event{Kind: KindRetrieve, Share: share}, true},
		{"error", Event{Kind: KindError, Error: failure}, true},
		{"publish without result", Event{Kind: KindPublish}, false},
		{"publish with share", Event{Kind: KindPublish, Result: result, Share: share}, false},
		{"share with result", Event{Kind: KindShare, Result: result}, false},
		{"error without payload", Event{Kind: KindError}, false},
		{"unknown kind", Event{Kind: Kind(9), Result: result}, false},
		{"unknown value type", Event{Kind: KindPublish, Result: &ResultEvent{Type: ValueType(7)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate: unexpected error %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrMalformedEvent) {
				t.Errorf("Validate: got %v, want ErrMalformedEvent", err)
			}
		})
	}
}
