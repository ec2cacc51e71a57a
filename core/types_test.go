package core_test

import (
	"testing"

	"github.com/katalvlaran/reachrel/core"
)

func TestDirection_Reverse(t *testing.T) {
	t.Parallel()

	if core.Incoming.Reverse() != core.Outgoing {
		t.Error("Incoming.Reverse() != Outgoing")
	}
	if core.Outgoing.Reverse() != core.Incoming {
		t.Error("Outgoing.Reverse() != Incoming")
	}
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	if got := core.Incoming.String(); got != "incoming" {
		t.Errorf("Incoming.String() = %q", got)
	}
	if got := core.Outgoing.String(); got != "outgoing" {
		t.Errorf("Outgoing.String() = %q", got)
	}
}

// index is the bijection every Idx kind must support.
func index[I core.Idx](v I) int { return int(v) }

// Distinct identifier newtypes both satisfy Idx yet stay distinct types;
// mixing them up is a compile error at every generic call site.
func TestIdx_Newtypes(t *testing.T) {
	t.Parallel()

	type regionID uint32
	type pointID uint16

	if index(regionID(7)) != 7 || index(pointID(7)) != 7 {
		t.Error("identifier round-trip mismatch")
	}
}
