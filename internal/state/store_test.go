package state

import (
	"errors"
	"testing"

	"github.com/herderapp/herder/internal/ollama"
)

func TestUpdate_SuccessResetsFailures(t *testing.T) {
	store := &Store{}
	store.Update("", nil, errors.New("refused"))
	store.Update("0.5.4", []ollama.ProcessModel{{Name: "phi3:3.8b"}}, nil)

	snap := store.Snapshot()
	if !snap.Reachable {
		t.Fatalf("Reachable = false, want true")
	}
	if snap.ServerVersion != "0.5.4" {
		t.Fatalf("ServerVersion = %q, want 0.5.4", snap.ServerVersion)
	}
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if len(snap.Running) != 1 {
		t.Fatalf("Running = %v, want one model", snap.Running)
	}
}

func TestUpdate_FailuresKeepPriorData(t *testing.T) {
	store := &Store{}
	store.Update("0.5.4", []ollama.ProcessModel{{Name: "phi3:3.8b"}}, nil)

	store.Update("", nil, errors.New("connection refused"))
	snap := store.Snapshot()
	if snap.ServerVersion != "0.5.4" {
		t.Fatalf("ServerVersion lost after failed poll: %q", snap.ServerVersion)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
	if snap.IsOffline() {
		t.Fatalf("IsOffline after one failure, want threshold of two")
	}

	store.Update("", nil, errors.New("connection refused"))
	snap = store.Snapshot()
	if !snap.IsOffline() {
		t.Fatalf("IsOffline = false after two failures")
	}
	if snap.Reachable {
		t.Fatalf("Reachable = true after going offline")
	}
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	store := &Store{}
	store.Update("0.5.4", []ollama.ProcessModel{{Name: "a"}}, nil)

	snap := store.Snapshot()
	snap.Running[0].Name = "mutated"

	if store.Snapshot().Running[0].Name != "a" {
		t.Fatalf("store mutated through snapshot copy")
	}
}
