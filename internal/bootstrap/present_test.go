package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type note struct{ level, message string }

type fakeNotifier struct{ notes []note }

func (f *fakeNotifier) Success(m, _ string) { f.notes = append(f.notes, note{"success", m}) }
func (f *fakeNotifier) Error(m, _ string)   { f.notes = append(f.notes, note{"error", m}) }
func (f *fakeNotifier) Warning(m, _ string) { f.notes = append(f.notes, note{"warning", m}) }

type fakeRouter struct{ paths []string }

func (f *fakeRouter) Navigate(p string) { f.paths = append(f.paths, p) }

func TestPresent(t *testing.T) {
	tests := []struct {
		outcome   Outcome
		wantLevel string
		wantPaths []string
	}{
		{outcome: ready(RouteHome), wantLevel: "success", wantPaths: []string{"/"}},
		{outcome: pending(RouteStores), wantLevel: "warning", wantPaths: []string{"/stores"}},
		{outcome: failed(AuthFailed, "", nil), wantLevel: "error"},
		{outcome: failed(StoreLinkMissing, "", nil), wantLevel: "error"},
		{outcome: failed(StoreDetailsUnavailable, "", nil), wantLevel: "error"},
		{outcome: failed(PersistenceFailed, "", nil), wantLevel: "error"},
		{outcome: failed(UnexpectedError, "", nil), wantLevel: "error"},
		{outcome: Outcome{}, wantLevel: "error"},
	}

	seen := map[string]Kind{}
	for _, tt := range tests {
		t.Run(tt.outcome.Kind.String(), func(t *testing.T) {
			n, r := &fakeNotifier{}, &fakeRouter{}
			Present(tt.outcome, n, r)

			if assert.Len(t, n.notes, 1) {
				assert.Equal(t, tt.wantLevel, n.notes[0].level)
				if tt.outcome.Kind != 0 {
					if k, dup := seen[n.notes[0].message]; dup {
						t.Errorf("message %q shared by %s and %s", n.notes[0].message, k, tt.outcome.Kind)
					}
					seen[n.notes[0].message] = tt.outcome.Kind
				}
			}
			assert.Equal(t, tt.wantPaths, r.paths)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "pending_approval", PendingApproval.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
