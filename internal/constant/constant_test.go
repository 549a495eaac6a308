package constant_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/constant"
)

// TestString_Snapshot snapshots the textual value printer across one
// representative value of every kind.
func TestString_Snapshot(t *testing.T) {
	values := []constant.Constant{
		constant.NewNull(),
		constant.NewHintedNull(ast.NewTypePath("datum", "thing")),
		constant.Int{Value: -7},
		constant.Float{Value: 3.5},
		constant.NewString(`say "hi"`),
		constant.Resource{Value: "icons/mob.dmi"},
		constant.List{Elements: []constant.Entry{
			{Key: constant.NewString("a")},
			{Key: constant.NewString("b"), Value: constant.Int{Value: 1}},
		}},
		constant.Prefab{
			Path: ast.NewTypePath("obj", "item"),
			Vars: []constant.Var{{Name: "amount", Value: constant.Int{Value: 3}}},
		},
		constant.New{Type: constant.NewRef{Implicit: true}},
		constant.Call{Fn: constant.FnMatrix, Args: []constant.Constant{constant.Int{Value: 1}}},
	}

	for _, v := range values {
		snaps.MatchSnapshot(t, string(v.Kind()), v.String())
	}
}

func TestNewString_NormalizesToNFC(t *testing.T) {
	// "é" as e + combining acute (NFD) should normalize to the precomposed
	// form (NFC) on construction, per the String(utf8) invariant in §3.
	decomposed := "é"
	s := constant.NewString(decomposed)
	if s.Value == decomposed {
		t.Fatalf("expected NewString to normalize %q to NFC, got it unchanged", decomposed)
	}
	if s.Value != "é" {
		t.Fatalf("expected NFC form %q, got %q", "é", s.Value)
	}
}
