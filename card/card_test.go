package card

import "testing"

func TestDeckString_MainThenExtra(t *testing.T) {
	d := Deck{
		Main:  CardList{89631139, 89631139, 46986414},
		Extra: CardList{44508094},
	}
	got := d.String()
	want := "#main 89631139 89631139 46986414 #extra 44508094"
	if got != want {
		t.Fatalf("unexpected deck line: got=%q want=%q", got, want)
	}
}

func TestDeckString_EmptyPiles(t *testing.T) {
	if got := (Deck{}).String(); got != "#main #extra" {
		t.Fatalf("unexpected empty deck line: %q", got)
	}
	if got := RulesLine(nil); got != "#rules" {
		t.Fatalf("unexpected empty rules line: %q", got)
	}
	if got := RulesLine(CardList{1, 2}); got != "#rules 1 2" {
		t.Fatalf("unexpected rules line: %q", got)
	}
}

func TestPlaceLess_OrdersByEveryCoordinate(t *testing.T) {
	a := NewPlace(0, LocationMZone, 1)
	b := NewPlace(0, LocationMZone, 2)
	if !a.Less(b) || b.Less(a) {
		t.Fatalf("expected %v < %v", a, b)
	}
	if !a.Less(a.Material(0)) {
		t.Fatalf("a zone should sort before its materials")
	}
	if !NewPlace(0, LocationGrave, 9).Less(NewPlace(1, LocationDeck, 0)) {
		t.Fatalf("controller must dominate the ordering")
	}
	if a.Material(3).Zone() != a {
		t.Fatalf("Zone() should strip the material index")
	}
}

func TestLocation_OverlayBits(t *testing.T) {
	l := LocationOverlay | LocationMZone
	if !l.HasOverlay() {
		t.Fatalf("expected overlay bit")
	}
	if l.WithoutOverlay() != LocationMZone {
		t.Fatalf("unexpected stripped location: %v", l.WithoutOverlay())
	}
	if !LocationGrave.IsPile() || LocationMZone.IsPile() {
		t.Fatalf("unexpected pile classification")
	}
}

func TestCardListWith_DoesNotAlias(t *testing.T) {
	deck := make(CardList, 2, 8)
	deck[0], deck[1] = 1, 2
	all := deck.With(CardList{3})
	all[0] = 9
	if deck[0] != 1 || len(all) != 3 || all[2] != 3 {
		t.Fatalf("unexpected lists: %v %v", deck, all)
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{PositionFaceDownDefense.String(), "face-down defense"},
		{Position(0x3).String(), "position(0x3)"},
		{PhaseMain2.String(), "main2"},
		{Phase(0x400).String(), "phase(0x400)"},
		{Reason(0).String(), "none"},
		{ReasonDestroy.String(), "destroy"},
		{(ReasonMaterial | ReasonXyz).String(), "material|xyz"},
		{(ReasonRelease | ReasonSummon | ReasonEffect | ReasonCost).String(), "release|summon|effect|cost"},
		{(ReasonCost | Reason(0x4)).String(), "0x4|cost"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("got %q want %q", tc.got, tc.want)
		}
	}
}

func TestLocationIsZone(t *testing.T) {
	if !LocationMZone.IsZone() || !LocationSZone.IsZone() {
		t.Fatalf("monster and spell zones are zones")
	}
	if LocationHand.IsZone() || LocationOnField.IsZone() {
		t.Fatalf("hand and combined masks are not zones")
	}
}
