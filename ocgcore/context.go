package ocgcore

import "yrp-lite/card"

// Context is the duel state the encoder consults while translating
// messages whose meaning depends on what is already on the board.
type Context interface {
	PileSize(con uint8, loc card.Location) int
	MatchWinReason() uint32
	SetMatchWinReason(reason uint32)
	HasXyzMat(p card.Place) bool
	XyzLeft(p card.Place) (card.Place, bool)
	XyzMatDefer(p card.Place)
	TakeDeferredXyzMat() []card.Place
	SetXyzLeft(dest, src card.Place)
}
