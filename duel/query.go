package duel

import (
	"slices"

	"yrp-lite/card"
)

type Counter struct {
	Type  uint16
	Count uint16
}

// QueryData is the reported state of one card. A nil field was not part of
// the query.
type QueryData struct {
	Owner      *uint8
	IsPublic   *bool
	IsHidden   *bool
	Position   *card.Position
	Cover      *card.Code
	Status     *uint32
	Code       *card.Code
	Alias      *card.Code
	Type       *uint32
	Level      *uint32
	XyzRank    *uint32
	Attribute  *uint32
	Race       *uint64
	BaseAtk    *int32
	Atk        *int32
	BaseDef    *int32
	Def        *int32
	PendLScale *uint32
	PendRScale *uint32
	LinkRate   *uint32
	LinkArrow  *uint32
	Counters   []Counter
	Equipped   *card.Place
	Relations  []card.Place
}

// QueryCacheHit has one bit per QueryData field. A set bit means the query
// repeated a value the board already knew.
type QueryCacheHit uint32

const (
	HitOwner QueryCacheHit = 1 << iota
	HitIsPublic
	HitIsHidden
	HitPosition
	HitCover
	HitStatus
	HitCode
	HitAlias
	HitType
	HitLevel
	HitXyzRank
	HitAttribute
	HitRace
	HitBaseAtk
	HitAtk
	HitBaseDef
	HitDef
	HitPendLScale
	HitPendRScale
	HitLinkRate
	HitLinkArrow
	HitCounters
	HitEquipped
	HitRelations
)

var queryClearers = [...]struct {
	hit   QueryCacheHit
	clear func(*QueryData)
}{
	{HitOwner, func(d *QueryData) { d.Owner = nil }},
	{HitIsPublic, func(d *QueryData) { d.IsPublic = nil }},
	{HitIsHidden, func(d *QueryData) { d.IsHidden = nil }},
	{HitPosition, func(d *QueryData) { d.Position = nil }},
	{HitCover, func(d *QueryData) { d.Cover = nil }},
	{HitStatus, func(d *QueryData) { d.Status = nil }},
	{HitCode, func(d *QueryData) { d.Code = nil }},
	{HitAlias, func(d *QueryData) { d.Alias = nil }},
	{HitType, func(d *QueryData) { d.Type = nil }},
	{HitLevel, func(d *QueryData) { d.Level = nil }},
	{HitXyzRank, func(d *QueryData) { d.XyzRank = nil }},
	{HitAttribute, func(d *QueryData) { d.Attribute = nil }},
	{HitRace, func(d *QueryData) { d.Race = nil }},
	{HitBaseAtk, func(d *QueryData) { d.BaseAtk = nil }},
	{HitAtk, func(d *QueryData) { d.Atk = nil }},
	{HitBaseDef, func(d *QueryData) { d.BaseDef = nil }},
	{HitDef, func(d *QueryData) { d.Def = nil }},
	{HitPendLScale, func(d *QueryData) { d.PendLScale = nil }},
	{HitPendRScale, func(d *QueryData) { d.PendRScale = nil }},
	{HitLinkRate, func(d *QueryData) { d.LinkRate = nil }},
	{HitLinkArrow, func(d *QueryData) { d.LinkArrow = nil }},
	{HitCounters, func(d *QueryData) { d.Counters = nil }},
	{HitEquipped, func(d *QueryData) { d.Equipped = nil }},
	{HitRelations, func(d *QueryData) { d.Relations = nil }},
}

// Clear drops every field whose bit is set in hits.
func (d *QueryData) Clear(hits QueryCacheHit) {
	if hits == 0 {
		return
	}
	for _, c := range queryClearers {
		if hits&c.hit != 0 {
			c.clear(d)
		}
	}
}

// IsEmpty reports whether no field is present.
func (d *QueryData) IsEmpty() bool {
	return d.Owner == nil && d.IsPublic == nil && d.IsHidden == nil &&
		d.Position == nil && d.Cover == nil && d.Status == nil && d.Code == nil &&
		d.Alias == nil && d.Type == nil && d.Level == nil && d.XyzRank == nil &&
		d.Attribute == nil && d.Race == nil && d.BaseAtk == nil && d.Atk == nil &&
		d.BaseDef == nil && d.Def == nil && d.PendLScale == nil && d.PendRScale == nil &&
		d.LinkRate == nil && d.LinkArrow == nil && d.Counters == nil &&
		d.Equipped == nil && d.Relations == nil
}

// merge folds the reported fields of q into the cached state and returns
// the bits of fields whose value did not change.
func (d *QueryData) merge(q *QueryData) QueryCacheHit {
	var hits QueryCacheHit
	hits |= cacheField(&d.Owner, q.Owner, HitOwner)
	hits |= cacheField(&d.IsPublic, q.IsPublic, HitIsPublic)
	hits |= cacheField(&d.IsHidden, q.IsHidden, HitIsHidden)
	hits |= cacheField(&d.Position, q.Position, HitPosition)
	hits |= cacheField(&d.Cover, q.Cover, HitCover)
	hits |= cacheField(&d.Status, q.Status, HitStatus)
	hits |= cacheField(&d.Code, q.Code, HitCode)
	hits |= cacheField(&d.Alias, q.Alias, HitAlias)
	hits |= cacheField(&d.Type, q.Type, HitType)
	hits |= cacheField(&d.Level, q.Level, HitLevel)
	hits |= cacheField(&d.XyzRank, q.XyzRank, HitXyzRank)
	hits |= cacheField(&d.Attribute, q.Attribute, HitAttribute)
	hits |= cacheField(&d.Race, q.Race, HitRace)
	hits |= cacheField(&d.BaseAtk, q.BaseAtk, HitBaseAtk)
	hits |= cacheField(&d.Atk, q.Atk, HitAtk)
	hits |= cacheField(&d.BaseDef, q.BaseDef, HitBaseDef)
	hits |= cacheField(&d.Def, q.Def, HitDef)
	hits |= cacheField(&d.PendLScale, q.PendLScale, HitPendLScale)
	hits |= cacheField(&d.PendRScale, q.PendRScale, HitPendRScale)
	hits |= cacheField(&d.LinkRate, q.LinkRate, HitLinkRate)
	hits |= cacheField(&d.LinkArrow, q.LinkArrow, HitLinkArrow)
	hits |= cacheField(&d.Equipped, q.Equipped, HitEquipped)
	hits |= cacheSlice(&d.Counters, q.Counters, HitCounters)
	hits |= cacheSlice(&d.Relations, q.Relations, HitRelations)
	return hits
}

func cacheField[T comparable](dst **T, v *T, hit QueryCacheHit) QueryCacheHit {
	if v == nil {
		return 0
	}
	if *dst != nil && **dst == *v {
		return hit
	}
	x := *v
	*dst = &x
	return 0
}

func cacheSlice[T comparable](dst *[]T, v []T, hit QueryCacheHit) QueryCacheHit {
	if v == nil {
		return 0
	}
	if *dst != nil && slices.Equal(*dst, v) {
		return hit
	}
	*dst = append(make([]T, 0, len(v)), v...)
	return 0
}
