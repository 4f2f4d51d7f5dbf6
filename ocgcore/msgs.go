package ocgcore

// Core message numbers.
const (
	MsgRetry             uint8 = 1
	MsgHint              uint8 = 2
	MsgWaiting           uint8 = 3
	MsgStart             uint8 = 4
	MsgWin               uint8 = 5
	MsgUpdateData        uint8 = 6
	MsgUpdateCard        uint8 = 7
	MsgRequestDeck       uint8 = 8
	MsgSelectBattleCmd   uint8 = 10
	MsgSelectIdleCmd     uint8 = 11
	MsgSelectEffectYn    uint8 = 12
	MsgSelectYesNo       uint8 = 13
	MsgSelectOption      uint8 = 14
	MsgSelectCard        uint8 = 15
	MsgSelectChain       uint8 = 16
	MsgSelectPlace       uint8 = 18
	MsgSelectPosition    uint8 = 19
	MsgSelectTribute     uint8 = 20
	MsgSortChain         uint8 = 21
	MsgSelectCounter     uint8 = 22
	MsgSelectSum         uint8 = 23
	MsgSelectDisfield    uint8 = 24
	MsgSortCard          uint8 = 25
	MsgSelectUnselect    uint8 = 26
	MsgConfirmDeckTop    uint8 = 30
	MsgConfirmCards      uint8 = 31
	MsgShuffleDeck       uint8 = 32
	MsgShuffleHand       uint8 = 33
	MsgRefreshDeck       uint8 = 34
	MsgSwapGraveDeck     uint8 = 35
	MsgShuffleSetCard    uint8 = 36
	MsgReverseDeck       uint8 = 37
	MsgDeckTop           uint8 = 38
	MsgShuffleExtra      uint8 = 39
	MsgNewTurn           uint8 = 40
	MsgNewPhase          uint8 = 41
	MsgConfirmExtraTop   uint8 = 42
	MsgMove              uint8 = 50
	MsgPosChange         uint8 = 53
	MsgSet               uint8 = 54
	MsgSwap              uint8 = 55
	MsgFieldDisabled     uint8 = 56
	MsgSummoning         uint8 = 60
	MsgSummoned          uint8 = 61
	MsgSpSummoning       uint8 = 62
	MsgSpSummoned        uint8 = 63
	MsgFlipSummoning     uint8 = 64
	MsgFlipSummoned      uint8 = 65
	MsgChaining          uint8 = 70
	MsgChained           uint8 = 71
	MsgChainSolving      uint8 = 72
	MsgChainSolved       uint8 = 73
	MsgChainEnd          uint8 = 74
	MsgChainNegated      uint8 = 75
	MsgChainDisabled     uint8 = 76
	MsgCardSelected      uint8 = 80
	MsgRandomSelected    uint8 = 81
	MsgBecomeTarget      uint8 = 83
	MsgDraw              uint8 = 90
	MsgDamage            uint8 = 91
	MsgRecover           uint8 = 92
	MsgEquip             uint8 = 93
	MsgLPUpdate          uint8 = 94
	MsgUnequip           uint8 = 95
	MsgCardTarget        uint8 = 96
	MsgCancelTarget      uint8 = 97
	MsgPayLPCost         uint8 = 100
	MsgAddCounter        uint8 = 101
	MsgRemoveCounter     uint8 = 102
	MsgAttack            uint8 = 110
	MsgBattle            uint8 = 111
	MsgAttackDisabled    uint8 = 112
	MsgDamageStepStart   uint8 = 113
	MsgDamageStepEnd     uint8 = 114
	MsgMissedEffect      uint8 = 120
	MsgBeChainTarget     uint8 = 121
	MsgCreateRelation    uint8 = 122
	MsgReleaseRelation   uint8 = 123
	MsgTossCoin          uint8 = 130
	MsgTossDice          uint8 = 131
	MsgRockPaperScissors uint8 = 132
	MsgHandRes           uint8 = 133
	MsgAnnounceRace      uint8 = 140
	MsgAnnounceAttrib    uint8 = 141
	MsgAnnounceCard      uint8 = 142
	MsgAnnounceNumber    uint8 = 143
	MsgCardHint          uint8 = 160
	MsgTagSwap           uint8 = 161
	MsgReloadField       uint8 = 162
	MsgAIName            uint8 = 163
	MsgShowHint          uint8 = 164
	MsgPlayerHint        uint8 = 165
	MsgMatchKill         uint8 = 170
	MsgCustomMsg         uint8 = 180
	MsgRemoveCards       uint8 = 190

	// MsgOldReplayMode ends the message stream of a replay.
	MsgOldReplayMode uint8 = 231
)

var MsgDictionary = map[uint8]string{
	MsgRetry:             "retry",
	MsgHint:              "hint",
	MsgWaiting:           "waiting",
	MsgStart:             "start",
	MsgWin:               "win",
	MsgUpdateData:        "update_data",
	MsgUpdateCard:        "update_card",
	MsgRequestDeck:       "request_deck",
	MsgSelectBattleCmd:   "select_battlecmd",
	MsgSelectIdleCmd:     "select_idlecmd",
	MsgSelectEffectYn:    "select_effectyn",
	MsgSelectYesNo:       "select_yesno",
	MsgSelectOption:      "select_option",
	MsgSelectCard:        "select_card",
	MsgSelectChain:       "select_chain",
	MsgSelectPlace:       "select_place",
	MsgSelectPosition:    "select_position",
	MsgSelectTribute:     "select_tribute",
	MsgSortChain:         "sort_chain",
	MsgSelectCounter:     "select_counter",
	MsgSelectSum:         "select_sum",
	MsgSelectDisfield:    "select_disfield",
	MsgSortCard:          "sort_card",
	MsgSelectUnselect:    "select_unselect_card",
	MsgConfirmDeckTop:    "confirm_decktop",
	MsgConfirmCards:      "confirm_cards",
	MsgShuffleDeck:       "shuffle_deck",
	MsgShuffleHand:       "shuffle_hand",
	MsgRefreshDeck:       "refresh_deck",
	MsgSwapGraveDeck:     "swap_grave_deck",
	MsgShuffleSetCard:    "shuffle_set_card",
	MsgReverseDeck:       "reverse_deck",
	MsgDeckTop:           "deck_top",
	MsgShuffleExtra:      "shuffle_extra",
	MsgNewTurn:           "new_turn",
	MsgNewPhase:          "new_phase",
	MsgConfirmExtraTop:   "confirm_extratop",
	MsgMove:              "move",
	MsgPosChange:         "pos_change",
	MsgSet:               "set",
	MsgSwap:              "swap",
	MsgFieldDisabled:     "field_disabled",
	MsgSummoning:         "summoning",
	MsgSummoned:          "summoned",
	MsgSpSummoning:       "spsummoning",
	MsgSpSummoned:        "spsummoned",
	MsgFlipSummoning:     "flipsummoning",
	MsgFlipSummoned:      "flipsummoned",
	MsgChaining:          "chaining",
	MsgChained:           "chained",
	MsgChainSolving:      "chain_solving",
	MsgChainSolved:       "chain_solved",
	MsgChainEnd:          "chain_end",
	MsgChainNegated:      "chain_negated",
	MsgChainDisabled:     "chain_disabled",
	MsgCardSelected:      "card_selected",
	MsgRandomSelected:    "random_selected",
	MsgBecomeTarget:      "become_target",
	MsgDraw:              "draw",
	MsgDamage:            "damage",
	MsgRecover:           "recover",
	MsgEquip:             "equip",
	MsgLPUpdate:          "lpupdate",
	MsgUnequip:           "unequip",
	MsgCardTarget:        "card_target",
	MsgCancelTarget:      "cancel_target",
	MsgPayLPCost:         "pay_lpcost",
	MsgAddCounter:        "add_counter",
	MsgRemoveCounter:     "remove_counter",
	MsgAttack:            "attack",
	MsgBattle:            "battle",
	MsgAttackDisabled:    "attack_disabled",
	MsgDamageStepStart:   "damage_step_start",
	MsgDamageStepEnd:     "damage_step_end",
	MsgMissedEffect:      "missed_effect",
	MsgBeChainTarget:     "be_chain_target",
	MsgCreateRelation:    "create_relation",
	MsgReleaseRelation:   "release_relation",
	MsgTossCoin:          "toss_coin",
	MsgTossDice:          "toss_dice",
	MsgRockPaperScissors: "rock_paper_scissors",
	MsgHandRes:           "hand_res",
	MsgAnnounceRace:      "announce_race",
	MsgAnnounceAttrib:    "announce_attrib",
	MsgAnnounceCard:      "announce_card",
	MsgAnnounceNumber:    "announce_number",
	MsgCardHint:          "card_hint",
	MsgTagSwap:           "tag_swap",
	MsgReloadField:       "reload_field",
	MsgAIName:            "ai_name",
	MsgShowHint:          "show_hint",
	MsgPlayerHint:        "player_hint",
	MsgMatchKill:         "match_kill",
	MsgCustomMsg:         "custom_msg",
	MsgRemoveCards:       "remove_cards",
}

// Known reports whether n is a core message number.
func Known(n uint8) bool {
	_, ok := MsgDictionary[n]
	return ok
}
