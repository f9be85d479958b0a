package domain

// Result is the outcome of a player action, intended for direct toast
// display. Message is literal user-readable text, not an error code.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Toast messages reproduced verbatim by the action in question.
const (
	MsgAlreadyClaimed  = "Daily chest already claimed."
	MsgChestClaimedFmt = "Daily chest: +%d coins, +%d gems (streak %d)"

	MsgUnknownItem   = "Unknown item"
	MsgNotOwned      = "You don't own this item."
	MsgEquippedFmt   = "Equipped %s"
	MsgUnequippedFmt = "Unequipped %s"
	MsgSelectUnequip = "Select item to unequip"
	MsgSelectItem    = "Select an item."
	MsgAlreadyOwned  = "Already owned."
	MsgCannotAfford  = "Not enough coins/gems."
	MsgBoughtFmt     = "Bought %s"

	MsgFed       = "Fed 🍗"
	MsgSlept     = "Slept 😴"
	MsgCleaned   = "Cleaned 🧼"
	MsgPetIsDead = "Pet is dead. Revive in Shop."
	MsgNotDead   = "Not dead."
	MsgNeedGems  = "Need 10 gems to revive."
	MsgRevived   = "Revived ✅"

	MsgRerolled   = "Shop rerolled (-2 gems)"
	MsgNeedReroll = "Need 2 gems to reroll"
)
