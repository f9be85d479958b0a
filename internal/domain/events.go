package domain

// Telemetry event names recorded in SaveState.Events and exported as
// prometheus counters.
const (
	EventPetDied    = "pet_died"
	EventDailyReset = "daily_reset"
	EventDailyChest = "daily_chest"
	EventEquip      = "equip"
	EventUnequip    = "unequip"
	EventBuy        = "buy"
	EventShopRotate = "shop_rotate"
	EventFeed       = "feed"
	EventSleep      = "sleep"
	EventClean      = "clean"
	EventPlay       = "play"
	EventRevive     = "revive"
)
