package scene

import "zomshooter/game"

// EquipSlots maps number keys 1..3 onto weapons.
var EquipSlots = []game.WeaponType{
	game.WeaponTypePistol,
	game.WeaponTypeShotgun,
	game.WeaponTypeSMG,
}

// PickEquip resolves the slots pressed this frame to one equip request. When
// several are pressed the highest slot wins.
func PickEquip(pressed []bool) game.WeaponType {
	equip := game.WeaponTypeNone
	for i, down := range pressed {
		if down && i < len(EquipSlots) {
			equip = EquipSlots[i]
		}
	}
	return equip
}
