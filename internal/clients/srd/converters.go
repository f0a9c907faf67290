package srd

import (
	"strings"

	"github.com/KirkDiggler/dnd-character-api/internal/domain/equipment"
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func apiEquipmentInterfaceToEquipment(input dnd5e.EquipmentInterface) equipment.Equipment {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Equipment:
		return apiEquipmentToBasic(equip)
	case *apiEntities.Weapon:
		return apiWeaponToWeapon(equip)
	case *apiEntities.Armor:
		return apiArmorToArmor(equip)
	default:
		return nil
	}
}

func apiEquipmentToBasic(input *apiEntities.Equipment) *equipment.BasicEquipment {
	return &equipment.BasicEquipment{
		Key:    input.Key,
		Name:   input.Name,
		Weight: float64(input.Weight),
		Cost:   apiCostToCost(input.Cost),
	}
}

func apiWeaponToWeapon(input *apiEntities.Weapon) *equipment.Weapon {
	weapon := &equipment.Weapon{
		Base: equipment.BasicEquipment{
			Key:    input.Key,
			Name:   input.Name,
			Weight: float64(input.Weight),
			Cost:   apiCostToCost(input.Cost),
		},
		WeaponCategory: equipment.WeaponCategory(strings.ToLower(input.WeaponCategory)),
		WeaponRange:    strings.ToLower(input.WeaponRange),
		Properties:     apiPropertiesToProperties(input.Properties),
	}

	if input.Damage != nil {
		weapon.DamageDice = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			weapon.DamageType = input.Damage.DamageType.Key
		}
	}

	return weapon
}

func apiArmorToArmor(input *apiEntities.Armor) *equipment.Armor {
	var armorType equipment.ArmorType
	switch strings.ToLower(input.ArmorCategory) {
	case "light":
		armorType = equipment.ArmorTypeLight
	case "medium":
		armorType = equipment.ArmorTypeMedium
	case "heavy":
		armorType = equipment.ArmorTypeHeavy
	case "shield":
		armorType = equipment.ArmorTypeShield
	default:
		armorType = equipment.ArmorTypeUnknown
	}

	armor := &equipment.Armor{
		Base: equipment.BasicEquipment{
			Key:    input.Key,
			Name:   input.Name,
			Weight: float64(input.Weight),
			Cost:   apiCostToCost(input.Cost),
		},
		ArmorType:           armorType,
		StealthDisadvantage: input.StealthDisadvantage,
	}

	// The API only says whether DEX applies, medium armor's +2 cap is
	// handled by the calculator
	armor.BaseAC = input.ArmorClass.Base

	return armor
}

func apiPropertiesToProperties(input []*apiEntities.ReferenceItem) []string {
	props := make([]string, 0, len(input))
	for _, p := range input {
		if p == nil || p.Key == "" {
			continue
		}
		props = append(props, p.Key)
	}
	return props
}

func apiCostToCost(input *apiEntities.Cost) *equipment.Cost {
	if input == nil {
		return nil
	}
	return &equipment.Cost{
		Quantity: input.Quantity,
		Unit:     input.Unit,
	}
}
