package equipment

// EquipmentType discriminates the concrete equipment kinds
type EquipmentType string

const (
	EquipmentTypeWeapon  EquipmentType = "weapon"
	EquipmentTypeArmor   EquipmentType = "armor"
	EquipmentTypeBasic   EquipmentType = "basic"
	EquipmentTypeUnknown EquipmentType = "unknown"
)

// Equipment is anything a character can carry
type Equipment interface {
	GetEquipmentType() EquipmentType
	GetKey() string
	GetName() string
	GetWeight() float64
}

// Cost is a catalog price in a given coin unit
type Cost struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// BasicEquipment covers adventuring gear, tools, and anything without
// weapon or armor sub-data
type BasicEquipment struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Weight     float64  `json:"weight"`
	Cost       *Cost    `json:"cost,omitempty"`
	Properties []string `json:"properties,omitempty"`
}

func (e *BasicEquipment) GetEquipmentType() EquipmentType {
	return EquipmentTypeBasic
}

func (e *BasicEquipment) GetKey() string {
	return e.Key
}

func (e *BasicEquipment) GetName() string {
	return e.Name
}

func (e *BasicEquipment) GetWeight() float64 {
	return e.Weight
}
