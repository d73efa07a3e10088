package models

// Vehicle represents a tracked car and the maintenance items kept for it.
type Vehicle struct {
	Name    string            `bson:"name" json:"name" yaml:"name"`
	Mileage int               `bson:"mileage" json:"mileage" yaml:"mileage"`
	Items   []MaintenanceItem `bson:"items" json:"items" yaml:"items"`
}

// Item returns the index of the named item, or -1 if the vehicle has none by that name.
func (v *Vehicle) Item(name string) int {
	for i := range v.Items {
		if v.Items[i].Name == name {
			return i
		}
	}
	return -1
}

// ItemNames returns the item names in insertion order.
func (v *Vehicle) ItemNames() []string {
	names := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		names = append(names, item.Name)
	}
	return names
}

// Clone returns a deep copy of the vehicle.
func (v Vehicle) Clone() Vehicle {
	out := Vehicle{Name: v.Name, Mileage: v.Mileage}
	if v.Items != nil {
		out.Items = make([]MaintenanceItem, len(v.Items))
		for i, item := range v.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}
