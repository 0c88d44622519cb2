package entities

// ItemType classifies a catalog entry.
type ItemType string

const (
	ItemTypeGoods   ItemType = "Goods"
	ItemTypeService ItemType = "Service"
)

// StandardUnits are the units offered by the catalog form; any other text is a custom unit.
var StandardUnits = []string{"Box", "Sqft", "Sqmt", "Kg", "Running Ft"}

// GSTRates is the fixed set of tax rate percentages an item may carry.
var GSTRates = []float64{0, 5, 12, 18, 28}

// Item is a priceable catalog entry stored at /items/{id}.
type Item struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	HSNCode  string   `json:"hsnCode"`
	SaleRate float64  `json:"saleRate"`
	GSTRate  float64  `json:"gstRate"`
}

func (i Item) EntityID() string { return i.ID }

func (i Item) WithID(id string) Item {
	i.ID = id
	return i
}

// IsStandardUnit reports whether unit is one of StandardUnits.
func IsStandardUnit(unit string) bool {
	for _, u := range StandardUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// IsValidGSTRate reports whether rate is one of GSTRates.
func IsValidGSTRate(rate float64) bool {
	for _, r := range GSTRates {
		if r == rate {
			return true
		}
	}
	return false
}
