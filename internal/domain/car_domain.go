package domain

import "fmt"

// FeatureColumns is the column layout the trained model expects, in order.
var FeatureColumns = []string{"year", "mileage", "max_power"}

// CarInputs is the triple entered on the form. A nil field is unset.
type CarInputs struct {
	Year     *float64 `json:"year"`
	Mileage  *float64 `json:"mileage"`
	MaxPower *float64 `json:"max_power"`
}

func (in CarInputs) Complete() bool {
	return in.Year != nil && in.Mileage != nil && in.MaxPower != nil
}

// FeatureRecord is a single labeled row passed to a model.
type FeatureRecord struct {
	Columns []string
	Values  []float64
}

func NewFeatureRecord(in CarInputs) (FeatureRecord, error) {
	if !in.Complete() {
		return FeatureRecord{}, ErrMissingInput
	}

	columns := make([]string, len(FeatureColumns))
	copy(columns, FeatureColumns)

	return FeatureRecord{
		Columns: columns,
		Values:  []float64{*in.Year, *in.Mileage, *in.MaxPower},
	}, nil
}

// Value returns the value stored under column.
func (r FeatureRecord) Value(column string) (float64, error) {
	for i, c := range r.Columns {
		if c == column {
			if i >= len(r.Values) {
				break
			}
			return r.Values[i], nil
		}
	}
	return 0, fmt.Errorf("%w: no value for column %q", ErrSchemaMismatch, column)
}

// PriceEstimate is the outcome of one submit.
type PriceEstimate struct {
	Message string
	Price   float64
	Err     error
}

func (e PriceEstimate) OK() bool {
	return e.Err == nil
}
