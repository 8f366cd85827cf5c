package format

// Result bundles every derivation for one product name.
type Result struct {
	Token       string   `json:"format,omitempty"`
	Category    Category `json:"category"`
	Quantity    float64  `json:"quantity,omitempty"`
	Unit        Unit     `json:"unit,omitempty"`
	HasQuantity bool     `json:"has_quantity"`
	UnitType    Unit     `json:"unit_type,omitempty"`
}

// Parse runs the whole pipeline on a raw product name. The quantity and unit
// type are computed from the extracted token only.
func Parse(raw string) Result {
	token, ok := ExtractFormat(raw)
	if !ok {
		return Result{Category: CategoryNone}
	}

	res := Result{
		Token:    token,
		Category: ClassifyFormat(token),
	}
	if q, ok := ComputeQuantity(token); ok {
		res.Quantity = q.Value
		res.Unit = q.Unit
		res.HasQuantity = true
	}
	if u, ok := InferUnitType(token); ok {
		res.UnitType = u
	}
	return res
}
