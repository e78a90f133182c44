package match

// synonymRule adds a flat weight when the normalized field token contains
// Field and the normalized column name contains Column. Rules are
// independent and stack. Adding a synonym is a data change, not a code
// change.
type synonymRule struct {
	Field  string
	Column string
	Weight float64
}

// Weights are empirically tuned against the purchase-order reporting domain.
// Treat as given constants.
var synonymRules = []synonymRule{
	{Field: "qty", Column: "quantity", Weight: 0.2},
	{Field: "uom", Column: "unitofmeasure", Weight: 0.2},
	{Field: "onhand", Column: "onhand", Weight: 0.3},
	{Field: "revenue", Column: "amount", Weight: 0.15},
	{Field: "customer", Column: "customer", Weight: 0.15},
	{Field: "sales", Column: "sales", Weight: 0.15},
}
