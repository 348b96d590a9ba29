package entities

// ProductionEvent represents one unit of planned work: produce Quantity units
// of a product, needed by TargetDay (0–4). Events carry the product attributes
// the allocator needs so placement does not go back to the catalog.
type ProductionEvent struct {
	Code        ProductCode
	Name        string
	TargetDay   int
	Quantity    Quantity
	UnitSeconds int
	Eligibility ShiftEligibility
	MinBatch    Quantity
	Reasons     []string
}
