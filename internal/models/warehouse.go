package models

// UnknownWarehouse is shown wherever a warehouse id does not resolve to a name.
const UnknownWarehouse = "Unknown"

// Warehouse is a row of the warehouses table. Timestamps keep the stored text form.
type Warehouse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	ModifiedBy string `json:"modified_by"`
}

// DeletePolicy decides what happens to products that reference a deleted warehouse.
type DeletePolicy string

const (
	// DeletePolicyOrphan removes the warehouse and leaves referencing products untouched.
	DeletePolicyOrphan DeletePolicy = "orphan"
	// DeletePolicyRestrict refuses to delete a warehouse that still has products.
	DeletePolicyRestrict DeletePolicy = "restrict"
	// DeletePolicyCascade deletes the referencing products in the same transaction.
	DeletePolicyCascade DeletePolicy = "cascade"
)

func ParseDeletePolicy(s string) (DeletePolicy, bool) {
	switch DeletePolicy(s) {
	case DeletePolicyOrphan, DeletePolicyRestrict, DeletePolicyCascade:
		return DeletePolicy(s), true
	case "":
		return DeletePolicyOrphan, true
	default:
		return "", false
	}
}
