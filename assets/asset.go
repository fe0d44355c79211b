package assets

// Status values used by the asset master database. The intake flow writes
// them in Korean; keep the raw strings so the documents match what the
// dashboard already renders.
const (
	StatusInService       = "운영중"
	StatusComplete        = "완료"
	StatusDelivered       = "도입완료"
	StatusNeedsInspection = "점검필요"
	StatusInRepair        = "수리중"

	ConditionPoor = "불량"
)

// Sentinel bucket keys for assets missing a grouping field. Records are never
// rejected for an empty field; they land in these buckets instead.
const (
	CategoryUnclassified = "미분류"
	ManagerUnassigned    = "미지정"
	StatusUnknown        = "미확인"
	ProjectGeneral       = "일반"
)

// Asset is one inventory item normalized from a Notion page. Built once per
// page during a sync run and read-only afterwards. Field names mirror the
// JSON documents the dashboard consumes.
type Asset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AssetCode   string `json:"assetCode"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`

	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalValue float64 `json:"totalValue"`

	Status    string `json:"status"`
	Condition string `json:"condition"`

	Manager    string `json:"manager"`
	Department string `json:"department"`
	Location   string `json:"location"`

	PurchaseDate     string `json:"purchaseDate"`
	WarrantyExpiry   string `json:"warrantyExpiry"`
	ExpectedDelivery string `json:"expectedDelivery"`

	Supplier     string `json:"supplier"`
	Manufacturer string `json:"manufacturer"`

	Project  string `json:"project"`
	Priority string `json:"priority"`

	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	NotionURL string `json:"notionUrl"`
}

// Value resolves the asset's monetary value. The source total wins when set;
// otherwise it is derived from unit price and quantity (an unset quantity
// counts as one). Never negative.
func (a Asset) Value() float64 {
	if a.TotalValue > 0 {
		return a.TotalValue
	}
	qty := a.Quantity
	if qty <= 0 {
		qty = 1
	}
	if v := a.UnitPrice * float64(qty); v > 0 {
		return v
	}
	return 0
}
