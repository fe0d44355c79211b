package notion

import (
	"strconv"

	"smartcity-asset-sync/assets"
)

// Page is the record envelope returned by the database query endpoint.
// System fields (id, timestamps, url) live here, everything else under
// Properties.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	URL            string              `json:"url"`
	Properties     map[string]Property `json:"properties"`
}

// fieldAliases maps each asset field to the property names it may be stored
// under, in probe order. The Slack intake flow creates Korean column names;
// the English aliases cover columns added by hand in Notion.
var fieldAliases = map[string][]string{
	"name":        {"자산명", "Name", "이름"},
	"assetCode":   {"자산코드", "Asset Code", "코드"},
	"category":    {"카테고리", "Category", "분류"},
	"subCategory": {"세부분류", "Sub Category"},

	"quantity":   {"수량", "Quantity"},
	"unitPrice":  {"단가", "Unit Price"},
	"totalValue": {"총액", "Total Value"},

	"status":    {"상태", "Status"},
	"condition": {"컨디션", "Condition"},

	"manager":    {"담당자", "Manager"},
	"department": {"담당부서", "Department"},
	"location":   {"위치", "Location"},

	"purchaseDate":     {"구매일", "Purchase Date"},
	"warrantyExpiry":   {"보증만료일", "Warranty Expiry"},
	"expectedDelivery": {"도입예정일", "Expected Delivery"},

	"supplier":     {"공급업체", "Supplier"},
	"manufacturer": {"제조사", "Manufacturer"},

	"project":  {"연관프로젝트", "Project"},
	"priority": {"우선순위", "Priority"},

	"notes": {"비고", "Notes"},
	"tags":  {"태그", "Tags"},
}

// MapRecord converts one raw page into the canonical Asset. Pure: no network,
// no shared state. Missing or malformed fields fall back to their documented
// defaults rather than failing the record.
func MapRecord(page Page) assets.Asset {
	get := func(field string) interface{} {
		for _, key := range fieldAliases[field] {
			if prop, ok := page.Properties[key]; ok {
				return Extract(&prop)
			}
		}
		return nil
	}

	return assets.Asset{
		ID:          page.ID,
		Name:        asString(get("name")),
		AssetCode:   asString(get("assetCode")),
		Category:    asString(get("category")),
		SubCategory: asString(get("subCategory")),

		Quantity:   asInt(get("quantity"), 1),
		UnitPrice:  asFloat(get("unitPrice")),
		TotalValue: asFloat(get("totalValue")),

		Status:    asStringDefault(get("status"), assets.StatusInService),
		Condition: asString(get("condition")),

		Manager:    asString(get("manager")),
		Department: asString(get("department")),
		Location:   asString(get("location")),

		PurchaseDate:     asString(get("purchaseDate")),
		WarrantyExpiry:   asString(get("warrantyExpiry")),
		ExpectedDelivery: asString(get("expectedDelivery")),

		Supplier:     asString(get("supplier")),
		Manufacturer: asString(get("manufacturer")),

		Project:  asString(get("project")),
		Priority: asString(get("priority")),

		Notes: asString(get("notes")),
		Tags:  asStrings(get("tags")),

		CreatedAt: page.CreatedTime,
		UpdatedAt: page.LastEditedTime,
		NotionURL: page.URL,
	}
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

func asStringDefault(v interface{}, def string) string {
	if s := asString(v); s != "" {
		return s
	}
	return def
}

func asFloat(v interface{}) float64 {
	if f, ok := v.(float64); ok && f >= 0 {
		return f
	}
	return 0
}

func asInt(v interface{}, def int) int {
	if f, ok := v.(float64); ok && f >= 0 {
		return int(f)
	}
	return def
}

func asStrings(v interface{}) []string {
	if ss, ok := v.([]string); ok {
		return ss
	}
	return []string{}
}
