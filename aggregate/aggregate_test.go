package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcity-asset-sync/assets"
)

func TestRunIsDeterministic(t *testing.T) {
	list := []assets.Asset{
		{Name: "SDDC 코어 스위치", Category: "네트워크", Project: "SDDC", Status: assets.StatusInService, TotalValue: 100, WarrantyExpiry: day(-3)},
		{Name: "관제 서버", Category: "서버", Status: assets.StatusInRepair, UnitPrice: 40, Quantity: 2},
		{Name: "센서", Category: "IoT", ExpectedDelivery: day(7), TotalValue: 15},
		{Name: "무명"},
	}
	ref := Reference{TotalBudget: 1000, InfraProjects: []string{"SDDC", "AI관제"}}

	first := Run(list, testNow, ref)
	second := Run(list, testNow, ref)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "same snapshot and clock must serialize identically")
}

func TestRunWiresViewsToSameSnapshot(t *testing.T) {
	list := []assets.Asset{
		{Name: "a", Category: "A", Status: assets.StatusInRepair, TotalValue: 100},
		{Name: "b", Category: "B", ExpectedDelivery: day(5), TotalValue: 50},
	}
	res := Run(list, testNow, Reference{TotalBudget: 300})

	assert.Equal(t, 2, res.Statistics.TotalAssets)
	assert.Equal(t, res.Statistics.TotalValue, res.Budget.Executed,
		"budget execution reads the statistics total")
	assert.Equal(t, 50.0, res.Budget.ExecutionRate)
	require.Len(t, res.Risks, 1)
	require.Len(t, res.UpcomingAssets, 1)
	assert.Empty(t, res.InfraProjects)
}
