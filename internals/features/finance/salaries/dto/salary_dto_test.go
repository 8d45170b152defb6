package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payload datar persis seperti yang dikirim frontend kalkulasi harian.
const daysPayload = `{
	"faculty_id": "3f0e8a1c-9f1d-4c6b-8e2a-5b7d9c1e4f00",
	"month": "2024-05",
	"total_collection": 52000,
	"fixed_salary": 18000,
	"days_in_month": 31,
	"per_day": 580,
	"attendance_equiv": 28.5,
	"absent_days": 2.5,
	"prorated_salary": 16530,
	"salary_deduction": 1470,
	"incentive_pct": 5,
	"incentive_amt": 826.5,
	"pension_add": 500,
	"pension_ded": 300,
	"food_charges": 750,
	"tds_pct": 10,
	"tds_amt": 1653,
	"gross": 15000
}`

func TestGenerateDaysRequestKeepsEveryField(t *testing.T) {
	var req GenerateDaysRequest
	require.NoError(t, json.Unmarshal([]byte(daysPayload), &req))

	assert.True(t, req.Gross.Equal(decimal.NewFromInt(15000)), "gross = %s", req.Gross)
	assert.Equal(t, 31, req.DaysInMonth)
	assert.Equal(t, 580, req.PerDay)

	components := req.DaysComponents()
	wantKeys := []string{
		"total_collection", "fixed_salary", "days_in_month", "per_day",
		"attendance_equiv", "absent_days", "prorated_salary", "salary_deduction",
		"incentive_pct", "incentive_amt", "pension_add", "pension_ded",
		"food_charges", "tds_pct", "tds_amt",
	}
	require.Len(t, components, len(wantKeys))
	for _, k := range wantKeys {
		_, ok := components[k]
		assert.True(t, ok, "component %q missing", k)
	}

	// tidak ada angka yang hilang atau berubah dalam perjalanan
	assert.True(t, components["total_collection"].Equal(decimal.NewFromInt(52000)))
	assert.True(t, components["attendance_equiv"].Equal(decimal.NewFromFloat(28.5)))
	assert.True(t, components["tds_amt"].Equal(decimal.NewFromInt(1653)))
	assert.True(t, components["incentive_amt"].Equal(decimal.NewFromFloat(826.5)))

	// dan tetap utuh setelah disimpan sebagai JSONB
	raw, err := json.Marshal(components)
	require.NoError(t, err)
	var stored map[string]decimal.Decimal
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, len(wantKeys))
	assert.True(t, stored["prorated_salary"].Equal(decimal.NewFromInt(16530)))
}
