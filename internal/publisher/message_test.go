package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bills_fetcher/internal/domain"
)

func TestNewBillMessage(t *testing.T) {
	now := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.FixedZone("COT", -5*3600))

	created := NewBillMessage(&domain.BillChange{BillID: 1, Numero: "12/2020", Created: true, Stage: domain.StageList}, now)
	assert.Equal(t, ActionCreate, created.Action)
	assert.Equal(t, time.UTC, created.Timestamp.Location())
	assert.True(t, now.Equal(created.Timestamp))

	updated := NewBillMessage(&domain.BillChange{BillID: 1, Numero: "12/2020", Stage: domain.StageDetail}, now)
	assert.Equal(t, ActionUpdate, updated.Action)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "bills.acto-legislativo.detail",
		RoutingKey("bills", &domain.BillChange{Kind: domain.KindActoLegislativo, Stage: domain.StageDetail}))
	assert.Equal(t, "bills.ley.list",
		RoutingKey("bills", &domain.BillChange{Stage: domain.StageList}))
}

func TestHeaders(t *testing.T) {
	msg := NewBillMessage(&domain.BillChange{
		Kind:        domain.KindLey,
		Numero:      "12/2020",
		Legislatura: "2020-2021",
		Stage:       domain.StageList,
		Created:     true,
	}, time.Now())

	h := headers(msg)

	assert.Equal(t, "create", h["action"])
	assert.Equal(t, "ley", h["kind"])
	assert.Equal(t, "list", h["stage"])
	assert.Equal(t, "2020-2021", h["legislatura"])
	require.NoError(t, h.Validate())
}

func TestBillMessage_JSON(t *testing.T) {
	msg := NewBillMessage(&domain.BillChange{
		BillID:      7,
		Kind:        domain.KindActoLegislativo,
		Numero:      "45/2021",
		Legislatura: "2021-2022",
		Stage:       domain.StageDetail,
		Hash:        "abc",
	}, time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC))

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "update", decoded["action"])
	bill, ok := decoded["bill"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "45/2021", bill["numero"])
	assert.Equal(t, "acto-legislativo", bill["kind"])
	assert.Equal(t, "detail", bill["stage"])
	assert.Equal(t, false, bill["created"])
}
