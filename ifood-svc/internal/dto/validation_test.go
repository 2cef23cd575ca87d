package dto

import (
	"encoding/json"
	"testing"
	"time"

	"ifood/ifood-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      Entity
		wantFields []string
	}{
		{name: "restaurant valid", input: &RestaurantDTO{Name: ptr("Cafe"), Rating: ptr(4.5)}},
		{name: "restaurant rating zero", input: &RestaurantDTO{Name: ptr("Cafe"), Rating: ptr(0.0)}},
		{name: "restaurant missing name", input: &RestaurantDTO{}, wantFields: []string{"name"}},
		{name: "restaurant rating too high", input: &RestaurantDTO{Name: ptr("Cafe"), Rating: ptr(5.1)}, wantFields: []string{"rating"}},
		{name: "restaurant rating negative", input: &RestaurantDTO{Name: ptr("Cafe"), Rating: ptr(-1.0)}, wantFields: []string{"rating"}},
		{name: "menu ignores relation", input: &MenuDTO{Name: ptr("Lunch"), Restaurant: &RestaurantDTO{ID: ptr(int64(1))}}},
		{name: "menu missing name", input: &MenuDTO{}, wantFields: []string{"name"}},
		{name: "dish valid with zero price", input: &DishDTO{Name: ptr("Taco"), Price: ptr(decimal.Zero)}},
		{name: "dish missing all", input: &DishDTO{}, wantFields: []string{"name", "price"}},
		{name: "customer missing email", input: &CustomerDTO{Name: ptr("Ann")}, wantFields: []string{"email"}},
		{name: "order valid", input: &OrderDTO{OrderDate: ptr(time.Unix(0, 0)), Status: ptr(domain.OrderStatusPending)}},
		{name: "order bad status", input: &OrderDTO{OrderDate: ptr(time.Unix(0, 0)), Status: ptr(domain.OrderStatus("LOST"))}, wantFields: []string{"status"}},
		{name: "order missing all", input: &OrderDTO{}, wantFields: []string{"orderDate", "status"}},
		{name: "order item zero quantity", input: &OrderItemDTO{Quantity: ptr(0), TotalPrice: ptr(decimal.NewFromInt(1))}},
		{name: "order item missing total", input: &OrderItemDTO{Quantity: ptr(1)}, wantFields: []string{"totalPrice"}},
		{name: "payment valid", input: &PaymentDTO{PaymentDate: ptr(time.Now()), Amount: ptr(decimal.NewFromInt(10)), PaymentType: ptr(domain.PaymentTypeCash)}},
		{name: "payment missing type", input: &PaymentDTO{PaymentDate: ptr(time.Now()), Amount: ptr(decimal.NewFromInt(10))}, wantFields: []string{"paymentType"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := Validate(testCase.input)
			if len(testCase.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, testCase.wantFields, fields)
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	err := Validate(&RestaurantDTO{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{ObjectName: "restaurantDTO", Field: "name", Message: "must not be null"}, verr.Fields[0])
	assert.Contains(t, err.Error(), "restaurantDTO.name")
}

func TestValidatePatch(t *testing.T) {
	assert.NoError(t, ValidatePatch(&RestaurantDTO{ID: ptr(int64(1)), Rating: ptr(4.5)}))
	assert.NoError(t, ValidatePatch(&DishDTO{ID: ptr(int64(1))}))
	assert.NoError(t, ValidatePatch(&OrderDTO{ID: ptr(int64(1))}))

	var verr *ValidationError
	require.ErrorAs(t, ValidatePatch(&RestaurantDTO{Rating: ptr(7.0)}), &verr)
	assert.Equal(t, "rating", verr.Fields[0].Field)
	require.ErrorAs(t, ValidatePatch(&PaymentDTO{PaymentType: ptr(domain.PaymentType("CHEQUE"))}), &verr)
	assert.Equal(t, "paymentType", verr.Fields[0].Field)
}

func TestMoneyIsExactJSONNumber(t *testing.T) {
	var in PaymentDTO
	require.NoError(t, json.Unmarshal([]byte(`{"amount":0.1,"paymentType":"CASH"}`), &in))
	require.NotNil(t, in.Amount)
	assert.True(t, in.Amount.Add(decimal.RequireFromString("0.2")).Equal(decimal.RequireFromString("0.3")))

	out, err := json.Marshal(&DishDTO{Name: ptr("Taco"), Price: ptr(decimal.RequireFromString("19.90"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Taco","price":19.9}`, string(out))

	var quoted DishDTO
	require.NoError(t, json.Unmarshal([]byte(`{"price":"4.20"}`), &quoted))
	assert.Equal(t, "4.2", quoted.Price.String())
}
