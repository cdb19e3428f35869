package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	TransactionCode string `json:"transaction_code" validate:"omitempty,mpesa_code"`
	Amount          string `json:"amount" validate:"required,money_amount"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,kenyan_phone"`
	Kind            string `json:"kind" validate:"omitempty,category_kind"`
	Window          string `json:"window" validate:"omitempty,report_window"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name    string
		request sampleRequest
		wantErr bool
	}{
		{
			name:    "valid full request",
			request: sampleRequest{TransactionCode: "SBK4X7YQZM", Amount: "1500.50", PhoneNumber: "+254712345678", Kind: "business", Window: "weekly"},
			wantErr: false,
		},
		{
			name:    "amount without decimals",
			request: sampleRequest{Amount: "200"},
			wantErr: false,
		},
		{
			name:    "local phone format",
			request: sampleRequest{Amount: "200", PhoneNumber: "0712345678"},
			wantErr: false,
		},
		{
			name:    "code too short",
			request: sampleRequest{TransactionCode: "SBK4X", Amount: "100"},
			wantErr: true,
		},
		{
			name:    "lowercase code rejected",
			request: sampleRequest{TransactionCode: "sbk4x7yqzm", Amount: "100"},
			wantErr: true,
		},
		{
			name:    "negative amount rejected",
			request: sampleRequest{Amount: "-50"},
			wantErr: true,
		},
		{
			name:    "three decimal places rejected",
			request: sampleRequest{Amount: "10.999"},
			wantErr: true,
		},
		{
			name:    "non-kenyan phone rejected",
			request: sampleRequest{Amount: "100", PhoneNumber: "+14155550100"},
			wantErr: true,
		},
		{
			name:    "unknown kind rejected",
			request: sampleRequest{Amount: "100", Kind: "corporate"},
			wantErr: true,
		},
		{
			name:    "unknown window rejected",
			request: sampleRequest{Amount: "100", Window: "quarterly"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := GetValidator().GetValidate()

	err := v.Struct(sampleRequest{Amount: ""})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}
