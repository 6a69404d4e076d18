package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type enumInput struct {
	Type      string `validate:"omitempty,asset_type"`
	Status    string `validate:"omitempty,asset_status"`
	Condition string `validate:"omitempty,asset_condition"`
	Role      string `validate:"omitempty,user_role"`
	TxType    string `validate:"omitempty,transaction_type"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"asset_type":       validateAssetType,
		"asset_status":     validateAssetStatus,
		"asset_condition":  validateAssetCondition,
		"user_role":        validateUserRole,
		"transaction_type": validateTransactionType,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("failed to register %s: %v", tag, err)
		}
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name    string
		input   enumInput
		wantErr bool
	}{
		{"all valid", enumInput{Type: "VEHICLE", Status: "ASSIGNED", Condition: "NON-OPERATIONAL", Role: "COMMANDER", TxType: "TRANSFER"}, false},
		{"legacy transfer tag", enumInput{TxType: "TRANSFER_OUT"}, false},
		{"lowercase type", enumInput{Type: "vehicle"}, true},
		{"unknown status", enumInput{Status: "LOST"}, true},
		{"unknown condition", enumInput{Condition: "BROKEN"}, true},
		{"unknown role", enumInput{Role: "GENERAL"}, true},
		{"unknown transaction type", enumInput{TxType: "SELL"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
