package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBaseID(t *testing.T) {
	tests := []struct {
		name    string
		baseID  string
		wantErr bool
	}{
		{name: "простой идентификатор", baseID: "base-1", wantErr: false},
		{name: "uuid", baseID: "2afeb7d9-7aea-47af-a96e-bbfbf3b3a5bf", wantErr: false},
		{name: "подчеркивания", baseID: "my_base_01", wantErr: false},
		{name: "одна буква", baseID: "a", wantErr: false},
		{name: "максимальная длина", baseID: strings.Repeat("a", MaxBaseIDLen), wantErr: false},
		{name: "пустой", baseID: "", wantErr: true},
		{name: "слишком длинный", baseID: strings.Repeat("a", MaxBaseIDLen+1), wantErr: true},
		{name: "слэш", baseID: "a/b", wantErr: true},
		{name: "path traversal", baseID: "../etc", wantErr: true},
		{name: "пробел", baseID: "base 1", wantErr: true},
		{name: "кириллица", baseID: "база", wantErr: true},
		{name: "спецсимволы", baseID: "base?id=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseID(tt.baseID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePatchNotes(t *testing.T) {
	assert.NoError(t, ValidatePatchNotes(""))
	assert.NoError(t, ValidatePatchNotes("fixed negative amounts"))
	assert.NoError(t, ValidatePatchNotes(strings.Repeat("x", MaxPatchNotesLen)))
	assert.Error(t, ValidatePatchNotes(strings.Repeat("x", MaxPatchNotesLen+1)))
}
