package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		member  Member
		wantErr bool
	}{
		{name: "valid member", member: Member{ID: "1", Name: "Ada"}},
		{name: "empty name", member: Member{ID: "1", Name: ""}, wantErr: true},
		{name: "blank name", member: Member{ID: "1", Name: "   "}, wantErr: true},
		{name: "missing id", member: Member{Name: "Ada"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.member)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderUnset, ParseGender(""))
	assert.Equal(t, GenderMale, ParseGender("Male"))
	assert.Equal(t, GenderMale, ParseGender("male"))
	assert.Equal(t, GenderFemale, ParseGender(" FEMALE "))
	assert.Equal(t, GenderOther, ParseGender("Other"))
	assert.Equal(t, GenderOther, ParseGender("nonbinary"))
}

func TestGender_Symbol(t *testing.T) {
	assert.Equal(t, "♂", GenderMale.Symbol())
	assert.Equal(t, "♀", GenderFemale.Symbol())
	assert.Equal(t, "•", GenderOther.Symbol())
	assert.Equal(t, "•", GenderUnset.Symbol())
}

func TestMember_JSONShape(t *testing.T) {
	m := Member{ID: "17", Name: "Ada", Gender: GenderFemale, DOB: "1815-12-10", FatherID: "3"}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"17","name":"Ada","gender":"Female","dob":"1815-12-10","fatherId":"3","motherId":""}`, string(data))

	var unset Member
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"X","gender":""}`), &unset))
	assert.Equal(t, GenderUnset, unset.Gender)
}

func TestMember_ApplyKeepsID(t *testing.T) {
	m := Member{ID: "keep", Name: "Old", Gender: GenderMale, FatherID: "f"}
	updated := m.Apply(Draft{Name: "New", Gender: GenderOther})

	assert.Equal(t, "keep", updated.ID)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, GenderOther, updated.Gender)
	assert.Empty(t, updated.FatherID)
	assert.Equal(t, m.Draft(), Draft{Name: "Old", Gender: GenderMale, FatherID: "f"})
}

func TestMember_Label(t *testing.T) {
	assert.Equal(t, "Ada", Member{Name: "Ada"}.Label())
	assert.Equal(t, "Ada — 1815-12-10", Member{Name: "Ada", DOB: "1815-12-10"}.Label())
}
