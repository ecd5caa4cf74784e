package models

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakePatientID = "fae56ea7-24a7-4556-82fb-2b5dde71bb4d"

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/mv64e-mtb-fake-patient.json")
	require.NoError(t, err)
	return data
}

func TestPatientRecord_Unmarshal(t *testing.T) {
	var record PatientRecord
	require.NoError(t, json.Unmarshal(readFixture(t), &record))

	assert.Equal(t, fakePatientID, record.Patient.ID)
	assert.True(t, record.HasConsent())
	assert.Contains(t, string(record.Metadata), "modelProjectConsent")
}

// TestPatientRecord_RoundTripKeepsAllMembers verifies that members the proxy
// does not interpret survive decoding and encoding unchanged.
func TestPatientRecord_RoundTripKeepsAllMembers(t *testing.T) {
	original := readFixture(t)

	var record PatientRecord
	require.NoError(t, json.Unmarshal(original, &record))

	encoded, err := json.Marshal(record)
	require.NoError(t, err)

	assert.JSONEq(t, string(original), string(encoded))
}

func TestPatientRecord_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not json", input: `patient`},
		{name: "array", input: `[]`},
		{name: "no patient", input: `{"metadata":{}}`, wantErr: ErrMissingPatient},
		{name: "null patient", input: `{"patient":null}`, wantErr: ErrMissingPatient},
		{name: "patient is a string", input: `{"patient":"x"}`},
		{name: "numeric patient id", input: `{"patient":{"id":42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record PatientRecord
			err := json.Unmarshal([]byte(tt.input), &record)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPatientRecord_NullMetadataIsAbsent(t *testing.T) {
	var record PatientRecord
	require.NoError(t, json.Unmarshal([]byte(`{"patient":{"id":"p1"},"metadata":null}`), &record))

	assert.False(t, record.HasConsent())

	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"patient":{"id":"p1"}}`, string(encoded))
}

func TestNewConsentWithdrawal(t *testing.T) {
	record := NewConsentWithdrawal(fakePatientID)

	assert.Equal(t, fakePatientID, record.Patient.ID)
	assert.False(t, record.HasConsent())

	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"patient":{"id":"`+fakePatientID+`"}}`, string(encoded))

	var members map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &members))
	_, hasMetadata := members["metadata"]
	assert.False(t, hasMetadata, "metadata must be absent, not null")
}

func TestRecordKey_JSON(t *testing.T) {
	encoded, err := json.Marshal(RecordKey{PatientID: fakePatientID})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pid":"`+fakePatientID+`"}`, string(encoded))
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
