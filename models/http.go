package models

// HTTP surface shared by the proxy and its client.
const (
	// PatientRecordPath accepts POST (record) and, with a trailing
	// "/{patientId}", DELETE (consent withdrawal).
	PatientRecordPath = "/mtb/etl/patient-record"

	// RequestIDResponseHeader carries the correlation id of an accepted request.
	RequestIDResponseHeader = "X-Request-Id"
)

// Media types accepted for patient records.
const (
	ContentTypeJSON     = "application/json"
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"
	ContentTypeMTB      = "application/vnd.dnpm.v2.mtb+json"
)
