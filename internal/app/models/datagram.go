package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Datagram is the aggregate of one complete instrument session: header
// fields, the raw message audit trail and the embedded patient, order,
// comment and result records. It is written once, immediately after the
// session is sealed.
//
// Exactly one of Uploaded, UploadError and Skipped is true after
// finalization.
type Datagram struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Header
	InstrumentModel        *string    `bson:"instrumentModel" json:"instrumentModel"`
	InstrumentSerialNumber *string    `bson:"instrumentSerialNumber" json:"instrumentSerialNumber"`
	InstrumentFirmware     *string    `bson:"instrumentFirmware" json:"instrumentFirmware"`
	InstrumentTimestamp    *time.Time `bson:"instrumentTimestamp" json:"instrumentTimestamp"`

	// Raw de-framed message lines, kept for audit.
	Messages []string `bson:"messages" json:"messages"`

	Patient  *Patient  `bson:"patient,omitempty" json:"patient,omitempty"`
	Order    *Order    `bson:"order,omitempty" json:"order,omitempty"`
	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`
	Results  []Result  `bson:"results,omitempty" json:"results,omitempty"`

	MatchesPrimaryRoute   bool `bson:"matchesPrimaryRoute" json:"matchesPrimaryRoute"`
	MatchesSecondaryRoute bool `bson:"matchesSecondaryRoute" json:"matchesSecondaryRoute"`
	Uploaded              bool `bson:"uploaded" json:"uploaded"`
	UploadError           bool `bson:"uploadError" json:"uploadError"`
	Skipped               bool `bson:"skipped" json:"skipped"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Patient struct {
	PatientID *string `bson:"patientId" json:"patientId"`
	Location  *string `bson:"location" json:"location"`
}

type Order struct {
	OrderID    *string `bson:"orderId" json:"orderId"`
	TestType   *string `bson:"testType" json:"testType"`
	OperatorID *string `bson:"operatorId" json:"operatorId"`
	SampleType *string `bson:"sampleType" json:"sampleType"`
}

type Comment struct {
	SampleComment *string `bson:"sampleComment" json:"sampleComment"`
}

type Result struct {
	AnalyteName *string    `bson:"analyteName" json:"analyteName"`
	TestValue   *string    `bson:"testValue" json:"testValue"`
	TestUnits   *string    `bson:"testUnits" json:"testUnits"`
	TestRange   *string    `bson:"testRange" json:"testRange"`
	TestFlag    *string    `bson:"testFlag" json:"testFlag"`
	TestType    *string    `bson:"testType" json:"testType"`
	Completion  *time.Time `bson:"completion" json:"completion"`
}

// VialID returns the patient/specimen identifier or an empty string.
func (d *Datagram) VialID() string {
	if d.Patient == nil || d.Patient.PatientID == nil {
		return ""
	}
	return *d.Patient.PatientID
}

// TestType returns the ordered test type or an empty string.
func (d *Datagram) TestType() string {
	if d.Order == nil || d.Order.TestType == nil {
		return ""
	}
	return *d.Order.TestType
}

// SerialNo returns the instrument serial number or an empty string.
func (d *Datagram) SerialNo() string {
	if d.InstrumentSerialNumber == nil {
		return ""
	}
	return *d.InstrumentSerialNumber
}
