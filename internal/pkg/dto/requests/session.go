package requests

// IngestSession carries one complete session as de-framed record token lists,
// in instrument emission order. Each inner list starts with the record type
// discriminator.
type IngestSession struct {
	Records [][]string `json:"records" validate:"required,min=1"`
}
