package records

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tokensFromLine(line string) []string {
	return strings.Split(line, "|")
}

func TestParseHeader(t *testing.T) {
	parser := NewParser(zap.NewNop())

	t.Run("Complete Header", func(t *testing.T) {
		tokens := tokensFromLine("H|\\^&||PSWD|Sofia^29000021|||||||QR|1.2.3|20201104145213")
		record, err := parser.Parse(tokens)
		require.NoError(t, err)

		header, ok := record.(*HeaderRecord)
		require.True(t, ok)
		require.NotNil(t, header.Model)
		assert.Equal(t, "Sofia", *header.Model)
		require.NotNil(t, header.Serial)
		assert.Equal(t, "29000021", *header.Serial)
		require.NotNil(t, header.Firmware)
		assert.Equal(t, "1.2.3", *header.Firmware)
		require.NotNil(t, header.Timestamp)
		assert.Equal(t, time.Date(2020, 11, 4, 14, 52, 13, 0, time.UTC), *header.Timestamp)
	})

	t.Run("Short Header Keeps Nil Fields", func(t *testing.T) {
		record, err := parser.Parse(tokensFromLine("H|\\^&"))
		require.NoError(t, err)

		header, ok := record.(*HeaderRecord)
		require.True(t, ok)
		assert.Nil(t, header.Model)
		assert.Nil(t, header.Serial)
		assert.Nil(t, header.Firmware)
		assert.Nil(t, header.Timestamp)
	})

	t.Run("Bad Timestamp Downgrades To Nil", func(t *testing.T) {
		tokens := tokensFromLine("H|\\^&||PSWD|Sofia^29000021|||||||QR|1.2.3|not-a-time")
		record, err := parser.Parse(tokens)
		require.NoError(t, err)

		header := record.(*HeaderRecord)
		assert.Nil(t, header.Timestamp)
		require.NotNil(t, header.Serial)
		assert.Equal(t, "29000021", *header.Serial)
	})
}

func TestParsePatient(t *testing.T) {
	parser := NewParser(zap.NewNop())

	t.Run("Complete Patient", func(t *testing.T) {
		tokens := make([]string, 26)
		tokens[0] = "P"
		tokens[2] = "UA01-555555"
		tokens[25] = "Ward-3"

		record, err := parser.Parse(tokens)
		require.NoError(t, err)

		patient, ok := record.(*PatientRecord)
		require.True(t, ok)
		require.NotNil(t, patient.PatientID)
		assert.Equal(t, "UA01-555555", *patient.PatientID)
		require.NotNil(t, patient.Location)
		assert.Equal(t, "Ward-3", *patient.Location)
	})

	t.Run("Short Patient Keeps Nil Fields", func(t *testing.T) {
		record, err := parser.Parse([]string{"P", "1", "UA01-555555"})
		require.NoError(t, err)

		patient := record.(*PatientRecord)
		assert.Nil(t, patient.PatientID)
		assert.Nil(t, patient.Location)
	})
}

func TestParseOrder(t *testing.T) {
	parser := NewParser(zap.NewNop())

	tokens := make([]string, 16)
	tokens[0] = "O"
	tokens[2] = "ORD-1"
	tokens[4] = "SARS"
	tokens[10] = "operator9"
	tokens[15] = "Swab"

	record, err := parser.Parse(tokens)
	require.NoError(t, err)

	order, ok := record.(*OrderRecord)
	require.True(t, ok)
	require.NotNil(t, order.OrderID)
	assert.Equal(t, "ORD-1", *order.OrderID)
	require.NotNil(t, order.TestType)
	assert.Equal(t, "SARS", *order.TestType)
	require.NotNil(t, order.OperatorID)
	assert.Equal(t, "operator9", *order.OperatorID)
	require.NotNil(t, order.SampleType)
	assert.Equal(t, "Swab", *order.SampleType)
}

func TestParseComment(t *testing.T) {
	parser := NewParser(zap.NewNop())

	record, err := parser.Parse([]string{"C", "1", "I", "Hemolyzed sample"})
	require.NoError(t, err)

	comment, ok := record.(*CommentRecord)
	require.True(t, ok)
	require.NotNil(t, comment.SampleComment)
	assert.Equal(t, "Hemolyzed sample", *comment.SampleComment)
}

func TestParseResult(t *testing.T) {
	parser := NewParser(zap.NewNop())

	t.Run("Complete Result", func(t *testing.T) {
		tokens := make([]string, 13)
		tokens[0] = "R"
		tokens[2] = "^^^SARS"
		tokens[3] = "negative"
		tokens[4] = "TCN"
		tokens[5] = "negative"
		tokens[6] = "N"
		tokens[8] = "F"
		tokens[12] = "20201104150102"

		record, err := parser.Parse(tokens)
		require.NoError(t, err)

		result, ok := record.(*ResultRecord)
		require.True(t, ok)
		require.NotNil(t, result.AnalyteName)
		assert.Equal(t, "SARS", *result.AnalyteName)
		require.NotNil(t, result.TestValue)
		assert.Equal(t, "negative", *result.TestValue)
		require.NotNil(t, result.TestUnits)
		assert.Equal(t, "TCN", *result.TestUnits)
		require.NotNil(t, result.Completion)
		assert.Equal(t, time.Date(2020, 11, 4, 15, 1, 2, 0, time.UTC), *result.Completion)
	})

	t.Run("Short Result Keeps Nil Fields", func(t *testing.T) {
		record, err := parser.Parse([]string{"R", "1", "^^^SARS", "negative"})
		require.NoError(t, err)

		result := record.(*ResultRecord)
		assert.Nil(t, result.TestValue)
		assert.Nil(t, result.Completion)
	})
}

func TestParseTerminator(t *testing.T) {
	parser := NewParser(zap.NewNop())

	record, err := parser.Parse([]string{"L", "1", "N"})
	require.NoError(t, err)
	assert.Equal(t, TypeTerminator, record.Type())
	assert.Equal(t, "L|1|N", record.Raw())
}

func TestParseMalformed(t *testing.T) {
	parser := NewParser(zap.NewNop())

	t.Run("Empty Token List", func(t *testing.T) {
		_, err := parser.Parse(nil)
		assert.Error(t, err)
	})

	t.Run("Unknown Discriminator", func(t *testing.T) {
		_, err := parser.Parse([]string{"X", "1"})
		assert.Error(t, err)
	})
}
