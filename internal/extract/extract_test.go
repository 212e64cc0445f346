package extract

import (
	"context"
	"testing"

	"github.com/jonathan/resume-restyle/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John A. Smith\n" +
	"john.smith@email.com\n" +
	"(415) 555-0199\n" +
	"San Francisco, CA\n" +
	"\n" +
	"EXPERIENCE\n" +
	"Senior Engineer at Acme Corp (2020-Present)\n" +
	"...\n" +
	"\n" +
	"EDUCATION\n" +
	"B.S. Computer Science, MIT (2016-2020)"

func TestExtractSampleResume(t *testing.T) {
	record, confidence := Extract(sampleResume)

	assert.Equal(t, "John A. Smith", record.Name)
	assert.Equal(t, "john.smith@email.com", record.Email)
	assert.Contains(t, record.Phone, "415")
	assert.Contains(t, record.Phone, "0199")
	assert.Equal(t, "San Francisco, CA", record.Location)
	assert.Contains(t, record.Experience, "Acme Corp")
	assert.Contains(t, record.Education, "MIT")

	assert.Greater(t, confidence["name"], 0.0)
	assert.Greater(t, confidence["email"], 0.0)
	assert.Greater(t, confidence["experience"], 0.0)
}

func TestExtractIsDeterministic(t *testing.T) {
	first, firstConfidence := Extract(sampleResume)
	second, secondConfidence := Extract(sampleResume)

	assert.Equal(t, first, second)
	assert.Equal(t, firstConfidence, secondConfidence)
}

func TestExtractEmptyFieldsScoreZero(t *testing.T) {
	record, confidence := Extract("just some text with nothing useful in it")

	for _, key := range types.FieldKeys {
		if record.Field(key) == "" {
			assert.Zero(t, confidence[key], "empty field %q must score 0", key)
		}
	}
}

func TestExtractNeverReturnsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"whitespace", "   \n\t  "},
		{"garbage", "%$#@! ~~~~ 12345"},
		{"single word", "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, confidence := Extract(tt.text)
			assert.Len(t, confidence, len(types.FieldKeys))
			for _, key := range types.FieldKeys {
				assert.NotNil(t, record.Field(key))
			}
		})
	}
}

func TestSkillsFallbackWithoutSection(t *testing.T) {
	text := "Jane is a developer experienced with Python, React, and Docker among other things."

	record, _ := Extract(text)

	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "React")
	assert.Contains(t, record.Skills, "Docker")
}

func TestSkillsSectionBeatsFallback(t *testing.T) {
	text := "SKILLS\nDistributed systems, hiring, mentoring\n\nEXPERIENCE\nUsed Python daily."

	record, _ := Extract(text)

	assert.Contains(t, record.Skills, "Distributed systems")
	assert.NotContains(t, record.Skills, "Python", "dedicated section wins over dictionary scan")
}

func TestLocalImplementsExtractor(t *testing.T) {
	var extractor Extractor = Local{}

	record, confidence, err := extractor.ExtractRecord(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.Equal(t, "John A. Smith", record.Name)
	assert.NotEmpty(t, confidence)
}
