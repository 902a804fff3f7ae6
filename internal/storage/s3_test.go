package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "mandi-pdfs/Mandi-List-15-01-2025.pdf", ObjectKey("Mandi-List-15-01-2025.pdf"))
}

func TestObjectKeyIsDateStable(t *testing.T) {
	// same filename, same key: a re-upload for the same date overwrites
	a := ObjectKey("Mandi-List-15-01-2025.pdf")
	b := ObjectKey("Mandi-List-15-01-2025.pdf")
	assert.Equal(t, a, b)
}

func TestObjectURL(t *testing.T) {
	url := ObjectURL("pakricebucket", "ap-south-1", "mandi-pdfs/Mandi-List-15-01-2025.pdf")
	assert.Equal(t, "https://pakricebucket.s3.ap-south-1.amazonaws.com/mandi-pdfs/Mandi-List-15-01-2025.pdf", url)
}
