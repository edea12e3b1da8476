package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename=report.pdf", contentDisposition("report.pdf"))
}

func TestContentDisposition_NonASCIIName(t *testing.T) {
	header := contentDisposition("FY2025 点検記録.xlsx")

	assert.Contains(t, header, "filename*=utf-8''")
	assert.NotContains(t, header, "点")
}
