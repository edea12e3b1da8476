package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFileSize(t *testing.T) {
	maxSize := int64(10 * 1024 * 1024)

	assert.NoError(t, ValidateFileSize(1, maxSize))
	assert.NoError(t, ValidateFileSize(maxSize, maxSize))
	assert.Error(t, ValidateFileSize(maxSize+1, maxSize))
	assert.Error(t, ValidateFileSize(0, maxSize))
	assert.Error(t, ValidateFileSize(-1, maxSize))
}

func TestValidateFileName(t *testing.T) {
	assert.NoError(t, ValidateFileName("report.pdf"))
	assert.NoError(t, ValidateFileName("FY2025 点検記録.xlsx"))

	assert.Error(t, ValidateFileName(""))
	assert.Error(t, ValidateFileName(strings.Repeat("a", 256)))
	assert.Error(t, ValidateFileName("bad/name.pdf"))
	assert.Error(t, ValidateFileName("bad|name.pdf"))
	assert.Error(t, ValidateFileName("bad\x00name.pdf"))
}

func TestValidateExtension_AllowList(t *testing.T) {
	assert.NoError(t, ValidateExtension("report.pdf"))
	assert.NoError(t, ValidateExtension("photo.JPG"))
	assert.NoError(t, ValidateExtension("drawing.dwg"))
	assert.NoError(t, ValidateExtension("archive.zip"))
}

func TestValidateExtension_RejectsDangerousTypes(t *testing.T) {
	assert.Error(t, ValidateExtension("x.exe"))
	assert.Error(t, ValidateExtension("script.sh"))
	assert.Error(t, ValidateExtension("run.bat"))
	assert.Error(t, ValidateExtension("page.html"))
	assert.Error(t, ValidateExtension("noextension"))
}

func TestValidateFolderName(t *testing.T) {
	assert.NoError(t, ValidateFolderName("Inspection Reports"))
	assert.NoError(t, ValidateFolderName("2025年度"))

	assert.Error(t, ValidateFolderName(""))
	assert.Error(t, ValidateFolderName(strings.Repeat("a", 256)))
	assert.Error(t, ValidateFolderName("nested/name"))
	assert.Error(t, ValidateFolderName("trailing."))
}
