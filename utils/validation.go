package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// allowedExtensions is the upload allow-list. Anything outside it (including
// executables and scripts) is rejected before a blob is written.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".ppt":  true,
	".pptx": true,
	".txt":  true,
	".csv":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".zip":  true,
	".dwg":  true,
	".dxf":  true,
}

func ValidateFileSize(size, maxSize int64) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > maxSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of %d bytes", size, maxSize)
	}
	return nil
}

func ValidateFileName(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if len(filename) > 255 {
		return fmt.Errorf("filename too long (max 255 characters)")
	}

	if !utf8.ValidString(filename) {
		return fmt.Errorf("filename contains invalid UTF-8 characters")
	}

	invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*", "\x00", "/", "\\"}
	for _, char := range invalidChars {
		if strings.Contains(filename, char) {
			return fmt.Errorf("filename contains invalid character: %s", char)
		}
	}

	return nil
}

func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("file has no extension")
	}
	if !allowedExtensions[ext] {
		return fmt.Errorf("file type %s is not allowed", ext)
	}
	return nil
}

func ValidateFolderName(name string) error {
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}

	if len(name) > 255 {
		return fmt.Errorf("folder name too long (max 255 characters)")
	}

	if !utf8.ValidString(name) {
		return fmt.Errorf("folder name contains invalid UTF-8 characters")
	}

	invalidChars := []string{"<", ">", ":", "\"", "|", "?", "*", "\x00", "/", "\\"}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("folder name contains invalid character: %s", char)
		}
	}

	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("folder name cannot end with a dot")
	}

	return nil
}
