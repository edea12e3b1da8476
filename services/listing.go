package services

import (
	"sort"
	"strings"
	"time"

	"facilitydocs/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByName = "name"
	SortByDate = "date"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// collator gives locale-aware, case-insensitive name ordering instead of
// bytewise comparison.
var collator = collate.New(language.Und, collate.Loose)

type SortOptions struct {
	By        string `json:"by"`
	Direction string `json:"direction"`
}

// NormalizeSortOptions falls back to name/ascending for anything it does not
// recognize.
func NormalizeSortOptions(by, direction string) SortOptions {
	opts := SortOptions{By: SortByName, Direction: SortAscending}

	switch by {
	case SortByName, SortByDate:
		opts.By = by
	}
	switch direction {
	case SortAscending, SortDescending:
		opts.Direction = direction
	}
	return opts
}

// ListSortOptions is the sort surface advertised to clients in listing
// responses.
func ListSortOptions() []SortOptions {
	return []SortOptions{
		{By: SortByName, Direction: SortAscending},
		{By: SortByName, Direction: SortDescending},
		{By: SortByDate, Direction: SortAscending},
		{By: SortByDate, Direction: SortDescending},
	}
}

func sortFolders(folders []models.Folder, opts SortOptions) {
	sort.SliceStable(folders, func(i, j int) bool {
		return lessBy(opts, folders[i].Name, folders[j].Name, folders[i].CreatedAt, folders[j].CreatedAt)
	})
}

func sortFiles(files []models.File, opts SortOptions) {
	sort.SliceStable(files, func(i, j int) bool {
		return lessBy(opts, files[i].OriginalName, files[j].OriginalName, files[i].CreatedAt, files[j].CreatedAt)
	})
}

func lessBy(opts SortOptions, nameI, nameJ string, dateI, dateJ time.Time) bool {
	var less bool
	switch opts.By {
	case SortByDate:
		less = dateI.Before(dateJ)
	default:
		less = collator.CompareString(nameI, nameJ) < 0
	}
	if opts.Direction == SortDescending {
		return !less
	}
	return less
}

func matchesSearch(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// normalizeExtension accepts "pdf" or ".pdf" and returns ".pdf".
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func filterFolders(folders []models.Folder, searchTerm string) []models.Folder {
	result := make([]models.Folder, 0, len(folders))
	for _, f := range folders {
		if matchesSearch(f.Name, searchTerm) {
			result = append(result, f)
		}
	}
	return result
}

func filterFiles(files []models.File, extension, searchTerm string) []models.File {
	ext := normalizeExtension(extension)
	result := make([]models.File, 0, len(files))
	for _, f := range files {
		if ext != "" && f.Extension != ext {
			continue
		}
		if !matchesSearch(f.OriginalName, searchTerm) {
			continue
		}
		result = append(result, f)
	}
	return result
}

// Breadcrumb is one entry of the path from the category root down to a
// folder. The root entry has no backing folder row, so its ID is empty.
type Breadcrumb struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const rootBreadcrumbName = "Documents"

// assembleBreadcrumbs takes the parent chain as walked (folder up to the top
// folder) and returns root-first breadcrumbs with the synthetic root entry
// prepended.
func assembleBreadcrumbs(chain []models.Folder) []Breadcrumb {
	crumbs := make([]Breadcrumb, 0, len(chain)+1)
	crumbs = append(crumbs, Breadcrumb{Name: rootBreadcrumbName})
	for i := len(chain) - 1; i >= 0; i-- {
		crumbs = append(crumbs, Breadcrumb{
			ID:   chain[i].ID.Hex(),
			Name: chain[i].Name,
		})
	}
	return crumbs
}

// ListEntry is a folder or file flattened into one listing row. Folders are
// always emitted before files regardless of sort order.
type ListEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "folder" or "file"
	Size      int64     `json:"size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func combineEntries(folders []models.Folder, files []models.File) []ListEntry {
	entries := make([]ListEntry, 0, len(folders)+len(files))
	for _, f := range folders {
		entries = append(entries, ListEntry{
			ID:        f.ID.Hex(),
			Name:      f.Name,
			Type:      "folder",
			CreatedAt: f.CreatedAt,
		})
	}
	for _, f := range files {
		entries = append(entries, ListEntry{
			ID:        f.ID.Hex(),
			Name:      f.OriginalName,
			Type:      "file",
			Size:      f.Size,
			CreatedAt: f.CreatedAt,
		})
	}
	return entries
}
