package services

import (
	"testing"
	"time"

	"facilitydocs/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func folderNamed(name string, createdAt time.Time) models.Folder {
	return models.Folder{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Category:  models.CategoryMain,
		CreatedAt: createdAt,
	}
}

func fileNamed(name, extension string, createdAt time.Time) models.File {
	return models.File{
		ID:           primitive.NewObjectID(),
		OriginalName: name,
		Extension:    extension,
		Category:     models.CategoryMain,
		CreatedAt:    createdAt,
	}
}

func TestNormalizeSortOptions_Defaults(t *testing.T) {
	opts := NormalizeSortOptions("", "")
	assert.Equal(t, SortByName, opts.By)
	assert.Equal(t, SortAscending, opts.Direction)
}

func TestNormalizeSortOptions_UnrecognizedFallsBack(t *testing.T) {
	opts := NormalizeSortOptions("size", "sideways")
	assert.Equal(t, SortByName, opts.By)
	assert.Equal(t, SortAscending, opts.Direction)
}

func TestNormalizeSortOptions_Valid(t *testing.T) {
	opts := NormalizeSortOptions(SortByDate, SortDescending)
	assert.Equal(t, SortByDate, opts.By)
	assert.Equal(t, SortDescending, opts.Direction)
}

func TestSortFolders_NameCaseInsensitive(t *testing.T) {
	now := time.Now()
	folders := []models.Folder{
		folderNamed("cherry", now),
		folderNamed("Apple", now),
		folderNamed("banana", now),
	}

	sortFolders(folders, NormalizeSortOptions(SortByName, SortAscending))

	assert.Equal(t, "Apple", folders[0].Name)
	assert.Equal(t, "banana", folders[1].Name)
	assert.Equal(t, "cherry", folders[2].Name)
}

func TestSortFiles_DateDescending(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	files := []models.File{
		fileNamed("old.pdf", ".pdf", base),
		fileNamed("new.pdf", ".pdf", base.Add(48*time.Hour)),
		fileNamed("middle.pdf", ".pdf", base.Add(24*time.Hour)),
	}

	sortFiles(files, NormalizeSortOptions(SortByDate, SortDescending))

	assert.Equal(t, "new.pdf", files[0].OriginalName)
	assert.Equal(t, "middle.pdf", files[1].OriginalName)
	assert.Equal(t, "old.pdf", files[2].OriginalName)
}

func TestFilterFiles_Extension(t *testing.T) {
	now := time.Now()
	files := []models.File{
		fileNamed("report.pdf", ".pdf", now),
		fileNamed("photo.jpg", ".jpg", now),
		fileNamed("plan.pdf", ".pdf", now),
	}

	filtered := filterFiles(files, "pdf", "")
	assert.Len(t, filtered, 2)
	for _, f := range filtered {
		assert.Equal(t, ".pdf", f.Extension)
	}

	// Leading dot and casing are accepted too.
	assert.Len(t, filterFiles(files, ".PDF", ""), 2)
	assert.Len(t, filterFiles(files, "", ""), 3)
}

func TestFilterFiles_Search(t *testing.T) {
	now := time.Now()
	files := []models.File{
		fileNamed("Annual Report.pdf", ".pdf", now),
		fileNamed("photo.jpg", ".jpg", now),
	}

	filtered := filterFiles(files, "", "report")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Annual Report.pdf", filtered[0].OriginalName)
}

func TestFilterFolders_Search(t *testing.T) {
	now := time.Now()
	folders := []models.Folder{
		folderNamed("Contracts 2025", now),
		folderNamed("Photos", now),
	}

	filtered := filterFolders(folders, "contract")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Contracts 2025", filtered[0].Name)
}

func TestCombineEntries_FoldersAlwaysBeforeFiles(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	// Files deliberately newer and alphabetically earlier than the folders,
	// so any interleaving sort would put them first.
	folders := []models.Folder{
		folderNamed("Zebra", base),
		folderNamed("Yard", base.Add(time.Hour)),
	}
	files := []models.File{
		fileNamed("aardvark.pdf", ".pdf", base.Add(72*time.Hour)),
		fileNamed("budget.xlsx", ".xlsx", base.Add(96*time.Hour)),
	}

	for _, opts := range ListSortOptions() {
		sortFolders(folders, opts)
		sortFiles(files, opts)
		entries := combineEntries(folders, files)

		assert.Len(t, entries, 4)
		assert.Equal(t, "folder", entries[0].Type)
		assert.Equal(t, "folder", entries[1].Type)
		assert.Equal(t, "file", entries[2].Type)
		assert.Equal(t, "file", entries[3].Type)
	}
}

func TestAssembleBreadcrumbs(t *testing.T) {
	parent := folderNamed("Parent", time.Now())
	child := folderNamed("Child", time.Now())
	child.ParentID = &parent.ID

	// Chain is built walking upward from the target folder.
	crumbs := assembleBreadcrumbs([]models.Folder{child, parent})

	assert.Len(t, crumbs, 3)
	assert.Empty(t, crumbs[0].ID)
	assert.Equal(t, "Documents", crumbs[0].Name)
	assert.Equal(t, "Parent", crumbs[1].Name)
	assert.Equal(t, parent.ID.Hex(), crumbs[1].ID)
	assert.Equal(t, "Child", crumbs[2].Name)
	assert.Equal(t, child.ID.Hex(), crumbs[2].ID)
}

func TestAssembleBreadcrumbs_RootOnly(t *testing.T) {
	crumbs := assembleBreadcrumbs(nil)
	assert.Len(t, crumbs, 1)
	assert.Empty(t, crumbs[0].ID)
}
